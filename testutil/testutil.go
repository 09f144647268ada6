package testutil

import (
	"fmt"
	"maps"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/pfe/cover"
	"github.com/hupe1980/pfe/rule"
	"github.com/hupe1980/pfe/stats"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Mask returns n booleans, each true with probability density.
func (r *RNG) Mask(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maskLocked(n, density)
}

func (r *RNG) maskLocked(n int, density float64) []bool {
	m := make([]bool, n)
	for i := range n {
		m[i] = r.rand.Float64() < density
	}
	return m
}

// Indices returns the sorted positions of a random mask. Roughly
// density*docSize positions are selected.
func (r *RNG) Indices(docSize int, density float64) []int {
	return MaskIndices(r.Mask(docSize, density))
}

// Ordered returns a random ordered document cover.
func (r *RNG) Ordered(docSize int, density float64) *cover.Ordered {
	o, err := cover.NewOrdered(docSize, r.Indices(docSize, density))
	if err != nil {
		panic(err) // indices are in range by construction
	}
	return o
}

// Corpus returns document sizes for numDocs documents named doc-0000...
// Sizes are drawn from [minSize, maxSize).
func (r *RNG) Corpus(numDocs, minSize, maxSize int) map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	sizes := make(map[string]int, numDocs)
	for i := range numDocs {
		sizes[fmt.Sprintf("doc-%04d", i)] = minSize + r.rand.Intn(max(1, maxSize-minSize))
	}
	return sizes
}

// Cover returns a random ordered cover over the given corpus.
func (r *RNG) Cover(sizes map[string]int, density float64) *cover.OrderedCover {
	c := cover.New[*cover.Ordered]()
	for _, id := range sortedKeys(sizes) {
		if err := c.Add(id, r.Ordered(sizes[id], density)); err != nil {
			panic(err)
		}
	}
	return c
}

// RuleCovers returns basic covers for numRules rules over the corpus.
// Rule densities follow a Zipf law with skew s, so a few rules match often
// and most match rarely, as attribute values do in natural text.
func (r *RNG) RuleCovers(sizes map[string]int, numRules int, s float64) map[rule.Rule]*cover.OrderedCover {
	out := make(map[rule.Rule]*cover.OrderedCover, numRules)
	for k := range numRules {
		rank := r.Zipf(numRules, s)
		density := 0.5 / float64(rank+1)
		out[rule.Rule{Offset: k%5 - 2, Value: fmt.Sprintf("v%03d", k)}] = r.Cover(sizes, density)
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// MaskIndices returns the positions set in mask.
func MaskIndices(mask []bool) []int {
	var out []int
	for i, v := range mask {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// NaiveMetrics computes the confusion matrix position by position.
// pred and truth must have equal length.
func NaiveMetrics(pred, truth []bool) stats.Metrics {
	var m stats.Metrics
	for i := range pred {
		switch {
		case pred[i] && truth[i]:
			m.TP++
		case pred[i]:
			m.FP++
		case truth[i]:
			m.FN++
		default:
			m.TN++
		}
	}
	return m
}

// sortedKeys fixes the draw order so generated covers are reproducible.
func sortedKeys(m map[string]int) []string {
	return slices.Sorted(maps.Keys(m))
}

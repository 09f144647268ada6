package rule

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/hupe1980/pfe/cover"
	"github.com/hupe1980/pfe/stats"
)

// CoverOf returns the cover of c: the intersection of the basic covers of
// its rules. If a rule has no basic cover the conjunction can never match
// and the empty cover is returned. The empty conjunction also yields the
// empty cover; it is not a meaningful pattern.
//
// basic is only read and may be shared between goroutines.
func CoverOf[T cover.Set[T]](c Conjunction, basic map[Rule]*cover.Cover[T]) (*cover.Cover[T], error) {
	if len(c) == 0 {
		return cover.New[T](), nil
	}
	covers := make([]*cover.Cover[T], 0, len(c))
	for _, r := range c {
		bc, ok := basic[r]
		if !ok {
			return cover.New[T](), nil
		}
		covers = append(covers, bc)
	}

	// Starting from the cover with fewest documents keeps the working map small.
	slices.SortStableFunc(covers, func(a, b *cover.Cover[T]) int {
		return cmp.Compare(a.Len(), b.Len())
	})

	acc := covers[0].Clone()
	for _, bc := range covers[1:] {
		if err := acc.InPlaceIntersection(bc); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Seeds returns the single-rule conjunctions of every rule in basic.
func Seeds[T cover.Set[T]](basic map[Rule]*cover.Cover[T]) []Conjunction {
	return Singletons(slices.Collect(maps.Keys(basic)))
}

// ReorderRecall sorts conjunctions by the recall of their cover against
// truth, highest first. Conjunctions with undefined recall go last; ties
// keep their input order.
func ReorderRecall[T cover.Set[T]](cs []Conjunction, basic map[Rule]*cover.Cover[T], truth *cover.Cover[T]) ([]Conjunction, error) {
	return rank(cs, basic, truth, stats.Metrics.Recall)
}

type scored struct {
	c      Conjunction
	weight float64
}

// rank sorts cs by weight descending with NaN last. The sort is stable.
func rank[T cover.Set[T]](cs []Conjunction, basic map[Rule]*cover.Cover[T], truth *cover.Cover[T], weight func(stats.Metrics) float64) ([]Conjunction, error) {
	ms, err := Metrics(cs, basic, truth)
	if err != nil {
		return nil, err
	}
	buf := make([]scored, len(cs))
	for i, c := range cs {
		buf[i] = scored{c: c, weight: weight(ms[i])}
	}

	slices.SortStableFunc(buf, func(a, b scored) int {
		an, bn := math.IsNaN(a.weight), math.IsNaN(b.weight)
		switch {
		case an && bn:
			return 0
		case an:
			return 1
		case bn:
			return -1
		}
		return cmp.Compare(b.weight, a.weight)
	})

	out := make([]Conjunction, len(buf))
	for i, s := range buf {
		out[i] = s.c
	}
	return out, nil
}

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pfe/stats"
)

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Indices(100, 0.3)
	rng.Reset()
	b := rng.Indices(100, 0.3)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestCorpus(t *testing.T) {
	rng := NewRNG(1)
	sizes := rng.Corpus(25, 10, 20)

	require.Len(t, sizes, 25)
	assert.Contains(t, sizes, "doc-0000")
	assert.Contains(t, sizes, "doc-0024")
	for _, n := range sizes {
		assert.GreaterOrEqual(t, n, 10)
		assert.Less(t, n, 20)
	}
}

func TestCover(t *testing.T) {
	sizes := NewRNG(2).Corpus(5, 30, 40)

	a := NewRNG(3).Cover(sizes, 0.5)
	b := NewRNG(3).Cover(sizes, 0.5)
	assert.True(t, a.Equal(b), "same seed must give the same cover")
	assert.Equal(t, 5, a.Len())

	for _, id := range a.Names() {
		d, err := a.Doc(id)
		require.NoError(t, err)
		assert.Equal(t, sizes[id], d.DocSize())
	}
}

func TestRuleCovers(t *testing.T) {
	rng := NewRNG(4)
	sizes := rng.Corpus(4, 50, 60)
	basic := rng.RuleCovers(sizes, 30, 1.1)

	require.Len(t, basic, 30)
	for r, c := range basic {
		assert.GreaterOrEqual(t, r.Offset, -2)
		assert.LessOrEqual(t, r.Offset, 2)
		assert.Equal(t, 4, c.Len())
	}
}

func TestZipf(t *testing.T) {
	rng := NewRNG(5)
	counts := make([]int, 10)
	for range 5000 {
		k := rng.Zipf(10, 1.2)
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, 10)
		counts[k]++
	}
	assert.Greater(t, counts[0], counts[9])
	assert.Equal(t, 0, rng.Zipf(1, 1.2))
}

func TestNaiveMetrics(t *testing.T) {
	pred := []bool{true, true, false, false, true}
	truth := []bool{true, false, true, false, false}

	assert.Equal(t, stats.New(1, 2, 1, 1), NaiveMetrics(pred, truth))
	assert.Equal(t, []int{0, 1, 4}, MaskIndices(pred))
	assert.Empty(t, MaskIndices(make([]bool, 3)))
}

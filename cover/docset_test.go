package cover_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pfe/cover"
	"github.com/hupe1980/pfe/errs"
	"github.com/hupe1980/pfe/stats"
	"github.com/hupe1980/pfe/testutil"
)

func mustOrdered(t *testing.T, docSize int, indices ...int) *cover.Ordered {
	t.Helper()
	o, err := cover.NewOrdered(docSize, indices)
	require.NoError(t, err)
	return o
}

func TestNewOrdered(t *testing.T) {
	t.Run("SortsAndDeduplicates", func(t *testing.T) {
		o := mustOrdered(t, 10, 7, 1, 3, 1, 7)
		assert.Equal(t, []int{1, 3, 7}, o.Indices())
		assert.Equal(t, 3, o.Size())
		assert.Equal(t, 10, o.DocSize())
		assert.True(t, o.Contains(3))
		assert.False(t, o.Contains(4))
	})

	t.Run("InvalidElement", func(t *testing.T) {
		for _, idx := range []int{-1, 5, 100} {
			_, err := cover.NewOrdered(5, []int{0, idx})
			require.ErrorIs(t, err, errs.ErrInvalidElement, "index %d", idx)
		}
	})

	t.Run("InvalidDocSize", func(t *testing.T) {
		_, err := cover.NewOrdered(-1, nil)
		require.ErrorIs(t, err, errs.ErrInvalidDocSize)
		_, err = cover.FullOrdered(-3)
		require.ErrorIs(t, err, errs.ErrInvalidDocSize)
		_, err = cover.NewCompressed(-1, nil)
		require.ErrorIs(t, err, errs.ErrInvalidDocSize)
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		o := mustOrdered(t, 0)
		assert.Equal(t, 0, o.Size())
		assert.True(t, o.Equal(mustOrdered(t, 0)))
		assert.True(t, cover.SameElements(o, cover.BitsetFromOrdered(o)))
	})

	t.Run("IndicesIsACopy", func(t *testing.T) {
		o := mustOrdered(t, 5, 1, 2)
		idx := o.Indices()
		idx[0] = 4
		assert.Equal(t, []int{1, 2}, o.Indices())
	})
}

func TestOrderedAlgebra(t *testing.T) {
	a := mustOrdered(t, 8, 0, 1, 2, 5)
	b := mustOrdered(t, 8, 1, 2, 3, 7)

	assert.Equal(t, []int{1, 2}, a.Intersection(b).Indices())
	assert.Equal(t, []int{0, 1, 2, 3, 5, 7}, a.Union(b).Indices())
	assert.Equal(t, []int{0, 5}, a.Difference(b).Indices())
	assert.Equal(t, []int{0, 3, 5, 7}, a.SymmetricDifference(b).Indices())

	// Copy forms leave the operands intact.
	assert.Equal(t, []int{0, 1, 2, 5}, a.Indices())
	assert.Equal(t, []int{1, 2, 3, 7}, b.Indices())

	c := a.Clone()
	c.InPlaceIntersection(b)
	assert.Equal(t, []int{1, 2}, c.Indices())
	c = a.Clone()
	c.InPlaceUnion(b)
	assert.Equal(t, []int{0, 1, 2, 3, 5, 7}, c.Indices())
	c = a.Clone()
	c.InPlaceDifference(b)
	assert.Equal(t, []int{0, 5}, c.Indices())
	c = a.Clone()
	c.InPlaceSymmetricDifference(b)
	assert.Equal(t, []int{0, 3, 5, 7}, c.Indices())
	assert.Equal(t, []int{0, 1, 2, 5}, a.Indices(), "clone must not share storage")
}

func TestDocMetrics(t *testing.T) {
	truth := mustOrdered(t, 5, 0, 2, 4)
	pred := mustOrdered(t, 5, 0, 2)

	m, err := pred.Metrics(truth)
	require.NoError(t, err)
	assert.Equal(t, stats.New(2, 0, 2, 1), m)
	assert.InDelta(t, 2.0/3.0, m.Recall(), 1e-12)
	assert.InDelta(t, 1.0, m.Precision(), 1e-12)
	assert.InDelta(t, 0.0, m.FalsePositiveRate(), 1e-12)

	bm, err := cover.BitsetFromOrdered(pred).Metrics(cover.BitsetFromOrdered(truth))
	require.NoError(t, err)
	assert.Equal(t, m, bm)

	cp, err := cover.CompressedFromOrdered(pred)
	require.NoError(t, err)
	ct, err := cover.CompressedFromOrdered(truth)
	require.NoError(t, err)
	cm, err := cp.Metrics(ct)
	require.NoError(t, err)
	assert.Equal(t, m, cm)

	_, err = pred.Metrics(mustOrdered(t, 6, 0))
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
	_, err = cover.NewBitset(make([]bool, 3)).Metrics(cover.NewBitset(make([]bool, 4)))
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}

// algebraCase runs the set-algebra properties for one representation.
func algebraCase[T cover.Set[T]](t *testing.T, a, b T, aBits, bBits []bool) {
	t.Helper()
	n := a.DocSize()

	// Idempotence.
	assert.True(t, a.Intersection(a).Equal(a))
	assert.True(t, a.Union(a).Equal(a))
	assert.Equal(t, 0, a.Difference(a).Size())
	assert.Equal(t, 0, a.SymmetricDifference(a).Size())

	// Commutativity.
	assert.True(t, a.Intersection(b).Equal(b.Intersection(a)))
	assert.True(t, a.Union(b).Equal(b.Union(a)))
	assert.True(t, a.SymmetricDifference(b).Equal(b.SymmetricDifference(a)))

	// Inclusion-exclusion and the difference identities through sizes.
	inter := a.Intersection(b).Size()
	union := a.Union(b).Size()
	assert.Equal(t, a.Size()+b.Size(), union+inter)
	assert.Equal(t, a.Size()-inter, a.Difference(b).Size())
	assert.Equal(t, union-inter, a.SymmetricDifference(b).Size())
	assert.True(t, a.SymmetricDifference(b).Equal(a.Difference(b).Union(b.Difference(a))))

	// In-place forms agree with the copying forms and leave both operands unchanged.
	aIndices, bIndices := a.Indices(), b.Indices()
	inPlace := []struct {
		name    string
		apply   func(x T)
		copying func() T
	}{
		{"Intersection", func(x T) { x.InPlaceIntersection(b) }, func() T { return a.Intersection(b) }},
		{"Union", func(x T) { x.InPlaceUnion(b) }, func() T { return a.Union(b) }},
		{"Difference", func(x T) { x.InPlaceDifference(b) }, func() T { return a.Difference(b) }},
		{"SymmetricDifference", func(x T) { x.InPlaceSymmetricDifference(b) }, func() T { return a.SymmetricDifference(b) }},
	}
	for _, op := range inPlace {
		x := a.Clone()
		op.apply(x)
		assert.True(t, x.Equal(op.copying()), "InPlace%s", op.name)
		assert.Equal(t, n, x.DocSize(), "InPlace%s", op.name)
		assert.Equal(t, aIndices, a.Indices(), "InPlace%s modified the clone source", op.name)
		assert.Equal(t, bIndices, b.Indices(), "InPlace%s modified its operand", op.name)
	}

	// Self comparison.
	m, err := a.Metrics(a)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.FP)
	assert.Equal(t, int64(0), m.FN)
	assert.Equal(t, int64(a.Size()), m.TP)
	assert.Equal(t, int64(n-a.Size()), m.TN)

	// Against a brute-force count; tn = docSize - |a ∪ b|.
	m, err = a.Metrics(b)
	require.NoError(t, err)
	assert.Equal(t, testutil.NaiveMetrics(aBits, bBits), m)
	assert.Equal(t, int64(n-union), m.TN)
}

func TestSetAlgebraProperties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for trial := range 25 {
		docSize := rng.Intn(300)
		aBits := rng.Mask(docSize, 0.3)
		bBits := rng.Mask(docSize, 0.5)
		ao, err := cover.NewOrdered(docSize, testutil.MaskIndices(aBits))
		require.NoError(t, err)
		bo, err := cover.NewOrdered(docSize, testutil.MaskIndices(bBits))
		require.NoError(t, err)

		t.Run(fmt.Sprintf("Ordered/%d", trial), func(t *testing.T) {
			algebraCase(t, ao, bo, aBits, bBits)
		})
		t.Run(fmt.Sprintf("Bitset/%d", trial), func(t *testing.T) {
			algebraCase(t, cover.NewBitset(aBits), cover.NewBitset(bBits), aBits, bBits)
		})
		t.Run(fmt.Sprintf("Compressed/%d", trial), func(t *testing.T) {
			ac, err := cover.CompressedFromOrdered(ao)
			require.NoError(t, err)
			bc, err := cover.CompressedFromOrdered(bo)
			require.NoError(t, err)
			algebraCase(t, ac, bc, aBits, bBits)
		})
		t.Run(fmt.Sprintf("Agreement/%d", trial), func(t *testing.T) {
			ab, bb := cover.NewBitset(aBits), cover.NewBitset(bBits)
			assert.True(t, cover.SameElements(ao.Intersection(bo), ab.Intersection(bb)))
			assert.True(t, cover.SameElements(ao.Union(bo), ab.Union(bb)))
			assert.True(t, cover.SameElements(ao.Difference(bo), ab.Difference(bb)))
			assert.True(t, cover.SameElements(ao.SymmetricDifference(bo), ab.SymmetricDifference(bb)))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(42)

	for range 20 {
		docSize := rng.Intn(500)
		o := rng.Ordered(docSize, 0.2)

		b := cover.BitsetFromOrdered(o)
		assert.Equal(t, o.DocSize(), b.DocSize())
		assert.True(t, cover.OrderedFromBitset(b).Equal(o))

		c, err := cover.CompressedFromOrdered(o)
		require.NoError(t, err)
		assert.True(t, cover.OrderedFromCompressed(c).Equal(o))
		assert.True(t, cover.BitsetFromCompressed(c).Equal(b))

		c2, err := cover.CompressedFromBitset(b)
		require.NoError(t, err)
		assert.True(t, c2.Equal(c))

		bits := b.Bits()
		require.Len(t, bits, docSize)
		assert.True(t, cover.NewBitset(bits).Equal(b))
	}
}

func TestEquality(t *testing.T) {
	a := mustOrdered(t, 5, 1, 2)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(mustOrdered(t, 5, 2, 1)))
	assert.False(t, a.Equal(mustOrdered(t, 6, 1, 2)), "document size is part of identity")
	assert.False(t, a.Equal(mustOrdered(t, 5, 1)))

	b := cover.BitsetFromOrdered(a)
	assert.False(t, b.Equal(cover.BitsetFromOrdered(mustOrdered(t, 6, 1, 2))))
	assert.False(t, cover.SameElements(a, cover.BitsetFromOrdered(mustOrdered(t, 6, 1, 2))))
}

func TestCompressed(t *testing.T) {
	c, err := cover.NewCompressed(1_000_000, []int{999_999, 3, 3, 500_000})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 500_000, 999_999}, c.Indices())
	assert.True(t, c.Contains(500_000))
	assert.False(t, c.Contains(-1))
	assert.False(t, c.Contains(1_000_000))

	var seen []int
	for i := range c.Positions() {
		seen = append(seen, i)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 500_000}, seen)

	c.Optimize()
	assert.Positive(t, c.SizeInBytes())

	_, err = cover.NewCompressed(10, []int{10})
	require.ErrorIs(t, err, errs.ErrInvalidElement)
}

package cover

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/pfe/stats"
)

// Bitset is a document cover stored as a fixed-length bit vector with one
// bit per document position. Algebra and cardinalities run word-parallel.
type Bitset struct {
	docSize int
	bits    *bitset.BitSet
}

var _ Set[*Bitset] = (*Bitset)(nil)

// NewBitset creates a cover whose document size is len(bits).
func NewBitset(bits []bool) *Bitset {
	b := bitset.New(uint(len(bits)))
	for i, v := range bits {
		if v {
			b.Set(uint(i))
		}
	}
	return &Bitset{docSize: len(bits), bits: b}
}

// BitsetFromOrdered converts an ordered cover. The conversion is exact.
func BitsetFromOrdered(o *Ordered) *Bitset {
	b := bitset.New(uint(o.docSize))
	for _, i := range o.indices {
		b.Set(uint(i))
	}
	return &Bitset{docSize: o.docSize, bits: b}
}

// OrderedFromBitset converts a bitset cover. The conversion is exact.
func OrderedFromBitset(b *Bitset) *Ordered {
	return &Ordered{docSize: b.docSize, indices: b.Indices()}
}

// DocSize returns the number of positions in the document.
func (b *Bitset) DocSize() int { return b.docSize }

// Size returns the number of matched positions.
func (b *Bitset) Size() int { return int(b.bits.Count()) }

// Contains reports whether position i is matched.
func (b *Bitset) Contains(i int) bool {
	if i < 0 || i >= b.docSize {
		return false
	}
	return b.bits.Test(uint(i))
}

// Indices returns the matched positions in ascending order.
func (b *Bitset) Indices() []int {
	out := make([]int, 0, b.bits.Count())
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Bits returns the cover as a boolean vector of length DocSize.
func (b *Bitset) Bits() []bool {
	out := make([]bool, b.docSize)
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		out[i] = true
	}
	return out
}

// Clone returns an independent copy.
func (b *Bitset) Clone() *Bitset {
	return &Bitset{docSize: b.docSize, bits: b.bits.Clone()}
}

// Equal reports whether both covers have the same size and positions.
func (b *Bitset) Equal(other *Bitset) bool {
	if b == other {
		return true
	}
	return b.docSize == other.docSize && b.bits.Equal(other.bits)
}

// Intersection returns the positions matched by both covers.
func (b *Bitset) Intersection(other *Bitset) *Bitset {
	return &Bitset{docSize: b.docSize, bits: b.bits.Intersection(other.bits)}
}

// Union returns the positions matched by either cover.
func (b *Bitset) Union(other *Bitset) *Bitset {
	return &Bitset{docSize: b.docSize, bits: b.bits.Union(other.bits)}
}

// Difference returns the positions matched by the receiver but not by other.
func (b *Bitset) Difference(other *Bitset) *Bitset {
	return &Bitset{docSize: b.docSize, bits: b.bits.Difference(other.bits)}
}

// SymmetricDifference returns the positions matched by exactly one cover.
func (b *Bitset) SymmetricDifference(other *Bitset) *Bitset {
	return &Bitset{docSize: b.docSize, bits: b.bits.SymmetricDifference(other.bits)}
}

// InPlaceIntersection keeps only positions also matched by other.
func (b *Bitset) InPlaceIntersection(other *Bitset) {
	b.bits.InPlaceIntersection(other.bits)
}

// InPlaceUnion adds the positions matched by other.
func (b *Bitset) InPlaceUnion(other *Bitset) {
	b.bits.InPlaceUnion(other.bits)
}

// InPlaceDifference removes the positions matched by other.
func (b *Bitset) InPlaceDifference(other *Bitset) {
	b.bits.InPlaceDifference(other.bits)
}

// InPlaceSymmetricDifference toggles the positions matched by other.
func (b *Bitset) InPlaceSymmetricDifference(other *Bitset) {
	b.bits.InPlaceSymmetricDifference(other.bits)
}

// Metrics only counts; no intermediate bit vectors are allocated.
func (b *Bitset) Metrics(truth *Bitset) (stats.Metrics, error) {
	if err := checkDocSize(b.docSize, truth.docSize); err != nil {
		return stats.Metrics{}, err
	}
	tp := int(b.bits.IntersectionCardinality(truth.bits))
	return confusion(b.docSize, b.Size(), truth.Size(), tp), nil
}

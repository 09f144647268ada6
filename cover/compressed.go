package cover

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pfe/errs"
	"github.com/hupe1980/pfe/stats"
)

// maxCompressedDocSize is the size of the 32-bit roaring universe.
const maxCompressedDocSize int64 = math.MaxUint32 + 1

// Compressed is a document cover stored as a Roaring bitmap. It suits very
// long documents with few matches, where a Bitset wastes memory and an
// Ordered cover wastes merge time.
type Compressed struct {
	docSize int
	rb      *roaring.Bitmap
}

var _ Set[*Compressed] = (*Compressed)(nil)

// NewCompressed creates a cover of a document with docSize positions.
func NewCompressed(docSize int, indices []int) (*Compressed, error) {
	if docSize < 0 || int64(docSize) > maxCompressedDocSize {
		return nil, errs.InvalidDocSize(docSize)
	}
	rb := roaring.New()
	for _, i := range indices {
		if i < 0 || i >= docSize {
			return nil, errs.InvalidElement(i, docSize)
		}
		rb.Add(uint32(i))
	}
	return &Compressed{docSize: docSize, rb: rb}, nil
}

// CompressedFromOrdered converts an ordered cover. It fails only if the
// document is larger than the 32-bit universe.
func CompressedFromOrdered(o *Ordered) (*Compressed, error) {
	if int64(o.docSize) > maxCompressedDocSize {
		return nil, errs.InvalidDocSize(o.docSize)
	}
	vals := make([]uint32, len(o.indices))
	for k, i := range o.indices {
		vals[k] = uint32(i)
	}
	rb := roaring.New()
	rb.AddMany(vals)
	return &Compressed{docSize: o.docSize, rb: rb}, nil
}

// CompressedFromBitset converts a bitset cover.
func CompressedFromBitset(b *Bitset) (*Compressed, error) {
	return CompressedFromOrdered(OrderedFromBitset(b))
}

// OrderedFromCompressed converts a compressed cover. The conversion is exact.
func OrderedFromCompressed(c *Compressed) *Ordered {
	return &Ordered{docSize: c.docSize, indices: c.Indices()}
}

// BitsetFromCompressed converts a compressed cover. The conversion is exact.
func BitsetFromCompressed(c *Compressed) *Bitset {
	return BitsetFromOrdered(OrderedFromCompressed(c))
}

// DocSize returns the number of positions in the document.
func (c *Compressed) DocSize() int { return c.docSize }

// Size returns the number of matched positions.
func (c *Compressed) Size() int { return int(c.rb.GetCardinality()) }

// Contains reports whether position i is matched.
func (c *Compressed) Contains(i int) bool {
	if i < 0 || i >= c.docSize {
		return false
	}
	return c.rb.Contains(uint32(i))
}

// Indices returns the matched positions in ascending order.
func (c *Compressed) Indices() []int {
	out := make([]int, 0, c.rb.GetCardinality())
	for i := range c.Positions() {
		out = append(out, i)
	}
	return out
}

// Positions iterates over the matched positions in ascending order.
func (c *Compressed) Positions() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := c.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Optimize converts containers to run-length encoding where smaller.
// It rewrites the receiver; call it before publishing the cover.
func (c *Compressed) Optimize() {
	c.rb.RunOptimize()
}

// SizeInBytes returns the serialized size of the bitmap.
func (c *Compressed) SizeInBytes() uint64 {
	return c.rb.GetSizeInBytes()
}

// Clone returns an independent copy.
func (c *Compressed) Clone() *Compressed {
	return &Compressed{docSize: c.docSize, rb: c.rb.Clone()}
}

// Equal reports whether both covers have the same size and positions.
func (c *Compressed) Equal(other *Compressed) bool {
	if c == other {
		return true
	}
	return c.docSize == other.docSize && c.rb.Equals(other.rb)
}

// Intersection returns the positions matched by both covers.
func (c *Compressed) Intersection(other *Compressed) *Compressed {
	return &Compressed{docSize: c.docSize, rb: roaring.And(c.rb, other.rb)}
}

// Union returns the positions matched by either cover.
func (c *Compressed) Union(other *Compressed) *Compressed {
	return &Compressed{docSize: c.docSize, rb: roaring.Or(c.rb, other.rb)}
}

// Difference returns the positions matched by the receiver but not by other.
func (c *Compressed) Difference(other *Compressed) *Compressed {
	return &Compressed{docSize: c.docSize, rb: roaring.AndNot(c.rb, other.rb)}
}

// SymmetricDifference returns the positions matched by exactly one cover.
func (c *Compressed) SymmetricDifference(other *Compressed) *Compressed {
	return &Compressed{docSize: c.docSize, rb: roaring.Xor(c.rb, other.rb)}
}

// InPlaceIntersection keeps only positions also matched by other.
func (c *Compressed) InPlaceIntersection(other *Compressed) {
	c.rb.And(other.rb)
}

// InPlaceUnion adds the positions matched by other.
func (c *Compressed) InPlaceUnion(other *Compressed) {
	c.rb.Or(other.rb)
}

// InPlaceDifference removes the positions matched by other.
func (c *Compressed) InPlaceDifference(other *Compressed) {
	c.rb.AndNot(other.rb)
}

// InPlaceSymmetricDifference toggles the positions matched by other.
func (c *Compressed) InPlaceSymmetricDifference(other *Compressed) {
	c.rb.Xor(other.rb)
}

// Metrics compares the receiver against truth. Document sizes must match.
func (c *Compressed) Metrics(truth *Compressed) (stats.Metrics, error) {
	if err := checkDocSize(c.docSize, truth.docSize); err != nil {
		return stats.Metrics{}, err
	}
	tp := int(c.rb.AndCardinality(truth.rb))
	return confusion(c.docSize, c.Size(), truth.Size(), tp), nil
}

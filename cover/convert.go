package cover

import (
	"github.com/hupe1980/pfe/errs"
)

// Convert translates every document cover of c with fn, keeping ids.
func Convert[S Set[S], D Set[D]](c *Cover[S], fn func(S) D) *Cover[D] {
	out := &Cover[D]{docs: make(map[string]D, len(c.docs))}
	for id, d := range c.docs {
		out.docs[id] = fn(d)
	}
	return out
}

// ConvertErr is Convert for fallible conversions. The first error is
// annotated with the failing document id.
func ConvertErr[S Set[S], D Set[D]](c *Cover[S], fn func(S) (D, error)) (*Cover[D], error) {
	out := &Cover[D]{docs: make(map[string]D, len(c.docs))}
	for id, d := range c.docs {
		nd, err := fn(d)
		if err != nil {
			return nil, errs.WithDocID(err, id)
		}
		out.docs[id] = nd
	}
	return out, nil
}

// ToBitset converts an ordered cover to bitset representation.
func ToBitset(c *OrderedCover) *BitsetCover {
	return Convert(c, BitsetFromOrdered)
}

// ToOrdered converts a bitset cover to ordered representation.
func ToOrdered(c *BitsetCover) *OrderedCover {
	return Convert(c, OrderedFromBitset)
}

// ToCompressed converts an ordered cover to compressed representation.
func ToCompressed(c *OrderedCover) (*CompressedCover, error) {
	return ConvertErr(c, CompressedFromOrdered)
}

// CompressedToOrdered converts a compressed cover to ordered representation.
func CompressedToOrdered(c *CompressedCover) *OrderedCover {
	return Convert(c, OrderedFromCompressed)
}

// IndexMap returns the matched positions of every document.
func IndexMap[T Set[T]](c *Cover[T]) map[string][]int {
	m := make(map[string][]int, len(c.docs))
	for id, d := range c.docs {
		m[id] = d.Indices()
	}
	return m
}

// BoolMap returns every document cover as a boolean vector of DocSize.
func BoolMap[T Set[T]](c *Cover[T]) map[string][]bool {
	m := make(map[string][]bool, len(c.docs))
	for id, d := range c.docs {
		v := make([]bool, d.DocSize())
		for _, i := range d.Indices() {
			v[i] = true
		}
		m[id] = v
	}
	return m
}

// SizeMap returns the document size of every document.
func SizeMap[T Set[T]](c *Cover[T]) map[string]int {
	m := make(map[string]int, len(c.docs))
	for id, d := range c.docs {
		m[id] = d.DocSize()
	}
	return m
}

// OrderedFromIndexMap builds an ordered cover from matched positions.
// Every document in indices needs an entry in sizes; extra sizes are ignored.
func OrderedFromIndexMap(indices map[string][]int, sizes map[string]int) (*OrderedCover, error) {
	c := &OrderedCover{docs: make(map[string]*Ordered, len(indices))}
	for id, idx := range indices {
		size, ok := sizes[id]
		if !ok {
			return nil, errs.SizeNotDefined(id)
		}
		d, err := NewOrdered(size, idx)
		if err != nil {
			return nil, errs.WithDocID(err, id)
		}
		c.docs[id] = d
	}
	return c, nil
}

// BitsetFromBoolMap builds a bitset cover from boolean vectors.
func BitsetFromBoolMap(bits map[string][]bool) *BitsetCover {
	c := &BitsetCover{docs: make(map[string]*Bitset, len(bits))}
	for id, v := range bits {
		c.docs[id] = NewBitset(v)
	}
	return c
}

// Full returns the cover matching every position of every document,
// commonly used as the reference when mining over a whole corpus.
func Full(sizes map[string]int) (*OrderedCover, error) {
	c := &OrderedCover{docs: make(map[string]*Ordered, len(sizes))}
	for id, size := range sizes {
		d, err := FullOrdered(size)
		if err != nil {
			return nil, errs.WithDocID(err, id)
		}
		c.docs[id] = d
	}
	return c, nil
}

package cover

import (
	"slices"

	"github.com/hupe1980/pfe/errs"
	"github.com/hupe1980/pfe/stats"
)

// Ordered is a document cover stored as a sorted, duplicate-free index list.
// All binary operations are linear merges over the two sorted sequences.
type Ordered struct {
	docSize int
	indices []int
}

var _ Set[*Ordered] = (*Ordered)(nil)

// NewOrdered creates a cover of a document with docSize positions.
// indices may be unsorted and contain duplicates; every index must lie in
// [0, docSize).
func NewOrdered(docSize int, indices []int) (*Ordered, error) {
	if docSize < 0 {
		return nil, errs.InvalidDocSize(docSize)
	}
	for _, i := range indices {
		if i < 0 || i >= docSize {
			return nil, errs.InvalidElement(i, docSize)
		}
	}
	s := slices.Clone(indices)
	slices.Sort(s)
	return &Ordered{docSize: docSize, indices: slices.Compact(s)}, nil
}

// FullOrdered returns the cover matching every position of the document.
func FullOrdered(docSize int) (*Ordered, error) {
	if docSize < 0 {
		return nil, errs.InvalidDocSize(docSize)
	}
	s := make([]int, docSize)
	for i := range s {
		s[i] = i
	}
	return &Ordered{docSize: docSize, indices: s}, nil
}

// DocSize returns the number of positions in the document.
func (o *Ordered) DocSize() int { return o.docSize }

// Size returns the number of matched positions.
func (o *Ordered) Size() int { return len(o.indices) }

// Contains reports whether position i is matched.
func (o *Ordered) Contains(i int) bool {
	_, found := slices.BinarySearch(o.indices, i)
	return found
}

// Indices returns a copy of the matched positions. The result is never nil.
func (o *Ordered) Indices() []int {
	return append(make([]int, 0, len(o.indices)), o.indices...)
}

// Clone returns an independent copy.
func (o *Ordered) Clone() *Ordered {
	return &Ordered{docSize: o.docSize, indices: slices.Clone(o.indices)}
}

// Equal reports whether both covers have the same size and positions.
func (o *Ordered) Equal(other *Ordered) bool {
	if o == other {
		return true
	}
	return o.docSize == other.docSize && slices.Equal(o.indices, other.indices)
}

// Intersection returns the positions matched by both covers.
func (o *Ordered) Intersection(other *Ordered) *Ordered {
	return &Ordered{docSize: o.docSize, indices: intersectSorted(o.indices, other.indices)}
}

// Union returns the positions matched by either cover.
func (o *Ordered) Union(other *Ordered) *Ordered {
	return &Ordered{docSize: o.docSize, indices: unionSorted(o.indices, other.indices)}
}

// Difference returns the positions matched by the receiver but not by other.
func (o *Ordered) Difference(other *Ordered) *Ordered {
	return &Ordered{docSize: o.docSize, indices: differenceSorted(o.indices, other.indices)}
}

// SymmetricDifference returns the positions matched by exactly one cover.
func (o *Ordered) SymmetricDifference(other *Ordered) *Ordered {
	return &Ordered{docSize: o.docSize, indices: symmetricDifferenceSorted(o.indices, other.indices)}
}

// InPlaceIntersection keeps only positions also matched by other.
func (o *Ordered) InPlaceIntersection(other *Ordered) {
	o.indices = intersectSorted(o.indices, other.indices)
}

// InPlaceUnion adds the positions matched by other.
func (o *Ordered) InPlaceUnion(other *Ordered) {
	o.indices = unionSorted(o.indices, other.indices)
}

// InPlaceDifference removes the positions matched by other.
func (o *Ordered) InPlaceDifference(other *Ordered) {
	o.indices = differenceSorted(o.indices, other.indices)
}

// InPlaceSymmetricDifference toggles the positions matched by other.
func (o *Ordered) InPlaceSymmetricDifference(other *Ordered) {
	o.indices = symmetricDifferenceSorted(o.indices, other.indices)
}

// Metrics compares the receiver against truth. Document sizes must match.
func (o *Ordered) Metrics(truth *Ordered) (stats.Metrics, error) {
	if err := checkDocSize(o.docSize, truth.docSize); err != nil {
		return stats.Metrics{}, err
	}
	tp := intersectCount(o.indices, truth.indices)
	return confusion(o.docSize, len(o.indices), len(truth.indices), tp), nil
}

// The merge helpers always allocate a fresh result so that the inputs,
// which may be shared, are never written.

func intersectSorted(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func intersectCount(a, b []int) int {
	n := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}

func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

func differenceSorted(a, b []int) []int {
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	return append(out, a[i:]...)
}

func symmetricDifferenceSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

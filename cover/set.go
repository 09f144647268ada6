package cover

import (
	"slices"

	"github.com/hupe1980/pfe/errs"
	"github.com/hupe1980/pfe/stats"
)

// Set is the algebra over matched positions of one document shared by all
// document cover representations. T is the implementing type itself, so
// operands always have the same representation.
//
// Binary operations do not validate document sizes; Cover does that at the
// corpus level. Metrics does validate.
type Set[T any] interface {
	// DocSize returns the number of positions in the document.
	DocSize() int
	// Size returns the number of matched positions.
	Size() int
	// Contains reports whether position i is matched.
	Contains(i int) bool
	// Indices returns the matched positions in ascending order.
	Indices() []int

	Clone() T
	Equal(other T) bool

	Intersection(other T) T
	Union(other T) T
	Difference(other T) T
	SymmetricDifference(other T) T

	InPlaceIntersection(other T)
	InPlaceUnion(other T)
	InPlaceDifference(other T)
	InPlaceSymmetricDifference(other T)

	// Metrics compares the receiver (prediction) against truth.
	Metrics(truth T) (stats.Metrics, error)
}

// SameElements reports whether a and b describe the same document cover
// regardless of representation.
func SameElements[A Set[A], B Set[B]](a A, b B) bool {
	if a.DocSize() != b.DocSize() || a.Size() != b.Size() {
		return false
	}
	return slices.Equal(a.Indices(), b.Indices())
}

// confusion builds the confusion matrix from set cardinalities:
// fp = |a|-tp, fn = |t|-tp, tn = docSize - |a ∪ t|.
func confusion(docSize, size, truthSize, tp int) stats.Metrics {
	union := size + truthSize - tp
	return stats.New(
		int64(tp),
		int64(size-tp),
		int64(docSize-union),
		int64(truthSize-tp),
	)
}

func checkDocSize(a, b int) error {
	if a != b {
		return errs.SizeMismatch("", b, a)
	}
	return nil
}

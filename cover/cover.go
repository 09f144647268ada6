package cover

import (
	"maps"
	"slices"

	"github.com/hupe1980/pfe/errs"
	"github.com/hupe1980/pfe/stats"
)

// Cover maps document ids to document covers. It is the match set of a rule
// or pattern over a corpus. The zero value is an empty cover ready to use.
type Cover[T Set[T]] struct {
	docs map[string]T
}

type (
	OrderedCover    = Cover[*Ordered]
	BitsetCover     = Cover[*Bitset]
	CompressedCover = Cover[*Compressed]
)

// New returns an empty cover.
func New[T Set[T]]() *Cover[T] {
	return &Cover[T]{docs: make(map[string]T)}
}

// FromMap creates a cover from a map of document covers. The map is copied;
// the document covers are shared.
func FromMap[T Set[T]](m map[string]T) *Cover[T] {
	return &Cover[T]{docs: maps.Clone(m)}
}

// Map returns a copy of the id to document cover mapping.
func (c *Cover[T]) Map() map[string]T {
	m := make(map[string]T, len(c.docs))
	maps.Copy(m, c.docs)
	return m
}

// Len returns the number of documents in the cover.
func (c *Cover[T]) Len() int {
	return len(c.docs)
}

// Add inserts the cover of document id. Covers are append-only: adding an
// id twice fails with errs.ErrDuplicateDocument.
func (c *Cover[T]) Add(id string, doc T) error {
	if _, ok := c.docs[id]; ok {
		return errs.DuplicateDocument(id)
	}
	if c.docs == nil {
		c.docs = make(map[string]T)
	}
	c.docs[id] = doc
	return nil
}

// Names returns the sorted document ids.
func (c *Cover[T]) Names() []string {
	return slices.Sorted(maps.Keys(c.docs))
}

// Doc returns the cover of document id.
func (c *Cover[T]) Doc(id string) (T, error) {
	d, ok := c.docs[id]
	if !ok {
		var zero T
		return zero, errs.DocumentNotFound(id)
	}
	return d, nil
}

// Has reports whether document id is present.
func (c *Cover[T]) Has(id string) bool {
	_, ok := c.docs[id]
	return ok
}

// Size returns the total number of matched positions over all documents.
func (c *Cover[T]) Size() int {
	n := 0
	for _, d := range c.docs {
		n += d.Size()
	}
	return n
}

// Sample restricts the cover to the given documents. Ids without a
// document cover are skipped: they are legitimately empty.
func (c *Cover[T]) Sample(ids []string) *Cover[T] {
	s := New[T]()
	for _, id := range ids {
		if d, ok := c.docs[id]; ok {
			s.docs[id] = d
		}
	}
	return s
}

// Clone returns a copy of the cover. Document covers are shared, which is
// safe because Cover never modifies them in place.
func (c *Cover[T]) Clone() *Cover[T] {
	return &Cover[T]{docs: c.Map()}
}

// Metrics compares the cover against truth over the whole corpus.
//
// A document only in c counts entirely as false positives; a document only
// in truth counts entirely as false negatives. Shared documents must have
// equal sizes.
func (c *Cover[T]) Metrics(truth *Cover[T]) (stats.Metrics, error) {
	var total stats.Metrics
	for id, d := range c.docs {
		td, ok := truth.docs[id]
		if !ok {
			total.FP += int64(d.Size())
			continue
		}
		m, err := d.Metrics(td)
		if err != nil {
			return stats.Metrics{}, errs.WithDocID(err, id)
		}
		total = total.Add(m)
	}
	for id, td := range truth.docs {
		if _, ok := c.docs[id]; !ok {
			total.FN += int64(td.Size())
		}
	}
	return total, nil
}

// DocumentMetrics is Metrics broken down per document, using the same
// absence-as-empty rules.
func (c *Cover[T]) DocumentMetrics(truth *Cover[T]) (map[string]stats.Metrics, error) {
	out := make(map[string]stats.Metrics, max(len(c.docs), len(truth.docs)))
	for id, d := range c.docs {
		td, ok := truth.docs[id]
		if !ok {
			out[id] = stats.New(0, int64(d.Size()), 0, 0)
			continue
		}
		m, err := d.Metrics(td)
		if err != nil {
			return nil, errs.WithDocID(err, id)
		}
		out[id] = m
	}
	for id, td := range truth.docs {
		if _, ok := c.docs[id]; !ok {
			out[id] = stats.New(0, 0, 0, int64(td.Size()))
		}
	}
	return out, nil
}

// Equal reports whether both covers have the same documents with equal
// document covers.
func (c *Cover[T]) Equal(other *Cover[T]) bool {
	if len(c.docs) != len(other.docs) {
		return false
	}
	for id, d := range c.docs {
		od, ok := other.docs[id]
		if !ok || !d.Equal(od) {
			return false
		}
	}
	return true
}

// checkShared validates that every document present in both covers has
// the same size. Operations call it before modifying anything.
func (c *Cover[T]) checkShared(other *Cover[T]) error {
	small, large := c.docs, other.docs
	swapped := false
	if len(large) < len(small) {
		small, large = large, small
		swapped = true
	}
	for id, d := range small {
		od, ok := large[id]
		if !ok || d.DocSize() == od.DocSize() {
			continue
		}
		if swapped {
			return errs.SizeMismatch(id, d.DocSize(), od.DocSize())
		}
		return errs.SizeMismatch(id, od.DocSize(), d.DocSize())
	}
	return nil
}

// InPlaceIntersection keeps only documents present in both covers and
// intersects their document covers.
func (c *Cover[T]) InPlaceIntersection(other *Cover[T]) error {
	if err := c.checkShared(other); err != nil {
		return err
	}
	m := make(map[string]T, min(len(c.docs), len(other.docs)))
	for id, d := range c.docs {
		if od, ok := other.docs[id]; ok {
			m[id] = d.Intersection(od)
		}
	}
	c.docs = m
	return nil
}

// InPlaceUnion unions shared documents and adds documents only present in
// other unchanged.
func (c *Cover[T]) InPlaceUnion(other *Cover[T]) error {
	if err := c.checkShared(other); err != nil {
		return err
	}
	if c.docs == nil {
		c.docs = make(map[string]T, len(other.docs))
	}
	for id, od := range other.docs {
		if d, ok := c.docs[id]; ok {
			c.docs[id] = d.Union(od)
		} else {
			c.docs[id] = od
		}
	}
	return nil
}

// InPlaceDifference subtracts other from shared documents. Documents absent
// from other are left untouched: there is nothing to subtract.
func (c *Cover[T]) InPlaceDifference(other *Cover[T]) error {
	if err := c.checkShared(other); err != nil {
		return err
	}
	for id, d := range c.docs {
		if od, ok := other.docs[id]; ok {
			c.docs[id] = d.Difference(od)
		}
	}
	return nil
}

// InPlaceSymmetricDifference combines shared documents and adds documents
// only present in other unchanged.
func (c *Cover[T]) InPlaceSymmetricDifference(other *Cover[T]) error {
	if err := c.checkShared(other); err != nil {
		return err
	}
	if c.docs == nil {
		c.docs = make(map[string]T, len(other.docs))
	}
	for id, od := range other.docs {
		if d, ok := c.docs[id]; ok {
			c.docs[id] = d.SymmetricDifference(od)
		} else {
			c.docs[id] = od
		}
	}
	return nil
}

// Intersection returns c ∩ other without modifying either cover.
func (c *Cover[T]) Intersection(other *Cover[T]) (*Cover[T], error) {
	r := c.Clone()
	if err := r.InPlaceIntersection(other); err != nil {
		return nil, err
	}
	return r, nil
}

// Union returns c ∪ other without modifying either cover.
func (c *Cover[T]) Union(other *Cover[T]) (*Cover[T], error) {
	r := c.Clone()
	if err := r.InPlaceUnion(other); err != nil {
		return nil, err
	}
	return r, nil
}

// Difference returns c − other without modifying either cover.
func (c *Cover[T]) Difference(other *Cover[T]) (*Cover[T], error) {
	r := c.Clone()
	if err := r.InPlaceDifference(other); err != nil {
		return nil, err
	}
	return r, nil
}

// SymmetricDifference returns c △ other without modifying either cover.
func (c *Cover[T]) SymmetricDifference(other *Cover[T]) (*Cover[T], error) {
	r := c.Clone()
	if err := r.InPlaceSymmetricDifference(other); err != nil {
		return nil, err
	}
	return r, nil
}

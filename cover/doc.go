// Package cover implements document covers: the set of positions within a
// document (or across a corpus) that a rule or pattern matches.
//
// # Document covers
//
// A document cover is a position set over a document of known size. Three
// interchangeable representations implement the Set capability:
//
//	Ordered     sorted unique []int           merge-based algebra, O(n+m)
//	Bitset      bits-and-blooms/bitset        word-parallel algebra, O(docSize/64)
//	Compressed  roaring bitmap                container algebra, sparse long documents
//
// Conversions are explicit constructors (BitsetFromOrdered, OrderedFromBitset,
// ...) so the cost of switching representation stays visible at the call site.
// Conversions are exact: document size and positions are preserved.
//
// # Corpus covers
//
// Cover[T] maps document ids to document covers of one representation. A
// document absent from a Cover is treated as an empty cover for metric
// purposes. Set operations validate that shared documents have equal sizes
// before touching anything:
//
//	a, _ := cover.OrderedFromIndexMap(map[string][]int{"d1": {0, 2}}, sizes)
//	truth, _ := cover.Full(sizes)
//	m, err := a.Metrics(truth)
//	fmt.Println(m.Recall(), m.Precision())
//
// # Sharing
//
// A Cover never mutates a stored document cover in place; operations
// replace entries instead. Covers published to concurrent readers (for
// example the basic covers handed to the mining engine) may therefore be
// read from many goroutines without synchronization. Document covers
// obtained through Doc or Map are shared with the Cover and must be cloned
// before in-place modification.
package cover

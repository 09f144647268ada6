// Package pfe mines positional patterns from annotated document corpora.
//
// A rule matches a document position when the word at a fixed offset from
// it carries a given attribute value. The positions a rule matches across
// the corpus form its cover. pfe searches for conjunctions of rules whose
// covers agree with a reference labeling: either catching most labeled
// positions (high recall) or rarely matching unlabeled ones (high
// precision).
//
// # Quick Start
//
//	ctx := context.Background()
//
//	// Basic covers and the reference come from an upstream extraction stage.
//	var basic pfe.BasicCovers
//	var truth *pfe.OrderedCover
//
//	result, err := pfe.HighRecall(ctx, pfe.Seeds(basic), basic, truth, 0.4,
//	    pfe.WithThreads(8),
//	    pfe.WithIterationLimit(3),
//	)
//
//	// Rank the result and pick the covers that together recall the most.
//	ranked, _ := pfe.ReorderRecall(result, basic, truth)
//	covers := make([]*pfe.OrderedCover, len(ranked))
//	for i, c := range ranked {
//	    covers[i], _ = pfe.ConjunctionCover(c, basic)
//	}
//	order, _ := pfe.CumulativeOrdering(ctx, covers, truth, 10)
//
// # Covers
//
// Document covers come in three representations sharing the cover.Set
// interface: cover.Ordered (sorted positions, merge-based algebra),
// cover.Bitset (word-parallel algebra) and cover.Compressed (roaring
// bitmaps for long sparse documents). Conversions between them are
// explicit and exact.
//
// # Thresholds
//
// A threshold at or below 1/N, where N is the number of labeled positions,
// would accept everything and fails with ErrInsaneThreshold before any
// work is done.
//
// # Key Features
//
//   - Deterministic parallel evaluation (errgroup fan-out, ordered fan-in)
//   - Exact confusion-matrix metrics with NaN for undefined ratios
//   - Structured logging (log/slog) and pluggable metrics (Prometheus)
//   - YAML configuration with PFE_* environment overrides
package pfe

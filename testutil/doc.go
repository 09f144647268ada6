// Package testutil provides testing utilities for pfe.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG, generators for random document
// covers, corpora and rule covers, and brute-force reference computations
// to check the optimized set algebra against.
//
// # Random Covers
//
//	rng := testutil.NewRNG(seed)
//	sizes := rng.Corpus(20, 50, 200)      // 20 docs, 50..199 positions
//	truth := rng.Cover(sizes, 0.3)        // ~30% of positions matched
//	basic := rng.RuleCovers(sizes, 40, 1.2)
//
// # Reference Metrics
//
//	m := testutil.NaiveMetrics(pred, truth) // position-by-position count
package testutil

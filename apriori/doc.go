// Package apriori mines conjunctions of rules level by level.
//
// Each round evaluates a list of candidate conjunctions in parallel
// against a reference cover and keeps those a Policy accepts. The accepted
// conjunctions seed the next round's candidates. Two policies are
// provided:
//
//   - HighRecall keeps candidates with recall >= threshold and grows
//     them by pairwise union.
//   - HighPrecision keeps candidates with a false positive rate <= threshold
//     and a positive precision, and shrinks them by pairwise rule removal.
//
// Output is deterministic: it does not depend on the number of workers.
//
// # Usage
//
//	result, err := apriori.Mine(ctx, apriori.HighRecall{},
//	    rule.Seeds(basic), basic, truth, 0.4,
//	    apriori.WithThreads(8),
//	    apriori.WithIterationLimit(3),
//	    apriori.WithLogger(slog.Default()),
//	)
package apriori

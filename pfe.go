package pfe

import (
	"context"

	"github.com/hupe1980/pfe/apriori"
	"github.com/hupe1980/pfe/config"
	"github.com/hupe1980/pfe/cover"
	"github.com/hupe1980/pfe/rule"
	"github.com/hupe1980/pfe/stats"
)

type (
	// Rule is a positional offset paired with an attribute value.
	Rule = rule.Rule
	// Conjunction is a set of rules matching where all of them match.
	Conjunction = rule.Conjunction
	// Disjunction is a list of conjunctions.
	Disjunction = rule.Disjunction
	// Metrics is the confusion matrix of a cover against a reference.
	Metrics = stats.Metrics
	// Ordered is a document cover stored as sorted positions.
	Ordered = cover.Ordered
	// Bitset is a document cover stored as a bit vector.
	Bitset = cover.Bitset
	// OrderedCover maps document ids to ordered document covers.
	OrderedCover = cover.OrderedCover
	// BitsetCover maps document ids to bitset document covers.
	BitsetCover = cover.BitsetCover
	// Policy selects frequent candidates and generates the next round.
	Policy = apriori.Policy
)

// BasicCovers maps every elementary rule to its corpus-wide cover.
type BasicCovers = map[Rule]*OrderedCover

// HighRecall mines conjunctions whose recall against truth is at least
// threshold.
func HighRecall(ctx context.Context, initial []Conjunction, basic BasicCovers, truth *OrderedCover, threshold float64, opts ...Option) ([]Conjunction, error) {
	return Mine(ctx, apriori.HighRecall{}, initial, basic, truth, threshold, opts...)
}

// HighPrecision mines conjunctions whose false positive rate against truth
// is at most threshold and whose precision is positive.
func HighPrecision(ctx context.Context, initial []Conjunction, basic BasicCovers, truth *OrderedCover, threshold float64, opts ...Option) ([]Conjunction, error) {
	return Mine(ctx, apriori.HighPrecision{}, initial, basic, truth, threshold, opts...)
}

// Mine runs the level-wise search with the given policy.
func Mine(ctx context.Context, policy Policy, initial []Conjunction, basic BasicCovers, truth *OrderedCover, threshold float64, opts ...Option) ([]Conjunction, error) {
	o := applyOptions(opts)
	return apriori.Mine(ctx, policy, initial, basic, truth, threshold, o.aprioriOptions()...)
}

// MineConfig runs the search described by cfg. The logger is built from
// cfg.Logging and writes to stderr; opts are applied last and override
// the configured values.
func MineConfig(ctx context.Context, cfg *config.Config, initial []Conjunction, basic BasicCovers, truth *OrderedCover, opts ...Option) ([]Conjunction, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := ParsePolicy(cfg.Mining.Policy)
	if err != nil {
		return nil, err
	}
	logger, err := NewLoggerFromConfig(cfg.Logging, nil)
	if err != nil {
		return nil, err
	}

	all := append(OptionsFromConfig(cfg.Mining), WithLogger(logger))
	all = append(all, opts...)
	return Mine(ctx, policy, initial, basic, truth, cfg.Mining.Threshold, all...)
}

// ParsePolicy returns the policy for name: "high-recall" (or "recall") and
// "high-precision" (or "fprate").
func ParsePolicy(name string) (Policy, error) {
	return apriori.ParsePolicy(name)
}

// Seeds returns one single-rule conjunction per basic rule, the usual
// starting point of a high-recall run.
func Seeds(basic BasicCovers) []Conjunction {
	return rule.Seeds(basic)
}

// ConjunctionCover returns the cover of c: the intersection of the basic
// covers of its rules. A rule without a basic cover yields the empty cover.
func ConjunctionCover(c Conjunction, basic BasicCovers) (*OrderedCover, error) {
	return rule.CoverOf(c, basic)
}

// ReorderRecall sorts conjunctions by recall against truth, highest first.
func ReorderRecall(cs []Conjunction, basic BasicCovers, truth *OrderedCover) ([]Conjunction, error) {
	return rule.ReorderRecall(cs, basic, truth)
}

// Maximal keeps only conjunctions that are not a strict rule subset of
// another conjunction in cs.
func Maximal(cs []Conjunction) []Conjunction {
	return rule.Maximal(cs)
}

// Best returns the n conjunctions ranked highest by weight of their
// metrics against truth.
func Best(cs []Conjunction, basic BasicCovers, truth *OrderedCover, n int, weight func(Metrics) float64) ([]Conjunction, error) {
	return rule.Best(cs, basic, truth, n, weight)
}

// ConjunctionMetrics returns the metrics of every conjunction against truth.
func ConjunctionMetrics(cs []Conjunction, basic BasicCovers, truth *OrderedCover) ([]Metrics, error) {
	return rule.Metrics(cs, basic, truth)
}

// CumulativeOrdering greedily selects up to limit covers whose union
// maximizes recall against truth and returns their indices in selection
// order. Ties go to the lowest index and no index repeats.
func CumulativeOrdering(ctx context.Context, covers []*OrderedCover, truth *OrderedCover, limit int, opts ...Option) ([]int, error) {
	o := applyOptions(opts)
	order, err := cover.CumulativeOrdering(covers, truth, limit)
	o.logger.LogOrdering(ctx, len(covers), limit, len(order), err)
	return order, err
}

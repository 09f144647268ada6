package apriori

import (
	"fmt"
	"strings"

	"github.com/hupe1980/pfe/rule"
	"github.com/hupe1980/pfe/stats"
)

// Policy decides which candidates are frequent and how the frequent
// conjunctions of one round seed the next.
type Policy interface {
	// Name identifies the policy in logs and metrics.
	Name() string

	// Accept reports whether a candidate with metrics m passes threshold.
	Accept(m stats.Metrics, threshold float64) bool

	// Candidates derives the next round's candidates from the frequent
	// conjunctions of the current round. The result is free of duplicates
	// and never contains one of its parents unchanged.
	Candidates(frequent []rule.Conjunction) []rule.Conjunction
}

// HighRecall keeps conjunctions whose recall reaches the threshold and
// grows them by pairwise union.
type HighRecall struct{}

var _ Policy = HighRecall{}

// Name implements Policy.
func (HighRecall) Name() string { return "high-recall" }

// Accept implements Policy: recall must reach threshold.
func (HighRecall) Accept(m stats.Metrics, threshold float64) bool {
	return m.Recall() >= threshold
}

// Candidates returns the union of every unordered pair of distinct
// frequent conjunctions. A union equal to one of its parents adds nothing
// and is dropped.
func (HighRecall) Candidates(frequent []rule.Conjunction) []rule.Conjunction {
	out := make([]rule.Conjunction, 0, len(frequent))
	for i, a := range frequent {
		for _, b := range frequent[i+1:] {
			if a.Equal(b) {
				continue
			}
			u := a.Union(b)
			if u.Equal(a) || u.Equal(b) {
				continue
			}
			out = append(out, u)
		}
	}
	return rule.Unique(out)
}

// HighPrecision keeps conjunctions whose false positive rate stays at or
// below the threshold. The rate alone is degenerate when a candidate has
// no true negatives, so a positive precision is required as well.
type HighPrecision struct{}

var _ Policy = HighPrecision{}

// Name implements Policy.
func (HighPrecision) Name() string { return "high-precision" }

// Accept implements Policy: the false positive rate must not exceed
// threshold and precision must be positive.
func (HighPrecision) Accept(m stats.Metrics, threshold float64) bool {
	return m.FalsePositiveRate() <= threshold && m.Precision() > 0
}

// Candidates returns, for every ordered pair (a, b) of distinct frequent
// conjunctions, the rules of a without those of b. Empty results would
// match every position and are dropped, as are results equal to a parent.
func (HighPrecision) Candidates(frequent []rule.Conjunction) []rule.Conjunction {
	out := make([]rule.Conjunction, 0, len(frequent))
	for i, a := range frequent {
		for j, b := range frequent {
			if i == j || a.Equal(b) {
				continue
			}
			d := a.Without(b)
			if len(d) == 0 || d.Equal(a) || d.Equal(b) {
				continue
			}
			out = append(out, d)
		}
	}
	return rule.Unique(out)
}

// ParsePolicy returns the policy registered under name. Besides the policy
// names it accepts the metric shorthands "recall" and "fprate".
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "high-recall", "highrecall", "recall":
		return HighRecall{}, nil
	case "high-precision", "highprecision", "precision", "fprate":
		return HighPrecision{}, nil
	default:
		return nil, fmt.Errorf("apriori: unknown policy %q", name)
	}
}

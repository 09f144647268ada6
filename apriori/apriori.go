package apriori

import (
	"context"
	"math"
	"time"

	"github.com/hupe1980/pfe/cover"
	"github.com/hupe1980/pfe/errs"
	"github.com/hupe1980/pfe/rule"
	"github.com/hupe1980/pfe/stats"
)

// MinThreshold returns the finest threshold granularity truth allows:
// 1/N where N is the number of matched positions in truth. An empty
// truth yields +Inf.
func MinThreshold[T cover.Set[T]](truth *cover.Cover[T]) (float64, error) {
	n, err := support(truth)
	if err != nil {
		return 0, err
	}
	return 1 / float64(n), nil
}

func support[T cover.Set[T]](truth *cover.Cover[T]) (int64, error) {
	self, err := truth.Metrics(truth)
	if err != nil {
		return 0, err
	}
	return self.Support(), nil
}

// Mine runs a level-wise search starting from initial and returns every
// conjunction the policy accepted in any round, without duplicates.
//
// Round one scores initial. Each further round scores the candidates the
// policy generates from the previous round's frequent conjunctions. The
// search stops when no candidates remain or the iteration limit is reached.
//
// A threshold at or below 1/N, where N is the size of truth, would accept
// every candidate and fails with errs.ErrInsaneThreshold before any
// candidate is evaluated. basic and truth are only read; they may be
// shared with concurrent runs.
func Mine[T cover.Set[T]](
	ctx context.Context,
	policy Policy,
	initial []rule.Conjunction,
	basic map[rule.Rule]*cover.Cover[T],
	truth *cover.Cover[T],
	threshold float64,
	opts ...Option,
) (result []rule.Conjunction, err error) {
	o := applyOptions(opts)
	start := time.Now()
	logger := o.logger.With("policy", policy.Name(), "threshold", threshold)

	rounds := 0
	defer func() {
		o.metrics.RecordMine(policy.Name(), rounds, len(result), time.Since(start), err)
		if err != nil {
			logger.ErrorContext(ctx, "Mining failed", "rounds", rounds, "error", err)
		}
	}()

	n, err := support(truth)
	if err != nil {
		return nil, err
	}
	minimum := 1 / float64(n)
	if math.IsNaN(threshold) || threshold <= minimum {
		return nil, errs.InsaneThreshold(threshold, minimum)
	}

	logger.InfoContext(ctx, "Mining started",
		"candidates", len(initial),
		"support", n,
		"threads", o.threads,
		"limit", o.limit,
	)

	accept := func(m stats.Metrics) bool {
		return policy.Accept(m, threshold)
	}

	candidates := initial
	var accepted []rule.Conjunction

	for len(candidates) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rounds++

		roundStart := time.Now()
		frequent, err := Frequent(ctx, candidates, basic, truth, accept, o.threads)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(roundStart)

		o.metrics.RecordRound(policy.Name(), rounds, len(candidates), len(frequent), elapsed)
		logger.InfoContext(ctx, "Round completed",
			"round", rounds,
			"candidates", len(candidates),
			"frequent", len(frequent),
			"duration", elapsed,
		)

		accepted = append(accepted, frequent...)
		if rounds == o.limit {
			break
		}

		candidates = rule.Unique(policy.Candidates(frequent))
		o.metrics.RecordGeneration(policy.Name(), rounds, len(candidates))
		logger.DebugContext(ctx, "Candidates generated", "round", rounds, "candidates", len(candidates))
	}

	result = rule.Unique(accepted)
	logger.InfoContext(ctx, "Mining completed",
		"rounds", rounds,
		"results", len(result),
		"duration", time.Since(start),
	)
	return result, nil
}

// HighRecallMine mines conjunctions whose recall reaches threshold.
func HighRecallMine[T cover.Set[T]](
	ctx context.Context,
	initial []rule.Conjunction,
	basic map[rule.Rule]*cover.Cover[T],
	truth *cover.Cover[T],
	threshold float64,
	opts ...Option,
) ([]rule.Conjunction, error) {
	return Mine(ctx, HighRecall{}, initial, basic, truth, threshold, opts...)
}

// HighPrecisionMine mines conjunctions whose false positive rate stays at
// or below threshold.
func HighPrecisionMine[T cover.Set[T]](
	ctx context.Context,
	initial []rule.Conjunction,
	basic map[rule.Rule]*cover.Cover[T],
	truth *cover.Cover[T],
	threshold float64,
	opts ...Option,
) ([]rule.Conjunction, error) {
	return Mine(ctx, HighPrecision{}, initial, basic, truth, threshold, opts...)
}

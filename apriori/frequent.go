package apriori

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pfe/cover"
	"github.com/hupe1980/pfe/rule"
	"github.com/hupe1980/pfe/stats"
)

// Frequent evaluates candidates against truth and returns the accepted ones
// in candidate order.
//
// The candidate list is split into min(threads, len(candidates))
// contiguous chunks of near-equal size, one goroutine per chunk. Each
// worker collects its accepted candidates into its own slot and the slots
// are concatenated in chunk order, so the result does not depend on
// scheduling. The first worker error cancels the remaining workers and is
// returned.
func Frequent[T cover.Set[T]](
	ctx context.Context,
	candidates []rule.Conjunction,
	basic map[rule.Rule]*cover.Cover[T],
	truth *cover.Cover[T],
	accept func(stats.Metrics) bool,
	threads int,
) ([]rule.Conjunction, error) {
	n := len(candidates)
	if n == 0 {
		return []rule.Conjunction{}, nil
	}
	workers := min(max(threads, 1), n)

	slots := make([][]rule.Conjunction, workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := range workers {
		lo, hi := w*n/workers, (w+1)*n/workers
		g.Go(func() error {
			accepted := make([]rule.Conjunction, 0, hi-lo)
			for _, c := range candidates[lo:hi] {
				if err := gctx.Err(); err != nil {
					return err
				}
				cc, err := rule.CoverOf(c, basic)
				if err != nil {
					return fmt.Errorf("conjunction %s: %w", c, err)
				}
				m, err := cc.Metrics(truth)
				if err != nil {
					return fmt.Errorf("conjunction %s: %w", c, err)
				}
				if accept(m) {
					accepted = append(accepted, c)
				}
			}
			slots[w] = accepted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, s := range slots {
		total += len(s)
	}
	out := make([]rule.Conjunction, 0, total)
	for _, s := range slots {
		out = append(out, s...)
	}
	return out, nil
}

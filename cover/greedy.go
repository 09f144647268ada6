package cover

import (
	"fmt"
	"math"
)

// CumulativeOrdering greedily orders covers to maximize the recall of their
// union against truth. At most limit indices are returned and no index is
// returned twice.
//
// Each step picks the unused cover whose union with the covers picked so
// far has the strictly greatest recall; on ties the lowest index wins.
// This is the standard greedy maximum-coverage heuristic: monotone and
// deterministic, not optimal.
func CumulativeOrdering[T Set[T]](covers []*Cover[T], truth *Cover[T], limit int) ([]int, error) {
	if limit <= 0 || len(covers) == 0 {
		return []int{}, nil
	}

	cumulative := New[T]()
	used := make([]bool, len(covers))
	result := make([]int, 0, min(limit, len(covers)))

	for len(result) < limit && len(result) < len(covers) {
		best := -1
		bestValue := math.Inf(-1)

		for i, c := range covers {
			if used[i] {
				continue
			}
			candidate, err := cumulative.Union(c)
			if err != nil {
				return nil, fmt.Errorf("cover %d: %w", i, err)
			}
			m, err := candidate.Metrics(truth)
			if err != nil {
				return nil, fmt.Errorf("cover %d: %w", i, err)
			}
			value := m.Recall()
			// NaN (empty truth) never beats a defined recall.
			if best == -1 || value > bestValue || (math.IsNaN(bestValue) && !math.IsNaN(value)) {
				best = i
				bestValue = value
			}
		}

		used[best] = true
		if err := cumulative.InPlaceUnion(covers[best]); err != nil {
			return nil, fmt.Errorf("cover %d: %w", best, err)
		}
		result = append(result, best)
	}

	return result, nil
}

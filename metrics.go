package pfe

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/pfe/apriori"
)

// MetricsCollector defines an interface for collecting mining metrics.
// Implement this interface to integrate with monitoring systems; the
// prommetrics package provides a Prometheus implementation.
type MetricsCollector = apriori.MetricsCollector

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector = apriori.NoopMetricsCollector

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	MineCount           atomic.Int64
	MineErrors          atomic.Int64
	MineTotalNanos      atomic.Int64
	RoundCount          atomic.Int64
	RoundTotalNanos     atomic.Int64
	CandidatesEvaluated atomic.Int64
	CandidatesFrequent  atomic.Int64
	CandidatesGenerated atomic.Int64
	LastResults         atomic.Int64
}

var _ MetricsCollector = (*BasicMetricsCollector)(nil)

// RecordRound implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRound(_ string, _, candidates, frequent int, duration time.Duration) {
	b.RoundCount.Add(1)
	b.RoundTotalNanos.Add(duration.Nanoseconds())
	b.CandidatesEvaluated.Add(int64(candidates))
	b.CandidatesFrequent.Add(int64(frequent))
}

// RecordGeneration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGeneration(_ string, _, generated int) {
	b.CandidatesGenerated.Add(int64(generated))
}

// RecordMine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMine(_ string, _, results int, duration time.Duration, err error) {
	b.MineCount.Add(1)
	b.MineTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MineErrors.Add(1)
		return
	}
	b.LastResults.Store(int64(results))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		MineCount:           b.MineCount.Load(),
		MineErrors:          b.MineErrors.Load(),
		MineAvgNanos:        avg(b.MineTotalNanos.Load(), b.MineCount.Load()),
		RoundCount:          b.RoundCount.Load(),
		RoundAvgNanos:       avg(b.RoundTotalNanos.Load(), b.RoundCount.Load()),
		CandidatesEvaluated: b.CandidatesEvaluated.Load(),
		CandidatesFrequent:  b.CandidatesFrequent.Load(),
		CandidatesGenerated: b.CandidatesGenerated.Load(),
		LastResults:         b.LastResults.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	MineCount           int64
	MineErrors          int64
	MineAvgNanos        int64
	RoundCount          int64
	RoundAvgNanos       int64
	CandidatesEvaluated int64
	CandidatesFrequent  int64
	CandidatesGenerated int64
	LastResults         int64
}

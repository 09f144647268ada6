package apriori

import "time"

// MetricsCollector observes mining runs. Implementations must be safe for
// concurrent use when shared between runs.
type MetricsCollector interface {
	// RecordRound is called after each evaluation round.
	RecordRound(policy string, round, candidates, frequent int, duration time.Duration)

	// RecordGeneration is called after candidates for the next round were
	// generated.
	RecordGeneration(policy string, round, generated int)

	// RecordMine is called once per run, including runs rejected by the
	// threshold check. err is nil on success.
	RecordMine(policy string, rounds, results int, duration time.Duration, err error)
}

// NoopMetricsCollector discards all observations.
type NoopMetricsCollector struct{}

// RecordRound implements MetricsCollector.
func (NoopMetricsCollector) RecordRound(string, int, int, int, time.Duration) {}

// RecordGeneration implements MetricsCollector.
func (NoopMetricsCollector) RecordGeneration(string, int, int) {}

// RecordMine implements MetricsCollector.
func (NoopMetricsCollector) RecordMine(string, int, int, time.Duration, error) {}

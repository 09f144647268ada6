package pfe

import (
	"log/slog"

	"github.com/hupe1980/pfe/apriori"
	"github.com/hupe1980/pfe/config"
)

type options struct {
	threads          int
	iterationLimit   int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures mining and ordering runs.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		threads:        apriori.DefaultThreads,
		iterationLimit: apriori.DefaultIterationLimit,
		logger:         NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) aprioriOptions() []apriori.Option {
	out := []apriori.Option{
		apriori.WithThreads(o.threads),
		apriori.WithIterationLimit(o.iterationLimit),
		apriori.WithLogger(o.logger.Logger),
	}
	if o.metricsCollector != nil {
		out = append(out, apriori.WithMetricsCollector(o.metricsCollector))
	}
	return out
}

// WithThreads sets the number of workers evaluating candidates per round.
//
// Work is split into contiguous chunks, one per worker, so more threads
// than candidates brings no gain. Values below 1 are treated as 1.
// Default: 2.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = n
	}
}

// WithIterationLimit sets the maximum number of mining rounds.
// Round one scores the initial candidates; every further round scores
// conjunctions grown (or shrunk) from the previous round's survivors.
// A limit of zero or less runs until no candidates remain. Default: 2.
func WithIterationLimit(limit int) Option {
	return func(o *options) {
		o.iterationLimit = limit
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &pfe.BasicMetricsCollector{}
//	result, _ := pfe.HighRecall(ctx, seeds, basic, truth, 0.4, pfe.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Rounds: %d, Avg round: %dns\n", stats.RoundCount, stats.RoundAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := pfe.NewJSONLogger(slog.LevelInfo)
//	result, _ := pfe.HighRecall(ctx, seeds, basic, truth, 0.4, pfe.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// OptionsFromConfig translates the thread count and iteration limit of
// cfg into options. Logging is configured separately, see
// NewLoggerFromConfig.
func OptionsFromConfig(cfg config.MiningConfig) []Option {
	return []Option{
		WithThreads(cfg.Threads),
		WithIterationLimit(cfg.IterationLimit),
	}
}

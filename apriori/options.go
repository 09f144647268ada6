package apriori

import "log/slog"

const (
	// DefaultThreads is the number of workers per round.
	DefaultThreads = 2

	// DefaultIterationLimit is the number of rounds run by default.
	DefaultIterationLimit = 2
)

type options struct {
	threads int
	limit   int
	logger  *slog.Logger
	metrics MetricsCollector
}

// Option configures a mining run.
type Option func(*options)

func defaultOptions() options {
	return options{
		threads: DefaultThreads,
		limit:   DefaultIterationLimit,
		logger:  slog.New(slog.DiscardHandler),
		metrics: NoopMetricsCollector{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithThreads sets the number of workers evaluating candidates in each
// round. Values below 1 are treated as 1.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = max(n, 1)
	}
}

// WithIterationLimit sets the maximum number of rounds. A limit of zero or
// less runs until no new candidates are generated.
func WithIterationLimit(limit int) Option {
	return func(o *options) {
		o.limit = limit
	}
}

// WithLogger sets the logger for the run. Pass nil to disable logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector observing the run. Pass nil to
// disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

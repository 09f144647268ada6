package pfe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/pfe/config"
)

// Logger wraps slog.Logger with pfe-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// NewLoggerFromConfig creates a Logger writing to w in the configured
// format and level. If w is nil, logs go to stderr.
func NewLoggerFromConfig(cfg config.LoggingConfig, w io.Writer) (*Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("logging format: unknown format %q", cfg.Format)
	}
}

// LogOrdering logs a greedy cumulative ordering.
func (l *Logger) LogOrdering(ctx context.Context, covers, limit, selected int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ordering failed",
			"covers", covers,
			"limit", limit,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "ordering completed",
			"covers", covers,
			"limit", limit,
			"selected", selected,
		)
	}
}

package hausdorff

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with search-specific helpers.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMode adds a search mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", string(mode)),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogScan logs the outcome of scanning Y for a single x.
func (l *Logger) LogScan(ctx context.Context, x any, nearest uint64, bound uint64, pruned bool) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	if pruned {
		l.DebugContext(ctx, "scan pruned", "x", x, "bound", bound)
		return
	}
	l.DebugContext(ctx, "scan completed", "x", x, "min", nearest, "bound", bound)
}

// LogSearch logs a finished search.
func (l *Logger) LogSearch(ctx context.Context, mode Mode, res Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"mode", string(mode),
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"mode", string(mode),
		"pair", res.Pair.String(),
		"distance", res.Distance,
		"comparisons", res.Stats.Comparisons,
		"pruned", res.Stats.Pruned,
	)
}

// LogIncomplete warns that a percentile result was read before the
// retained set reached its capacity.
func (l *Logger) LogIncomplete(ctx context.Context, res PercentileResult) {
	l.WarnContext(ctx, "percentile result incomplete",
		"percentile", res.Percentile,
		"capacity", res.Capacity,
		"genuine", res.Genuine,
	)
}

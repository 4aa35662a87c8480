package segvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with segvec-specific context.
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

// WithName adds a name field to the logger (useful when several vectors share a handler).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// WithBitness adds a bitness field to the logger.
func (l *Logger) WithBitness(bitness int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bitness", bitness),
	}
}

// LogGrow logs the allocation of a new segment.
func (l *Logger) LogGrow(ctx context.Context, segment, capacity int, err error) {
	if err != nil {
		l.WarnContext(ctx, "segment allocation refused",
			"segment", segment,
			"capacity", capacity,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "segment allocated",
			"segment", segment,
			"capacity", capacity,
		)
	}
}

// LogBatchAppend logs a batch append operation.
func (l *Logger) LogBatchAppend(ctx context.Context, count, appended int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch append stopped early",
			"total", count,
			"appended", appended,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch append completed",
			"count", count,
		)
	}
}

// LogClose logs closing a vector.
func (l *Logger) LogClose(ctx context.Context, length int, releasedBytes int64) {
	l.InfoContext(ctx, "vector closed",
		"len", length,
		"released_bytes", releasedBytes,
	)
}

package dhash

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with table-specific helpers so every table
// reports resizes with the same field names.
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
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// LogResize logs a completed rebuild of the slot array.
func (l *Logger) LogResize(reason string, fromCapacity, toCapacity, count int) {
	l.Debug("table resized",
		"reason", reason,
		"from", fromCapacity,
		"to", toCapacity,
		"count", count,
	)
}

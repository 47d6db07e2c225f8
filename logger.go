package genidx

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with genidx-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithArena adds an arena field to the logger.
func (l *Logger) WithArena(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("arena", name),
	}
}

// debugEnabled guards hot paths so disabled debug logging costs no
// argument boxing.
func (l *Logger) debugEnabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogKill logs a successful kill.
func (l *Logger) LogKill(id string, gen AllocGen) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("id killed",
		"id", id,
		"alloc_gen", uint64(gen),
	)
}

// LogOverflow logs an exhausted index range.
func (l *Logger) LogOverflow(slots uint64, err error) {
	l.Warn("index overflow",
		"slots", slots,
		"error", err,
	)
}

// LogSync logs a cache resynchronization that did work.
func (l *Logger) LogSync(kind CmpKind, from, to AllocGen, removed int) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("cache synchronized",
		"path", kind.String(),
		"from", uint64(from),
		"to", uint64(to),
		"removed", removed,
	)
}

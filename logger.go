package dumpreader

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dump-reader specific context.
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

// WithIndex adds an index field to the logger.
func (l *Logger) WithIndex(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", name),
	}
}

// LogOpen logs the outcome of opening a dump.
func (l *Logger) LogOpen(ctx context.Context, source string, version Version, indexes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "open dump failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dump opened",
			"source", source,
			"version", version.String(),
			"indexes", indexes,
		)
	}
}

// LogIndex logs the end of a document sequence. Use it on a logger returned
// by WithIndex.
func (l *Logger) LogIndex(ctx context.Context, documents int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "reading documents failed",
			"documents", documents,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "documents read",
			"documents", documents,
		)
	}
}

// LogTasks logs the end of the merged task sequence.
func (l *Logger) LogTasks(ctx context.Context, tasks, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "task merge completed with failures",
			"tasks", tasks,
			"failed", failed,
		)
	} else {
		l.DebugContext(ctx, "task merge completed",
			"tasks", tasks,
		)
	}
}

// LogClose logs the release of a dump.
func (l *Logger) LogClose(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "close dump failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dump closed")
	}
}

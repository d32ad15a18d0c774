package dumpreader

import (
	"log/slog"

	"github.com/hupe1980/dumpreader/codec"
	"github.com/hupe1980/dumpreader/internal/fs"
)

// FileSystem is the file system OpenDir and OpenTemp read through.
type FileSystem = fs.FileSystem

// File is a file opened through a FileSystem.
type File = fs.File

type options struct {
	codec            codec.Codec
	fs               FileSystem
	maxLineSize      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Open, OpenDir and OpenTemp.
type Option func(*options)

// WithCodec configures the codec used for decoding every record.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithFileSystem configures the file system used by OpenDir and OpenTemp.
// It has no effect on Open, which reads through the given store.
func WithFileSystem(fsys FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithMaxLineSize bounds the size of a single document or task line. Longer
// lines fail with a *ParseError. Values <= 0 select the default of 64 MiB.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		o.maxLineSize = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring reads.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dumpreader.BasicMetricsCollector{}
//	r, _ := dumpreader.OpenDir(ctx, dir, dumpreader.WithMetricsCollector(metrics))
//	// ... consume r ...
//	stats := metrics.GetStats()
//	fmt.Printf("Documents: %d, Tasks: %d\n", stats.DocumentsRead, stats.TasksMerged)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := dumpreader.NewJSONLogger(slog.LevelInfo)
//	r, _ := dumpreader.OpenDir(ctx, dir, dumpreader.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

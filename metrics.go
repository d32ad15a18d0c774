package dumpreader

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    openHistogram   prometheus.Histogram
//	    documentCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordDocuments(index string, n int, err error) {
//	    p.documentCounter.Add(float64(n))
//	}
type MetricsCollector interface {
	// RecordOpen is called after each Open. duration is the total time
	// taken, err is nil if successful.
	RecordOpen(version Version, duration time.Duration, err error)

	// RecordDocuments is called when a document sequence ends. n is the
	// number of documents yielded, err is the error that ended it, if any.
	RecordDocuments(index string, n int, err error)

	// RecordTasks is called when the task sequence ends. n is the number of
	// tasks yielded, failed the number of errors yielded.
	RecordTasks(n, failed int)

	// RecordParseFailure is called for every record that fails to decode.
	RecordParseFailure(err *ParseError)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOpen(Version, time.Duration, error) {}
func (NoopMetricsCollector) RecordDocuments(string, int, error)       {}
func (NoopMetricsCollector) RecordTasks(int, int)                     {}
func (NoopMetricsCollector) RecordParseFailure(*ParseError)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpenCount      atomic.Int64
	OpenErrors     atomic.Int64
	OpenTotalNanos atomic.Int64
	DocumentsRead  atomic.Int64
	DocumentErrors atomic.Int64
	TasksMerged    atomic.Int64
	TaskErrors     atomic.Int64
	ParseFailures  atomic.Int64
}

// RecordOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOpen(_ Version, duration time.Duration, err error) {
	b.OpenCount.Add(1)
	b.OpenTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpenErrors.Add(1)
	}
}

// RecordDocuments implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDocuments(_ string, n int, err error) {
	b.DocumentsRead.Add(int64(n))
	if err != nil {
		b.DocumentErrors.Add(1)
	}
}

// RecordTasks implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTasks(n, failed int) {
	b.TasksMerged.Add(int64(n))
	b.TaskErrors.Add(int64(failed))
}

// RecordParseFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParseFailure(*ParseError) {
	b.ParseFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		OpenCount:      b.OpenCount.Load(),
		OpenErrors:     b.OpenErrors.Load(),
		OpenAvgNanos:   b.getAvgOpenNanos(),
		DocumentsRead:  b.DocumentsRead.Load(),
		DocumentErrors: b.DocumentErrors.Load(),
		TasksMerged:    b.TasksMerged.Load(),
		TaskErrors:     b.TaskErrors.Load(),
		ParseFailures:  b.ParseFailures.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgOpenNanos() int64 {
	count := b.OpenCount.Load()
	if count == 0 {
		return 0
	}
	return b.OpenTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OpenCount      int64
	OpenErrors     int64
	OpenAvgNanos   int64
	DocumentsRead  int64
	DocumentErrors int64
	TasksMerged    int64
	TaskErrors     int64
	ParseFailures  int64
}

package dumpreader

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"
)

// reader decorates a format reader with logging, metrics and ownership of
// the dump directory.
type reader struct {
	impl    DumpReader
	ctx     context.Context
	logger  *Logger
	metrics MetricsCollector
	indexes []IndexReader

	// release runs after impl is closed, e.g. to remove a TempDir.
	release func() error

	closeOnce sync.Once
	closeErr  error
}

func newReader(ctx context.Context, impl DumpReader, o options) *reader {
	r := &reader{
		impl:    impl,
		ctx:     context.WithoutCancel(ctx),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	for ix := range impl.Indexes() {
		r.indexes = append(r.indexes, &indexReader{
			IndexReader: ix,
			r:           r,
			logger:      r.logger.WithIndex(ix.Name()),
		})
	}
	return r
}

func (r *reader) Version() Version { return r.impl.Version() }

func (r *reader) Date() *time.Time { return r.impl.Date() }

func (r *reader) DBVersion() string { return r.impl.DBVersion() }

func (r *reader) Indexes() iter.Seq[IndexReader] {
	return func(yield func(IndexReader) bool) {
		for _, ix := range r.indexes {
			if !yield(ix) {
				return
			}
		}
	}
}

func (r *reader) Tasks() iter.Seq2[Task, error] {
	return func(yield func(Task, error) bool) {
		n, failed := 0, 0
		defer func() {
			r.metrics.RecordTasks(n, failed)
			r.logger.LogTasks(r.ctx, n, failed)
		}()
		for t, err := range r.impl.Tasks() {
			if err != nil {
				failed++
				r.observe(err)
			} else {
				n++
			}
			if !yield(t, err) {
				return
			}
		}
	}
}

func (r *reader) Keys() iter.Seq2[Key, error] { return r.impl.Keys() }

func (r *reader) Close() error {
	r.closeOnce.Do(func() {
		err := r.impl.Close()
		if r.release != nil {
			err = errors.Join(err, r.release())
		}
		r.closeErr = err
		r.logger.LogClose(r.ctx, err)
	})
	return r.closeErr
}

func (r *reader) observe(err error) {
	var pe *ParseError
	if errors.As(err, &pe) {
		r.metrics.RecordParseFailure(pe)
	}
}

type indexReader struct {
	IndexReader
	r        *reader
	logger   *Logger
	observed sync.Once
}

func (ix *indexReader) Documents() iter.Seq2[Document, error] {
	return func(yield func(Document, error) bool) {
		n := 0
		var failure error
		defer func() {
			ix.r.metrics.RecordDocuments(ix.Name(), n, failure)
			ix.logger.LogIndex(ix.r.ctx, n, failure)
		}()
		for doc, err := range ix.IndexReader.Documents() {
			if err != nil {
				failure = err
				ix.r.observe(err)
			} else {
				n++
			}
			if !yield(doc, err) {
				return
			}
		}
	}
}

func (ix *indexReader) Settings() (Settings, error) {
	s, err := ix.IndexReader.Settings()
	if err != nil && !errors.Is(err, ErrClosed) {
		ix.observed.Do(func() { ix.r.observe(err) })
	}
	return s, err
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/hupe1980/dumpreader/blobstore"
	"github.com/hupe1980/dumpreader/codec"
	"github.com/hupe1980/dumpreader/internal/dumpmeta"
	"github.com/hupe1980/dumpreader/internal/merge"
	"github.com/hupe1980/dumpreader/model"
)

// Options configures Open.
type Options struct {
	// Codec decodes every record. Defaults to codec.Default.
	Codec codec.Codec
	// Logger receives debug output. Defaults to a discarding logger.
	Logger *slog.Logger
	// MaxLineSize bounds a single JSONL record. <= 0 selects the default.
	MaxLineSize int
}

// Reader reads a v1 dump.
type Reader struct {
	meta    metadata
	indexes []*IndexReader
	cursors []*taskCursor
	logger  *slog.Logger

	tasksTaken bool

	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// Open reads the metadata of the dump in store, lists its indexes and opens
// their member files. On failure every file opened so far is closed and no
// reader is returned.
func Open(ctx context.Context, store blobstore.Store, opts Options) (*Reader, error) {
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	r := &Reader{logger: opts.Logger}
	if err := dumpmeta.Read(ctx, store, opts.Codec, &r.meta); err != nil {
		return nil, err
	}
	v, err := r.meta.Version()
	if err != nil {
		return nil, err
	}
	if v != model.V1 {
		return nil, fmt.Errorf("%w: format_version %d", model.ErrUnsupportedVersion, v)
	}

	entries, err := store.List(ctx, "")
	if err != nil {
		return nil, model.IOError("list", "/", err)
	}

	for _, e := range entries {
		if !e.IsDir {
			continue
		}
		if !utf8.ValidString(e.Name) {
			return nil, errors.Join(fmt.Errorf("%w: %q", model.ErrBadIndexName, e.Name), r.Close())
		}
		if err := r.openIndex(ctx, store, e.Name, opts); err != nil {
			return nil, errors.Join(err, r.Close())
		}
	}

	r.logger.Debug("opened v1 dump", "indexes", len(r.indexes))
	return r, nil
}

func (r *Reader) openIndex(ctx context.Context, store blobstore.Store, name string, opts Options) error {
	ir := &IndexReader{
		name:   name,
		codec:  opts.Codec,
		limit:  opts.MaxLineSize,
		closed: func() bool { return r.closed },
	}
	if e, ok := r.meta.lookup(name); ok {
		ir.meta = e.meta()
	}
	if ir.meta.UID == "" {
		ir.meta.UID = name
	}

	open := func(file string) (io.ReadCloser, string, error) {
		rc, member, err := blobstore.OpenMember(ctx, store, blobstore.Join(name, file))
		if err != nil {
			return nil, "", model.IOError("open", member, err)
		}
		return rc, member[len(name)+1:], nil
	}

	// Registered before opening so a partial index is closed with the rest.
	r.indexes = append(r.indexes, ir)

	var err error
	if ir.documents, ir.documentsMember, err = open(DocumentsFile); err != nil {
		return err
	}
	if ir.settings, ir.settingsMember, err = open(SettingsFile); err != nil {
		return err
	}
	var updatesMember string
	if ir.updates, updatesMember, err = open(UpdatesFile); err != nil {
		return err
	}

	r.cursors = append(r.cursors, newTaskCursor(name, updatesMember, ir.updates, opts.Codec, opts.MaxLineSize))
	r.logger.Debug("opened index", "index", name)
	return nil
}

// Version returns model.V1.
func (r *Reader) Version() model.Version { return model.V1 }

// Date returns the creation date recorded in metadata.json, or nil.
func (r *Reader) Date() *time.Time {
	if r.meta.CreationDate == nil {
		return nil
	}
	t := r.meta.CreationDate.Time
	return &t
}

// DBVersion returns the engine version that wrote the dump, if recorded.
func (r *Reader) DBVersion() string { return r.meta.DBVersion }

// Indexes yields the indexes in directory listing order.
func (r *Reader) Indexes() iter.Seq[model.IndexReader] {
	return func(yield func(model.IndexReader) bool) {
		for _, ir := range r.indexes {
			if !yield(ir) {
				return
			}
		}
	}
}

// Tasks yields the tasks of every index merged by enqueued_at. Tasks with the
// same enqueued_at come in index listing order; that order carries no meaning.
//
// A malformed task line yields a *model.ParseError and ends the tasks of that
// index only. The sequence is single-pass.
func (r *Reader) Tasks() iter.Seq2[model.Task, error] {
	return func(yield func(model.Task, error) bool) {
		if r.closed {
			yield(model.Task{}, model.ErrClosed)
			return
		}
		if r.tasksTaken {
			yield(model.Task{}, model.ErrConsumed)
			return
		}
		r.tasksTaken = true

		cursors := make([]merge.Cursor[model.Task], len(r.cursors))
		for i, c := range r.cursors {
			cursors[i] = c
		}
		for t, err := range merge.New(cursors, compareTasks).All() {
			if r.closed {
				yield(model.Task{}, model.ErrClosed)
				return
			}
			if !yield(t, err) {
				return
			}
		}
	}
}

// Keys yields nothing: v1 dumps carry no keys.
func (r *Reader) Keys() iter.Seq2[model.Key, error] {
	return func(func(model.Key, error) bool) {}
}

// Close closes every member file. Only the first call has an effect.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		r.closed = true
		var errs []error
		for _, ir := range r.indexes {
			if err := ir.close(); err != nil {
				errs = append(errs, err)
			}
		}
		r.closeErr = errors.Join(errs...)
	})
	return r.closeErr
}

// taskReads returns the number of task log pulls made so far.
func (r *Reader) taskReads() int {
	n := 0
	for _, c := range r.cursors {
		n += c.reads
	}
	return n
}

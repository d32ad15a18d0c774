package dumpreader

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/dumpreader/blobstore"
	"github.com/hupe1980/dumpreader/internal/dumpmeta"
	"github.com/hupe1980/dumpreader/model"
	v1 "github.com/hupe1980/dumpreader/v1"
)

// Version identifies the on-disk format revision of a dump.
type Version = model.Version

// V1 is the oldest format revision.
const V1 = model.V1

type (
	// Document is a raw document. Numbers are json.Number values.
	Document = model.Document
	// Settings are the settings of an index.
	Settings = model.Settings
	// IndexMeta is the per-index metadata recorded in a dump.
	IndexMeta = model.IndexMeta
	// IndexReader reads one index of a dump.
	IndexReader = model.IndexReader
	// UpdateStatus is one task record.
	UpdateStatus = model.UpdateStatus
	// UpdateFile is the payload file stored next to a task by some formats.
	UpdateFile = model.UpdateFile
	// Task is one entry of the merged task stream.
	Task = model.Task
	// Key is exported key material.
	Key = model.Key
)

var _ DumpReader = (*v1.Reader)(nil)

// DumpReader reads a dump regardless of its format revision.
//
// Sequences are lazy: each pull reads and decodes one record. Documents and
// Tasks are single-pass. A DumpReader is not safe for concurrent use.
type DumpReader interface {
	// Version returns the format revision of the dump.
	Version() Version

	// Date returns when the dump was created, or nil if unknown.
	Date() *time.Time

	// DBVersion returns the version of the engine that wrote the dump, or ""
	// if the dump does not record it.
	DBVersion() string

	// Indexes yields every index of the dump in discovery order.
	Indexes() iter.Seq[IndexReader]

	// Tasks yields the task history of all indexes ordered by enqueue time.
	// Tasks enqueued at the same instant come in index discovery order,
	// which carries no meaning of its own.
	//
	// A malformed task record yields a *ParseError and ends the tasks of its
	// index; tasks of other indexes keep coming.
	Tasks() iter.Seq2[Task, error]

	// Keys yields the key material of the dump. V1 dumps have none.
	Keys() iter.Seq2[Key, error]

	// Close releases every resource held by the reader. Only the first call
	// has an effect; later calls return its result.
	Close() error
}

// Open reads the dump rooted at store. It inspects metadata.json and hands
// the store to the reader of the matching format revision.
//
// Open fails with ErrCorruptMetadata when metadata.json is missing or
// malformed, ErrUnsupportedVersion when its format version is unknown, and
// with the error of the format reader otherwise. No partially opened reader
// is ever returned.
//
// Remote stores read through ctx for as long as the reader is in use.
func Open(ctx context.Context, store blobstore.Store, optFns ...Option) (DumpReader, error) {
	o := applyOptions(optFns)
	return open(ctx, store, describe(store), o)
}

// OpenDir reads the dump extracted at dir on the local file system.
func OpenDir(ctx context.Context, dir string, optFns ...Option) (DumpReader, error) {
	o := applyOptions(optFns)
	return open(ctx, blobstore.NewLocalStoreFS(dir, o.fs), dir, o)
}

// OpenTemp reads the dump extracted into dir and takes ownership of dir:
// closing the reader removes it. If OpenTemp fails, dir is removed before it
// returns.
func OpenTemp(ctx context.Context, dir *TempDir, optFns ...Option) (DumpReader, error) {
	o := applyOptions(optFns)
	r, err := open(ctx, blobstore.NewLocalStoreFS(dir.Path(), o.fs), dir.Path(), o)
	if err != nil {
		if cerr := dir.Close(); cerr != nil {
			o.logger.WarnContext(ctx, "removing dump directory failed", "path", dir.Path(), "error", cerr)
		}
		return nil, err
	}
	r.release = dir.Close
	return r, nil
}

func open(ctx context.Context, store blobstore.Store, source string, o options) (*reader, error) {
	start := time.Now()
	impl, err := dispatch(ctx, store, o)

	var version Version
	indexes := 0
	if impl != nil {
		version = impl.Version()
		for range impl.Indexes() {
			indexes++
		}
	}
	o.metricsCollector.RecordOpen(version, time.Since(start), err)
	o.logger.LogOpen(ctx, source, version, indexes, err)
	if err != nil {
		return nil, err
	}
	return newReader(ctx, impl, o), nil
}

func dispatch(ctx context.Context, store blobstore.Store, o options) (DumpReader, error) {
	var probe dumpmeta.Probe
	if err := dumpmeta.Read(ctx, store, o.codec, &probe); err != nil {
		return nil, err
	}
	version, err := probe.Version()
	if err != nil {
		return nil, err
	}

	switch version {
	case V1:
		r, err := v1.Open(ctx, store, v1.Options{
			Codec:       o.codec,
			Logger:      o.logger.Logger,
			MaxLineSize: o.maxLineSize,
		})
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: format_version %d", ErrUnsupportedVersion, int(version))
	}
}

func describe(store blobstore.Store) string {
	if s, ok := store.(interface{ Root() string }); ok {
		return s.Root()
	}
	return fmt.Sprintf("%T", store)
}

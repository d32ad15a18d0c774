package v1

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"sync"

	"github.com/hupe1980/dumpreader/codec"
	"github.com/hupe1980/dumpreader/internal/jsonl"
	"github.com/hupe1980/dumpreader/model"
)

// Member file names of an index directory.
const (
	DocumentsFile = "documents.jsonl"
	SettingsFile  = "settings.json"
	UpdatesFile   = "updates.jsonl"
)

var errNotObject = errors.New("document is not a JSON object")

// IndexReader reads one index of a v1 dump.
type IndexReader struct {
	name   string
	meta   model.IndexMeta
	codec  codec.Codec
	limit  int
	closed func() bool

	documents       io.ReadCloser
	documentsMember string
	documentsTaken  bool

	settings       io.ReadCloser
	settingsMember string
	settingsOnce   sync.Once
	settingsVal    model.Settings
	settingsErr    error

	updates io.ReadCloser
}

var _ model.IndexReader = (*IndexReader)(nil)

// Name returns the index name, the name of its directory.
func (ir *IndexReader) Name() string { return ir.name }

// Meta returns the metadata.json entry of the index, if any.
func (ir *IndexReader) Meta() model.IndexMeta { return ir.meta }

// Documents yields the documents of documents.jsonl in file order.
func (ir *IndexReader) Documents() iter.Seq2[model.Document, error] {
	return func(yield func(model.Document, error) bool) {
		if ir.closed() {
			yield(nil, model.ErrClosed)
			return
		}
		if ir.documentsTaken {
			yield(nil, model.ErrConsumed)
			return
		}
		ir.documentsTaken = true

		dec := jsonl.NewReader(ir.documents, ir.codec, ir.limit)
		for {
			if ir.closed() {
				yield(nil, model.ErrClosed)
				return
			}
			var doc model.Document
			line, err := dec.Next(&doc)
			if errors.Is(err, io.EOF) {
				return
			}
			if err == nil && doc == nil {
				err = &jsonl.DecodeError{Line: line, Err: errNotObject}
			}
			if err != nil {
				var de *jsonl.DecodeError
				if errors.As(err, &de) {
					err = model.NewParseError(ir.name, ir.documentsMember, line, de.Err)
				} else {
					err = model.IOError("read", ir.name+"/"+ir.documentsMember, err)
				}
				yield(nil, err)
				return
			}
			if !yield(doc, nil) {
				return
			}
		}
	}
}

// Settings decodes settings.json. The result is cached.
func (ir *IndexReader) Settings() (model.Settings, error) {
	if ir.closed() {
		return model.Settings{}, model.ErrClosed
	}
	ir.settingsOnce.Do(func() {
		ir.settingsVal, ir.settingsErr = ir.readSettings()
	})
	return ir.settingsVal, ir.settingsErr
}

func (ir *IndexReader) readSettings() (model.Settings, error) {
	data, err := io.ReadAll(ir.settings)
	if err != nil {
		return model.Settings{}, model.IOError("read", ir.name+"/"+ir.settingsMember, err)
	}

	var s model.Settings
	if err := ir.codec.Unmarshal(data, &s); err != nil {
		return model.Settings{}, model.NewParseError(ir.name, ir.settingsMember, -1, err)
	}
	s.Raw = bytes.TrimSpace(data)
	return s, nil
}

func (ir *IndexReader) close() error {
	var errs []error
	for _, c := range []io.Closer{ir.documents, ir.settings, ir.updates} {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

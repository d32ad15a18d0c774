package model

import (
	"encoding/json"
	"errors"
	"io"
	"iter"
	"time"

	"github.com/hupe1980/dumpreader/codec"
)

// UpdateState is the lifecycle state a task was in when the dump was taken.
type UpdateState string

const (
	UpdateEnqueued   UpdateState = "enqueued"
	UpdateProcessing UpdateState = "processing"
	UpdateProcessed  UpdateState = "processed"
	UpdateFailed     UpdateState = "failed"
	UpdateAborted    UpdateState = "aborted"
)

// UpdateType names the mutation a task performed. Number is the amount of
// documents (or settings) it touched, when the engine recorded one.
type UpdateType struct {
	Name   string `json:"name"`
	Number *int   `json:"number,omitempty"`
}

// ResponseError is the failure recorded for a failed task.
type ResponseError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Type    string `json:"type,omitempty"`
	Link    string `json:"link,omitempty"`
}

// UpdateStatus is one historical task of an index. EnqueuedAt is the ordering
// key of the merged task stream.
//
// The typed fields cover what an importer needs to order and replay tasks.
// Raw holds the complete record as read from the dump, including keys the
// typed fields do not model (update meta, content hashes, engine specific
// extras), and is what MarshalJSON writes back.
type UpdateStatus struct {
	UpdateID            uint64         `json:"update_id"`
	Status              UpdateState    `json:"status"`
	Type                UpdateType     `json:"type"`
	EnqueuedAt          Timestamp      `json:"enqueued_at"`
	StartedProcessingAt *Timestamp     `json:"started_processing_at,omitempty"`
	ProcessedAt         *Timestamp     `json:"processed_at,omitempty"`
	Duration            *float64       `json:"duration,omitempty"`
	Error               *ResponseError `json:"error,omitempty"`

	Raw json.RawMessage `json:"-"`
}

var (
	errMissingStatus     = errors.New("missing status")
	errMissingEnqueuedAt = errors.New("missing enqueued_at")
)

// Validate checks that the fields required to order and replay the task are
// present.
func (u *UpdateStatus) Validate() error {
	if u.Status == "" {
		return errMissingStatus
	}
	if u.EnqueuedAt.IsZero() {
		return errMissingEnqueuedAt
	}
	return nil
}

// MarshalJSON implements json.Marshaler. A status read from a dump encodes to
// its original record; a status built in code encodes its typed fields.
func (u UpdateStatus) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	type plain UpdateStatus
	return codec.Default.Marshal(plain(u))
}

// Fields returns every key of the task record, numbers as json.Number.
func (u *UpdateStatus) Fields() (Document, error) {
	data, err := u.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := codec.Default.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Enqueued returns the enqueue time of the task.
func (u *UpdateStatus) Enqueued() time.Time {
	return u.EnqueuedAt.Time
}

// Finished reports whether the task reached a terminal state.
func (u *UpdateStatus) Finished() bool {
	switch u.Status {
	case UpdateProcessed, UpdateFailed, UpdateAborted:
		return true
	default:
		return false
	}
}

// UpdateFile is the side file some formats store next to a task, holding the
// payload the task applied. V1 dumps have none.
type UpdateFile interface {
	Documents() iter.Seq2[Document, error]
	io.Closer
}

// Task is one entry of the merged task stream of a dump.
type Task struct {
	// Index is the name of the index the task belongs to.
	Index string
	// Status is the task record.
	Status UpdateStatus
	// UpdateFile is nil for formats without per-task side files.
	UpdateFile UpdateFile
}

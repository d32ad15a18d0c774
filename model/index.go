package model

import (
	"iter"
	"time"
)

// IndexMeta is the per-index metadata a dump may carry next to the index
// directory. Fields are zero when the format does not record them.
type IndexMeta struct {
	UID        string     `json:"uid"`
	PrimaryKey *string    `json:"primary_key,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// IndexReader gives access to the content of one index of a dump.
type IndexReader interface {
	// Name is the index identifier, stable for the lifetime of the reader.
	Name() string

	// Meta returns the per-index metadata recorded in the dump, if any.
	Meta() IndexMeta

	// Documents yields the documents of the index in file order. The
	// sequence is single-pass: it can be ranged over only once, a later
	// attempt yields ErrConsumed. A malformed line ends the sequence with a
	// *ParseError; documents yielded before it remain valid.
	Documents() iter.Seq2[Document, error]

	// Settings parses the settings of the index. Repeated calls return the
	// same result.
	Settings() (Settings, error)
}

// Key is exportable key material. Only formats that export keys produce it.
type Key struct {
	Description string     `json:"description"`
	Key         string     `json:"key"`
	Actions     []string   `json:"actions"`
	Indexes     []string   `json:"indexes"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when an underlying open, list or read fails.
	ErrIO = errors.New("dump i/o failure")

	// ErrBadIndexName is returned when an index directory name is not valid
	// UTF-8 text. It fails the whole dump, not only the offending index.
	ErrBadIndexName = errors.New("index name is not valid text")

	// ErrCorruptMetadata is returned when metadata.json is missing,
	// unreadable or does not have the expected shape.
	ErrCorruptMetadata = errors.New("corrupt dump metadata")

	// ErrUnsupportedVersion is returned when the format discriminant of a
	// dump is not known to this reader.
	ErrUnsupportedVersion = errors.New("unsupported dump version")

	// ErrConsumed is returned when a single-pass sequence is ranged over a
	// second time.
	ErrConsumed = errors.New("sequence already consumed")

	// ErrClosed is returned when a reader is used after Close.
	ErrClosed = errors.New("dump reader closed")
)

// ParseError reports a record of a dump that could not be decoded.
//
// The original decoding error can be accessed via errors.Unwrap.
type ParseError struct {
	// Context names where the record lives, usually the index name.
	Context string
	// File is the member file of the record (e.g. "documents.jsonl").
	File string
	// Line is the 0-based line of the record, or -1 for whole-file records
	// such as settings.json.
	Line  int
	cause error
}

// NewParseError returns a *ParseError wrapping cause.
func NewParseError(context, file string, line int, cause error) *ParseError {
	return &ParseError{Context: context, File: file, Line: line, cause: cause}
}

func (e *ParseError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("parse error in %q (%s): %v", e.Context, e.File, e.cause)
	}
	return fmt.Sprintf("parse error in %q (%s) at line %d: %v", e.Context, e.File, e.Line, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// IOError wraps err so that it satisfies errors.Is(err, ErrIO) while keeping
// the operation and path that failed.
func IOError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}

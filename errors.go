package dumpreader

import "github.com/hupe1980/dumpreader/model"

var (
	// ErrIO is returned when an underlying open, list or read fails.
	ErrIO = model.ErrIO

	// ErrBadIndexName is returned when an index directory name is not valid
	// text. It fails the whole dump.
	ErrBadIndexName = model.ErrBadIndexName

	// ErrCorruptMetadata is returned when metadata.json is missing or
	// malformed.
	ErrCorruptMetadata = model.ErrCorruptMetadata

	// ErrUnsupportedVersion is returned when the format version of a dump is
	// not known to this package.
	ErrUnsupportedVersion = model.ErrUnsupportedVersion

	// ErrConsumed is returned when a single-pass sequence is ranged over a
	// second time.
	ErrConsumed = model.ErrConsumed

	// ErrClosed is returned when a reader is used after Close.
	ErrClosed = model.ErrClosed
)

// ParseError reports a record that could not be decoded, with the index it
// belongs to and its 0-based line.
type ParseError = model.ParseError

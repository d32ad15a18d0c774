package blobstore

import (
	"context"
	"io"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned when a member does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Entry is a member of a store directory.
type Entry struct {
	Name  string
	IsDir bool
}

// Store is a read-only view of a dump root.
type Store interface {
	// List returns the entries directly below dir ("" for the root) in a
	// stable listing order.
	List(ctx context.Context, dir string) ([]Entry, error)

	// Open opens a member for sequential reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Join joins member name elements with "/".
func Join(elem ...string) string {
	return strings.TrimPrefix(path.Join(elem...), "/")
}

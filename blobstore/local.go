package blobstore

import (
	"context"
	"io"
	"path/filepath"

	"github.com/hupe1980/dumpreader/internal/fs"
)

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
	fs   fs.FileSystem
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return NewLocalStoreFS(root, nil)
}

// NewLocalStoreFS creates a LocalStore that performs its I/O through fsys
// (fs.Default if nil).
func NewLocalStoreFS(root string, fsys fs.FileSystem) *LocalStore {
	if fsys == nil {
		fsys = fs.Default
	}
	return &LocalStore{root: root, fs: fsys}
}

// Root returns the directory the store reads from.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// List returns the entries of dir sorted by file name.
func (s *LocalStore) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dirEntries, err := s.fs.ReadDir(s.path(dir))
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{Name: de.Name(), IsDir: de.IsDir()})
	}
	return entries, nil
}

// Open opens a member read-only.
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.Open(s.path(name))
}

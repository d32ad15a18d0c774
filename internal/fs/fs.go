package fs

import (
	"io"
	"os"
)

// File represents an open, read-only file.
type File interface {
	io.ReadCloser
	Stat() (os.FileInfo, error)
}

// FileSystem abstracts the read-only file system operations of a dump reader.
type FileSystem interface {
	Open(name string) (File, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

// Open opens name with os.O_RDONLY.
func (LocalFS) Open(name string) (File, error) {
	return os.OpenFile(name, os.O_RDONLY, 0)
}

func (LocalFS) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }
func (LocalFS) Stat(name string) (os.FileInfo, error)      { return os.Stat(name) }

// Default is the default local file system.
var Default FileSystem = LocalFS{}

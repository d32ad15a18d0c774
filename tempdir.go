package dumpreader

import (
	"os"
	"sync"
)

// TempDir is a directory holding an extracted dump that is removed when
// closed. Pass it to OpenTemp to hand its ownership to the reader.
type TempDir struct {
	path string
	once sync.Once
	err  error
}

// NewTempDir creates a new directory in dir (os.TempDir if empty) following
// the naming rules of os.MkdirTemp.
func NewTempDir(dir, pattern string) (*TempDir, error) {
	path, err := os.MkdirTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return &TempDir{path: path}, nil
}

// AdoptTempDir takes ownership of an existing directory, for example one an
// archive was extracted into.
func AdoptTempDir(path string) *TempDir {
	return &TempDir{path: path}
}

// Path returns the directory path.
func (d *TempDir) Path() string {
	return d.path
}

// Close removes the directory and everything below it. Only the first call
// has an effect; later calls return its result.
func (d *TempDir) Close() error {
	d.once.Do(func() {
		d.err = os.RemoveAll(d.path)
	})
	return d.err
}

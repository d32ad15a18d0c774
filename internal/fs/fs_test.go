package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "movies")
	require.NoError(t, os.MkdirAll(dir, 0755))
	fpath := filepath.Join(dir, "documents.jsonl")
	require.NoError(t, os.WriteFile(fpath, []byte("hello"), 0644))

	f, err := lfs.Open(fpath)
	require.NoError(t, err)

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	require.NoError(t, f.Close())

	entries, err := lfs.ReadDir(tmp)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "movies", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	_, err = lfs.Stat(filepath.Join(tmp, "missing"))
	assert.True(t, os.IsNotExist(err))

	// Files are opened read-only.
	f, err = lfs.Open(fpath)
	require.NoError(t, err)
	defer f.Close()
	w, ok := f.(io.Writer)
	require.True(t, ok)
	_, err = w.Write([]byte("x"))
	assert.Error(t, err)
}

func TestFaultyFS(t *testing.T) {
	tmp := t.TempDir()
	fpath := filepath.Join(tmp, "updates.jsonl")
	require.NoError(t, os.WriteFile(fpath, []byte("0123456789"), 0644))

	t.Run("FailAfterBytes", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("updates", Fault{FailAfterBytes: 4})

		f, err := ffs.Open(fpath)
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		assert.ErrorIs(t, err, ErrInjected)
		assert.Equal(t, "0123", string(data))
		assert.Equal(t, 1, ffs.Opened(fpath))
	})

	t.Run("FailOnOpen", func(t *testing.T) {
		boom := errors.New("boom")
		ffs := NewFaultyFS(LocalFS{})
		ffs.AddRule("updates", Fault{FailOnOpen: true, Err: boom})

		_, err := ffs.Open(fpath)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, ffs.Opened(fpath))
	})

	t.Run("FailOnReadDir", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule(tmp, Fault{FailOnReadDir: true})

		_, err := ffs.ReadDir(tmp)
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("FailOnClose", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("updates", Fault{FailOnClose: true})

		f, err := ffs.Open(fpath)
		require.NoError(t, err)
		assert.ErrorIs(t, f.Close(), ErrInjected)
	})

	t.Run("NoRule", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		f, err := ffs.Open(fpath)
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "0123456789", string(data))
	})
	t.Run("Live", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		a, err := ffs.Open(fpath)
		require.NoError(t, err)
		b, err := ffs.Open(fpath)
		require.NoError(t, err)
		assert.Equal(t, 2, ffs.Live())
		assert.Equal(t, 2, ffs.Opened(fpath))

		require.NoError(t, a.Close())
		_ = a.Close()
		assert.Equal(t, 1, ffs.Live())
		require.NoError(t, b.Close())
		assert.Equal(t, 0, ffs.Live())
	})
}

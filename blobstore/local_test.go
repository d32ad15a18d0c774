package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/dumpreader/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "movies"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "books"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "metadata.json"), []byte(`{}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "movies", "settings.json"), []byte(`{"a":1}`), 0644))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()
	assert.Equal(t, tmpDir, store.Root())

	t.Run("List", func(t *testing.T) {
		entries, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Name: "books", IsDir: true},
			{Name: "metadata.json"},
			{Name: "movies", IsDir: true},
		}, entries)

		entries, err = store.List(ctx, "movies")
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Name: "settings.json"}}, entries)
	})

	t.Run("Open", func(t *testing.T) {
		rc, err := store.Open(ctx, Join("movies", "settings.json"))
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "movies/documents.jsonl")
		assert.True(t, errors.Is(err, ErrNotFound))

		_, err = store.List(ctx, "missing")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.List(cctx, "")
		assert.ErrorIs(t, err, context.Canceled)
		_, err = store.Open(cctx, "metadata.json")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalStore_FaultyFS(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "metadata.json"), []byte(`{}`), 0644))

	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("metadata.json", fs.Fault{FailOnOpen: true})
	store := NewLocalStoreFS(tmpDir, ffs)

	_, err := store.Open(context.Background(), "metadata.json")
	assert.ErrorIs(t, err, fs.ErrInjected)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "movies/documents.jsonl", Join("movies", "documents.jsonl"))
	assert.Equal(t, "metadata.json", Join("", "metadata.json"))
	assert.Equal(t, "", Join(""))
	assert.Equal(t, "movies", Join("/movies/"))
}

package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte(`{"id":1}`)
	store.Put("metadata.json", []byte(`{"format_version":1}`))
	store.Put("movies/documents.jsonl", data)
	store.Put("a/b/c.json", nil)
	store.Mkdir("empty")

	// External mutation does not leak into the store.
	data[0] = 'X'

	entries, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "a", IsDir: true},
		{Name: "empty", IsDir: true},
		{Name: "metadata.json"},
		{Name: "movies", IsDir: true},
	}, entries)

	entries, err = store.List(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "b", IsDir: true}}, entries)

	entries, err = store.List(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = store.List(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	rc, err := store.Open(ctx, "movies/documents.jsonl")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, `{"id":1}`, string(got))

	_, err = store.Open(ctx, "movies/settings.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

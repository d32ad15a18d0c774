package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Intn(1000)
	rng.Reset()
	assert.Equal(t, a, rng.Intn(1000))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestTaskLogs(t *testing.T) {
	rng := NewRNG(4711)
	d := rng.TaskLogs(5, 20, 10)

	require.Len(t, d.Indexes, 5)
	assert.Equal(t, "index-00", d.Indexes[0].Name)
	total := 0
	for _, ix := range d.Indexes {
		assert.LessOrEqual(t, len(ix.Updates), 20)
		total += len(ix.Updates)
	}
	assert.Equal(t, total, d.TaskCount())

	// Same seed, same dump.
	assert.Equal(t, d, NewRNG(4711).TaskLogs(5, 20, 10))
}

func TestDump_WriteDir(t *testing.T) {
	dir := t.TempDir()
	d := Dump{Indexes: []Index{{
		Name:      "movies",
		Documents: []string{`{"id":1}`, `{"id":2}`},
		Updates:   []string{Task(0, 10)},
	}}}
	require.NoError(t, d.WriteDir(dir))

	meta, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"format_version":1}`, string(meta))

	docs, err := os.ReadFile(filepath.Join(dir, "movies", "documents.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(docs), "\n"))

	settings, err := os.ReadFile(filepath.Join(dir, "movies", "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(settings))
}

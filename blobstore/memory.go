package blobstore

import (
	"bytes"
	"context"
	"io"
	"path"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store implementation for testing.
// Directories are implied by member names; Mkdir adds empty ones.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	dirs  map[string]struct{}
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
}

// Put writes a member, creating its parent directories.
func (m *MemoryStore) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = Join(name)
	// Copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)
	m.blobs[name] = copied
	m.mkdirLocked(path.Dir(name))
}

// Mkdir creates an empty directory and its parents.
func (m *MemoryStore) Mkdir(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirLocked(Join(name))
}

func (m *MemoryStore) mkdirLocked(dir string) {
	for dir != "." && dir != "" && dir != "/" {
		m.dirs[dir] = struct{}{}
		dir = path.Dir(dir)
	}
}

// List returns the entries directly below dir sorted by name.
func (m *MemoryStore) List(_ context.Context, dir string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir = Join(dir)
	if dir != "" {
		if _, ok := m.dirs[dir]; !ok {
			return nil, ErrNotFound
		}
	}

	seen := make(map[string]bool)
	add := func(name string, isDir bool) {
		parent := path.Dir(name)
		if parent == "." {
			parent = ""
		}
		if parent != dir {
			return
		}
		seen[path.Base(name)] = isDir
	}
	for name := range m.blobs {
		add(name, false)
	}
	for name := range m.dirs {
		add(name, true)
	}

	entries := make([]Entry, 0, len(seen))
	for name, isDir := range seen {
		entries = append(entries, Entry{Name: name, IsDir: isDir})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Open opens a member for reading.
func (m *MemoryStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[Join(name)]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

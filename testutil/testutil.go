package testutil

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63n returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Index is the content of one index directory.
type Index struct {
	Name      string
	Documents []string
	Settings  string // "{}" when empty
	Updates   []string
}

// Dump is a v1 dump fixture.
type Dump struct {
	Metadata string // `{"format_version":1}` when empty
	Indexes  []Index
}

// Files returns the members of the dump keyed by slash separated path.
func (d Dump) Files() map[string][]byte {
	meta := d.Metadata
	if meta == "" {
		meta = `{"format_version":1}`
	}
	files := map[string][]byte{"metadata.json": []byte(meta)}
	for _, ix := range d.Indexes {
		settings := ix.Settings
		if settings == "" {
			settings = "{}"
		}
		files[ix.Name+"/documents.jsonl"] = jsonLines(ix.Documents)
		files[ix.Name+"/settings.json"] = []byte(settings)
		files[ix.Name+"/updates.jsonl"] = jsonLines(ix.Updates)
	}
	return files
}

// WriteDir writes the dump below dir.
func (d Dump) WriteDir(dir string) error {
	for name, data := range d.Files() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// TaskCount returns the number of task lines over all indexes.
func (d Dump) TaskCount() int {
	n := 0
	for _, ix := range d.Indexes {
		n += len(ix.Updates)
	}
	return n
}

func jsonLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// Task returns a processed task record enqueued at the given Unix second.
func Task(id uint64, enqueuedAt int64) string {
	return fmt.Sprintf(`{"update_id":%d,"status":"processed","type":{"name":"DocumentsAddition","number":1},"enqueued_at":%d}`, id, enqueuedAt)
}

// TaskLogs returns a dump of n indexes named "index-00", "index-01", ...
// Each holds up to maxTasks tasks with ascending enqueue times drawn from
// [0, span), so equal times across and within indexes are common. Update ids
// are unique across the dump.
func (r *RNG) TaskLogs(n, maxTasks int, span int64) Dump {
	var d Dump
	var id uint64
	for i := range n {
		count := r.Intn(maxTasks + 1)
		times := make([]int64, count)
		for j := range times {
			times[j] = r.Int63n(span)
		}
		slices.Sort(times)

		ix := Index{Name: fmt.Sprintf("index-%02d", i)}
		for _, ts := range times {
			ix.Updates = append(ix.Updates, Task(id, ts))
			id++
		}
		d.Indexes = append(d.Indexes, ix)
	}
	return d
}

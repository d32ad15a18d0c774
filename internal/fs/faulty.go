package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrInjected is the error returned by faults that do not set their own.
var ErrInjected = errors.New("injected fault error")

// Fault defines specific failure behavior.
type Fault struct {
	FailOnOpen     bool
	FailOnReadDir  bool
	FailAfterBytes int64 // Fail reads after this many bytes read FROM THIS FILE. -1 to disable.
	FailOnClose    bool
	Err            error
}

func (f Fault) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}

// FaultyFS is a FileSystem wrapper that can inject errors.
type FaultyFS struct {
	FS      FileSystem
	mu      sync.Mutex
	rules   map[string]Fault // Filename pattern -> Fault
	Default Fault            // Fallback

	opened map[string]int
	live   int
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		rules: make(map[string]Fault),
		Default: Fault{
			FailAfterBytes: -1, // No limit
		},
		opened: make(map[string]int),
	}
}

// AddRule adds a fault injection rule for paths containing pattern.
// Unset FailAfterBytes (0) disables the read limit for the rule.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fault.FailAfterBytes == 0 {
		fault.FailAfterBytes = -1
	}
	f.rules[pattern] = fault
}

// Opened returns how many times name was opened successfully.
func (f *FaultyFS) Opened(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened[name]
}

// Live returns how many opened files have not been closed yet.
func (f *FaultyFS) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

func (f *FaultyFS) match(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()
	fault := f.Default
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) {
			fault = rule
		}
	}
	return fault
}

func (f *FaultyFS) Open(name string) (File, error) {
	fault := f.match(name)
	if fault.FailOnOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fault.err()}
	}
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.opened[name]++
	f.live++
	f.mu.Unlock()

	return &faultyFile{File: file, fault: fault, owner: f}, nil
}

func (f *FaultyFS) ReadDir(name string) ([]os.DirEntry, error) {
	if fault := f.match(name); fault.FailOnReadDir {
		return nil, &os.PathError{Op: "readdir", Path: name, Err: fault.err()}
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	return f.FS.Stat(name)
}

type faultyFile struct {
	File
	fault  Fault
	owner  *FaultyFS
	read   int64
	closed bool
}

func (ff *faultyFile) Read(p []byte) (n int, err error) {
	if ff.fault.FailAfterBytes >= 0 {
		remaining := ff.fault.FailAfterBytes - ff.read
		if remaining <= 0 {
			return 0, ff.fault.err()
		}
		if int64(len(p)) > remaining {
			p = p[:remaining]
		}
	}
	n, err = ff.File.Read(p)
	ff.read += int64(n)
	return n, err
}

func (ff *faultyFile) Close() error {
	if !ff.closed {
		ff.closed = true
		ff.owner.mu.Lock()
		ff.owner.live--
		ff.owner.mu.Unlock()
	}
	err := ff.File.Close()
	if ff.fault.FailOnClose {
		return ff.fault.err()
	}
	return err
}

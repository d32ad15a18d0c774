package model

import (
	"fmt"
	"time"
)

// Version is the on-disk format revision of a dump.
type Version int

const (
	// V1 is the oldest dump layout: one directory per index holding
	// documents.jsonl, settings.json and updates.jsonl.
	V1 Version = 1
)

// String returns the conventional name of the version (e.g. "V1").
func (v Version) String() string {
	return fmt.Sprintf("V%d", int(v))
}

// Metadata describes a dump as a whole. It is read once when the dump is
// opened and never changes afterwards.
type Metadata struct {
	Version Version
	// CreationDate is nil when the format does not record one.
	CreationDate *time.Time
}

package v1

import (
	"github.com/hupe1980/dumpreader/internal/dumpmeta"
	"github.com/hupe1980/dumpreader/model"
)

// MetadataFile is the name of the top-level metadata member.
const MetadataFile = dumpmeta.File

// metadata is the v1 metadata.json document.
type metadata struct {
	dumpmeta.Probe
	CreationDate *model.Timestamp `json:"creation_date,omitempty"`
	DBVersion    string           `json:"db_version,omitempty"`
	Indexes      []indexEntry     `json:"indexes,omitempty"`
}

type indexEntry struct {
	Name       string           `json:"name"`
	UID        string           `json:"uid"`
	PrimaryKey *string          `json:"primary_key,omitempty"`
	CreatedAt  *model.Timestamp `json:"created_at,omitempty"`
	UpdatedAt  *model.Timestamp `json:"updated_at,omitempty"`
}

func (e indexEntry) meta() model.IndexMeta {
	m := model.IndexMeta{UID: e.UID, PrimaryKey: e.PrimaryKey}
	if e.CreatedAt != nil {
		t := e.CreatedAt.Time
		m.CreatedAt = &t
	}
	if e.UpdatedAt != nil {
		t := e.UpdatedAt.Time
		m.UpdatedAt = &t
	}
	return m
}

// lookup returns the metadata entry of the index named name.
func (m *metadata) lookup(name string) (indexEntry, bool) {
	for _, e := range m.Indexes {
		if e.Name == name || (e.Name == "" && e.UID == name) {
			return e, true
		}
	}
	return indexEntry{}, false
}

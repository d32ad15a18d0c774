package model

import (
	"bytes"
	"encoding/json"

	"github.com/hupe1980/dumpreader/codec"
)

type settingState uint8

const (
	settingNotSet settingState = iota
	settingReset
	settingSet
)

// Setting is a tri-state index setting: absent from the record, explicitly
// reset to its default with null, or set to a value.
type Setting[T any] struct {
	state settingState
	value T
}

// NewSetting returns a setting holding v.
func NewSetting[T any](v T) Setting[T] {
	return Setting[T]{state: settingSet, value: v}
}

// ResetSetting returns a setting that restores the engine default.
func ResetSetting[T any]() Setting[T] {
	return Setting[T]{state: settingReset}
}

// IsSet reports whether the setting carries a value.
func (s Setting[T]) IsSet() bool { return s.state == settingSet }

// IsReset reports whether the record asked for the default value.
func (s Setting[T]) IsReset() bool { return s.state == settingReset }

// IsNotSet reports whether the setting was absent from the record.
func (s Setting[T]) IsNotSet() bool { return s.state == settingNotSet }

// Value returns the value and whether one is present.
func (s Setting[T]) Value() (T, bool) {
	return s.value, s.state == settingSet
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for keys that
// are present, so an absent key keeps the not-set state. Values go through
// codec.Default so numbers nested in a setting stay json.Number.
func (s *Setting[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		s.state, s.value = settingReset, zero
		return nil
	}
	var v T
	if err := codec.Default.Unmarshal(data, &v); err != nil {
		return err
	}
	s.state, s.value = settingSet, v
	return nil
}

// Settings is the configuration of one index.
//
// Only the settings every V1 engine understands are typed. Raw keeps the
// whole settings record so keys outside that set (newer settings, engine
// extensions) survive a read.
type Settings struct {
	RankingRules          Setting[[]string]            `json:"ranking_rules"`
	DistinctAttribute     Setting[string]              `json:"distinct_attribute"`
	SearchableAttributes  Setting[[]string]            `json:"searchable_attributes"`
	DisplayedAttributes   Setting[[]string]            `json:"displayed_attributes"`
	StopWords             Setting[[]string]            `json:"stop_words"`
	Synonyms              Setting[map[string][]string] `json:"synonyms"`
	AttributesForFaceting Setting[[]string]            `json:"attributes_for_faceting"`

	Raw json.RawMessage `json:"-"`
}

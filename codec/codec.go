// Package codec centralizes decoding of dump records.
//
// Every JSON value a dump reader decodes (metadata, settings, documents and
// task records) goes through a Codec, so the JSON implementation can be
// swapped without touching the readers.
package codec

import (
	"errors"
	"fmt"
)

// ErrTrailingData is returned when a record holds more than one JSON value.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
//
// Unmarshal must keep numbers that land in interface values as json.Number,
// so that raw documents keep their exact numeric text.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes exactly one JSON value from data into v.
func (GoJSON) Unmarshal(data []byte, v any) error {
	if !gojson.Valid(data) {
		// Let the plain decoder produce a descriptive syntax error.
		if err := gojson.Unmarshal(data, v); err != nil {
			return err
		}
		return ErrTrailingData
	}
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

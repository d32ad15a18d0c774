package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// JSON is the standard-library JSON codec.
//
// It exists as a reference implementation for GoJSON and for callers that
// want the lowest-dependency decoding path.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes exactly one JSON value from data into v.
func (JSON) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

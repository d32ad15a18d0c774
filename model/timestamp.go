package model

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a point in time as written in dump records.
//
// It decodes from an RFC 3339 string or from an integer number of seconds
// since the Unix epoch. It always encodes as RFC 3339.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnixTimestamp returns the timestamp for sec seconds since the Unix epoch (UTC).
func UnixTimestamp(sec int64) Timestamp {
	return Timestamp{Time: time.Unix(sec, 0).UTC()}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("timestamp: missing value")
	}

	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		t.Time = parsed
		return nil
	}

	sec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp: expected RFC 3339 string or unix seconds, got %s", data)
	}
	t.Time = time.Unix(sec, 0).UTC()
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Time.Format(time.RFC3339Nano))), nil
}

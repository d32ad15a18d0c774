// Package jsonl decodes newline-delimited JSON one record at a time.
package jsonl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/dumpreader/codec"
)

// DefaultMaxLineSize bounds the size of a single record.
const DefaultMaxLineSize = 64 << 20

// ErrLineTooLong is returned (wrapped in a *DecodeError) for records larger
// than the configured maximum.
var ErrLineTooLong = errors.New("jsonl: line too long")

// DecodeError reports a line that is not a valid record.
type DecodeError struct {
	Line int // 0-based
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jsonl: line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Reader decodes one JSON value per line. Blank lines are skipped but still
// counted, so reported line numbers match the file.
type Reader struct {
	br      *bufio.Reader
	codec   codec.Codec
	maxLine int
	line    int // next line to read
	buf     []byte
}

// NewReader returns a Reader decoding from r with c (codec.Default if nil).
// maxLine <= 0 selects DefaultMaxLineSize.
func NewReader(r io.Reader, c codec.Codec, maxLine int) *Reader {
	if c == nil {
		c = codec.Default
	}
	if maxLine <= 0 {
		maxLine = DefaultMaxLineSize
	}
	return &Reader{
		br:      bufio.NewReader(r),
		codec:   c,
		maxLine: maxLine,
	}
}

// Next decodes the next record into v and returns its 0-based line number.
//
// It returns io.EOF when the input is exhausted, a *DecodeError when the line
// cannot be decoded, and any other error as returned by the underlying reader.
func (r *Reader) Next(v any) (int, error) {
	raw, line, err := r.nextLine()
	if err != nil {
		return line, err
	}
	if err := r.codec.Unmarshal(raw, v); err != nil {
		return line, &DecodeError{Line: line, Err: err}
	}
	return line, nil
}

// NextRaw returns the next non-blank line, without surrounding whitespace,
// and its 0-based line number. The returned bytes are a copy owned by the
// caller. Errors are the same as for Next.
func (r *Reader) NextRaw() ([]byte, int, error) {
	raw, line, err := r.nextLine()
	if err != nil {
		return nil, line, err
	}
	return bytes.Clone(raw), line, nil
}

// nextLine is NextRaw without the copy; raw is valid until the next read.
func (r *Reader) nextLine() ([]byte, int, error) {
	for {
		raw, err := r.readLine()
		line := r.line
		if err != nil {
			if errors.Is(err, ErrLineTooLong) {
				return nil, line, &DecodeError{Line: line, Err: err}
			}
			return nil, line, err
		}
		r.line++

		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			continue
		}
		return raw, line, nil
	}
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) readLine() ([]byte, error) {
	r.buf = r.buf[:0]
	for {
		chunk, err := r.br.ReadSlice('\n')
		r.buf = append(r.buf, chunk...)
		if len(r.buf) > r.maxLine {
			return nil, ErrLineTooLong
		}
		switch {
		case err == nil:
			return r.buf, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && len(r.buf) > 0:
			return r.buf, nil
		default:
			return nil, err
		}
	}
}

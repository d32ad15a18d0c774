package v1

import (
	"errors"
	"io"

	"github.com/hupe1980/dumpreader/codec"
	"github.com/hupe1980/dumpreader/internal/jsonl"
	"github.com/hupe1980/dumpreader/model"
)

type cursorState uint8

const (
	stateHasCurrent cursorState = iota
	stateExhausted
	stateFailed
)

// taskCursor walks the task log of one index with one record of read-ahead.
// It implements merge.Cursor[model.Task].
type taskCursor struct {
	index  string
	member string
	dec    *jsonl.Reader
	codec  codec.Codec

	state cursorState
	cur   model.Task
	err   error

	// reads counts pulls from the log, including the one that hit EOF.
	reads int
}

// newTaskCursor reads the first record of r eagerly. A failing first read
// leaves the cursor failed; the error surfaces through Err.
func newTaskCursor(index, member string, r io.Reader, c codec.Codec, maxLine int) *taskCursor {
	if c == nil {
		c = codec.Default
	}
	tc := &taskCursor{
		index:  index,
		member: member,
		dec:    jsonl.NewReader(r, c, maxLine),
		codec:  c,
	}
	tc.fill()
	return tc
}

func (c *taskCursor) fill() {
	c.reads++
	c.cur = model.Task{}

	st, line, err := c.next()
	switch {
	case err == nil:
		c.state = stateHasCurrent
		c.cur = model.Task{Index: c.index, Status: st}
	case errors.Is(err, io.EOF):
		c.state = stateExhausted
	default:
		c.state = stateFailed
		var de *jsonl.DecodeError
		if errors.As(err, &de) {
			c.err = model.NewParseError(c.index, c.member, line, de.Err)
		} else {
			c.err = model.IOError("read", c.index+"/"+c.member, err)
		}
	}
}

// next decodes one task record. Records lacking the fields the merge relies
// on are rejected as decode errors.
func (c *taskCursor) next() (model.UpdateStatus, int, error) {
	raw, line, err := c.dec.NextRaw()
	if err != nil {
		return model.UpdateStatus{}, line, err
	}

	var st model.UpdateStatus
	if err := c.codec.Unmarshal(raw, &st); err != nil {
		return model.UpdateStatus{}, line, &jsonl.DecodeError{Line: line, Err: err}
	}
	if err := st.Validate(); err != nil {
		return model.UpdateStatus{}, line, &jsonl.DecodeError{Line: line, Err: err}
	}
	st.Raw = raw
	return st, line, nil
}

func (c *taskCursor) Peek() (model.Task, bool) {
	return c.cur, c.state == stateHasCurrent
}

func (c *taskCursor) Advance() (model.Task, bool) {
	if c.state != stateHasCurrent {
		return model.Task{}, false
	}
	v := c.cur
	c.fill()
	return v, true
}

func (c *taskCursor) Err() error {
	if c.state == stateFailed {
		return c.err
	}
	return nil
}

// compareTasks orders tasks by enqueue time.
func compareTasks(a, b model.Task) int {
	return a.Status.EnqueuedAt.Compare(b.Status.EnqueuedAt.Time)
}

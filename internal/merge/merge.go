// Package merge implements a k-way merge over individually sorted cursors.
//
// Each source is wrapped in a [Cursor] that buffers exactly one value ahead,
// so the merge can compare the heads of all sources without rewinding any of
// them. Selection is a linear scan, O(T·N) for T values over N cursors, which
// is the right trade-off when N is small.
package merge

import "iter"

// Cursor is a sorted source with one value of look-ahead.
type Cursor[T any] interface {
	// Peek returns the buffered value without consuming it. ok is false when
	// the cursor is exhausted or failed.
	Peek() (v T, ok bool)

	// Advance returns the buffered value and buffers the next one.
	Advance() (v T, ok bool)

	// Err returns the error that stopped the cursor, if any.
	Err() error
}

// Iterator merges cursors into one ascending sequence.
//
// Values that compare equal are yielded in cursor order: the cursor given
// first to New wins. A cursor that fails is reported once through Next and
// then dropped; the remaining cursors keep merging.
type Iterator[T any] struct {
	cursors []Cursor[T]
	cmp     func(a, b T) int
	done    bool
}

// New returns an Iterator over cursors ordered by cmp.
func New[T any](cursors []Cursor[T], cmp func(a, b T) int) *Iterator[T] {
	live := make([]Cursor[T], len(cursors))
	copy(live, cursors)
	return &Iterator[T]{
		cursors: live,
		cmp:     cmp,
	}
}

// Next returns the smallest buffered value across all cursors.
//
// It returns ok=false with a nil error once every cursor is exhausted. A
// non-nil error reports a failed cursor; calling Next again continues with the
// others.
func (it *Iterator[T]) Next() (v T, ok bool, err error) {
	var zero T
	if it.done {
		return zero, false, nil
	}

	best := -1
	var bestV T
	live := it.cursors[:0]
	var failed error
	for _, c := range it.cursors {
		if failed == nil {
			if err := c.Err(); err != nil {
				failed = err
				continue
			}
		}
		head, ok := c.Peek()
		if !ok {
			if c.Err() != nil {
				// Reported on a later pull.
				live = append(live, c)
			}
			continue
		}
		live = append(live, c)
		if best < 0 || it.cmp(head, bestV) < 0 {
			best, bestV = len(live)-1, head
		}
	}
	clear(it.cursors[len(live):])
	it.cursors = live

	if failed != nil {
		return zero, false, failed
	}
	if best < 0 {
		it.done = true
		return zero, false, nil
	}

	v, _ = it.cursors[best].Advance()
	return v, true, nil
}

// All returns the remaining merged values as a sequence. Errors are yielded
// in place and do not stop the sequence.
func (it *Iterator[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, ok, err := it.Next()
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

package cursors

import (
	"go.llib.dev/traverse"
)

// Filter returns a cursor that only yields the source elements the selector matches.
//
// To keep HasNext answerable without losing elements,
// the filter cursor prefetches from the source until it finds a match;
// repeated HasNext calls are idempotent on the filtered sequence.
func Filter[T any](src traverse.Cursor[T], selector func(T) bool) traverse.Cursor[T] {
	return &filterCursor[T]{src: src, match: selector}
}

type filterCursor[T any] struct {
	src   traverse.Cursor[T]
	match func(T) bool

	next       T
	prefetched bool
	err        error
	done       bool
}

func (c *filterCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	if c.prefetched || c.err != nil {
		return true
	}
	for c.src.HasNext() {
		v, err := c.src.Next()
		if err != nil {
			c.err = err
			return true
		}
		if c.match(v) {
			c.next = v
			c.prefetched = true
			return true
		}
	}
	c.done = true
	return false
}

func (c *filterCursor[T]) Next() (T, error) {
	var zero T
	if !c.HasNext() {
		return zero, traverse.ErrExhausted
	}
	if c.err != nil {
		err := c.err
		c.err = nil
		c.done = true
		return zero, err
	}
	c.prefetched = false
	return c.next, nil
}

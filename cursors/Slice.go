// Package cursors provide cursor constructors and combinators for the traverse.Cursor contract.
package cursors

import (
	"go.llib.dev/traverse"
)

// Slice returns a cursor that yields the elements of the given slice in order.
func Slice[T any](slice []T) *SliceCursor[T] {
	return &SliceCursor[T]{Slice: slice}
}

type SliceCursor[T any] struct {
	Slice []T

	index int
	done  bool
}

func (c *SliceCursor[T]) HasNext() bool {
	return !c.done && c.index < len(c.Slice)
}

func (c *SliceCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		c.done = true
		var zero T
		return zero, traverse.ErrExhausted
	}

	v := c.Slice[c.index]
	c.index++
	return v, nil
}

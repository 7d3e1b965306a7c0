package cursors

import (
	"go.llib.dev/traverse"
)

// SingleValue creates a cursor that can return one single element and will ensure that Next can only succeed once.
func SingleValue[T any](v T) *SingleValueCursor[T] {
	return &SingleValueCursor[T]{V: v}
}

type SingleValueCursor[T any] struct {
	V T

	index int
}

func (c *SingleValueCursor[T]) HasNext() bool {
	return c.index == 0
}

func (c *SingleValueCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, traverse.ErrExhausted
	}
	c.index++
	return c.V, nil
}

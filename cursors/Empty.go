package cursors

import (
	"go.llib.dev/traverse"
)

// Empty cursor is used to represent a nil result with the Null Object pattern.
func Empty[T any]() *EmptyCursor[T] {
	return &EmptyCursor[T]{}
}

// EmptyCursor can help achieve the Null Object Pattern when no value is logically expected and a cursor should be returned.
type EmptyCursor[T any] struct{}

func (c *EmptyCursor[T]) HasNext() bool {
	return false
}

func (c *EmptyCursor[T]) Next() (T, error) {
	var v T
	return v, traverse.ErrExhausted
}

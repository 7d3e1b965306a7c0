package cursors

import (
	"go.llib.dev/traverse"
)

// Error returns a cursor that only can do is returning an error and never have a next element.
// This can be used when a cursor producer encounter an unexpected non recoverable error.
func Error[T any](err error) *ErrorCursor[T] {
	return &ErrorCursor[T]{err: err}
}

// ErrorCursor yields no element; its first Next call reports the wrapped error,
// after which the cursor behaves as exhausted.
type ErrorCursor[T any] struct {
	err  error
	done bool
}

func (c *ErrorCursor[T]) HasNext() bool {
	return !c.done && c.err != nil
}

func (c *ErrorCursor[T]) Next() (T, error) {
	var v T
	if !c.HasNext() {
		return v, traverse.ErrExhausted
	}
	c.done = true
	return v, c.err
}

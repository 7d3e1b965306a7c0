package cursors

import (
	"go.llib.dev/traverse"
)

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[T, U any](src traverse.Cursor[T], transform func(T) U) traverse.Cursor[U] {
	return &mapCursor[T, U]{src: src, transform: transform}
}

type mapCursor[T, U any] struct {
	src       traverse.Cursor[T]
	transform func(T) U
}

func (c *mapCursor[T, U]) HasNext() bool {
	return c.src.HasNext()
}

func (c *mapCursor[T, U]) Next() (U, error) {
	v, err := c.src.Next()
	if err != nil {
		var zero U
		return zero, err
	}
	return c.transform(v), nil
}

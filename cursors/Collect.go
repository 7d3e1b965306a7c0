package cursors

import (
	"go.llib.dev/traverse"
)

// Collect drains the cursor into a slice, preserving the iteration order.
func Collect[T any](c traverse.Cursor[T]) ([]T, error) {
	if c == nil {
		return nil, nil
	}
	var vs []T
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

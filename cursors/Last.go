package cursors

import (
	"go.llib.dev/traverse"
)

// Last drains the cursor and returns its final element.
// On an already exhausted cursor it fails with traverse.ErrExhausted.
func Last[T any](c traverse.Cursor[T]) (T, error) {
	var (
		last     T
		iterated bool
	)
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			var zero T
			return zero, err
		}
		last = v
		iterated = true
	}
	if !iterated {
		var zero T
		return zero, traverse.ErrExhausted
	}
	return last, nil
}

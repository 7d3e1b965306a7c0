package cursors

import (
	"go.llib.dev/traverse"
)

// First returns the first element of the cursor.
// On an already exhausted cursor it fails with traverse.ErrExhausted.
func First[T any](c traverse.Cursor[T]) (T, error) {
	return c.Next()
}

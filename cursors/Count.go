package cursors

import (
	"go.llib.dev/traverse"
)

// Count will iterate over and count the total iterations number.
//
// Good when all you want is to count all the elements in a cursor but don't want to do anything else.
func Count[T any](c traverse.Cursor[T]) (int, error) {
	total := 0
	for c.HasNext() {
		if _, err := c.Next(); err != nil {
			return total, err
		}
		total++
	}
	return total, nil
}

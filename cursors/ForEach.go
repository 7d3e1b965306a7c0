package cursors

import (
	"go.llib.dev/traverse"
)

// Break can be returned from the ForEach block to stop the iteration early without an error.
const Break traverse.Error = `cursors: break`

// ForEach calls the block with every remaining element of the cursor.
// Returning Break from the block stops the iteration; any other error aborts it and is returned.
func ForEach[T any](c traverse.Cursor[T], blk func(T) error) error {
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			return err
		}
		if err := blk(v); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}
	return nil
}

package cursors

import (
	"go.llib.dev/traverse"
)

// Reduce folds the cursor's elements into a single result value.
// The block may be fallible or infallible.
func Reduce[
	T, Result any,
	BLK func(Result, T) Result |
		func(Result, T) (Result, error),
](c traverse.Cursor[T], initial Result, blk BLK) (Result, error) {
	var do func(Result, T) (Result, error)
	switch blk := any(blk).(type) {
	case func(Result, T) Result:
		do = func(result Result, v T) (Result, error) {
			return blk(result, v), nil
		}
	case func(Result, T) (Result, error):
		do = blk
	}
	var result = initial
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			return result, err
		}
		result, err = do(result, v)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

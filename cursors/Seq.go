package cursors

import (
	"iter"

	"go.llib.dev/traverse"
)

// FromSeq adapts a stdlib iter.Seq into a cursor.
//
// The returned cursor owns the pull side of the sequence;
// it releases it once the sequence is exhausted.
func FromSeq[T any](seq iter.Seq[T]) traverse.Cursor[T] {
	next, stop := iter.Pull(seq)
	return &seqCursor[T]{next: next, stop: stop}
}

// ToSeq adapts a cursor into a stdlib iter.Seq2 that pairs every element with its error.
// The returned sequence is single use, as the underlying cursor cannot be rewound.
func ToSeq[T any](c traverse.Cursor[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for c.HasNext() {
			if !yield(c.Next()) {
				return
			}
		}
	}
}

type seqCursor[T any] struct {
	next func() (T, bool)
	stop func()

	value      T
	prefetched bool
	done       bool
}

func (c *seqCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	if c.prefetched {
		return true
	}
	v, ok := c.next()
	if !ok {
		c.done = true
		c.stop()
		return false
	}
	c.value = v
	c.prefetched = true
	return true
}

func (c *seqCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, traverse.ErrExhausted
	}
	c.prefetched = false
	return c.value, nil
}

package datastruct

import (
	"iter"

	"go.llib.dev/traverse"
)

// ArrayList is a slice backed traversable container.
// The zero value is an empty list, ready to use.
type ArrayList[T any] struct {
	vs []T
}

func (l *ArrayList[T]) Append(vs ...T) {
	l.vs = append(l.vs, vs...)
}

func (l *ArrayList[T]) Len() int {
	return len(l.vs)
}

func (l *ArrayList[T]) ToSlice() []T {
	var vs []T
	for _, v := range l.vs {
		vs = append(vs, v)
	}
	return vs
}

// Iterate returns a cursor over the list's live element sequence,
// positioned before the first element.
// Elements appended while the cursor is not yet exhausted will be visited.
func (l *ArrayList[T]) Iterate() traverse.Cursor[T] {
	return &arrayListCursor[T]{list: l}
}

func (l *ArrayList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for _, v := range l.vs {
			if !yield(v) {
				return
			}
		}
	}
}

type arrayListCursor[T any] struct {
	list  *ArrayList[T]
	index int
	done  bool
}

func (c *arrayListCursor[T]) HasNext() bool {
	return !c.done && c.index < len(c.list.vs)
}

func (c *arrayListCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		// exhaustion is terminal, even if the list grows afterwards
		c.done = true
		var zero T
		return zero, traverse.ErrExhausted
	}
	v := c.list.vs[c.index]
	c.index++
	return v, nil
}

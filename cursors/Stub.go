package cursors

import (
	"go.llib.dev/traverse"
)

// NewStub wraps a cursor into a test double whose behavior can be overridden per method.
func NewStub[T any](c traverse.Cursor[T]) *Stub[T] {
	return &Stub[T]{
		Cursor:      c,
		StubHasNext: c.HasNext,
		StubNext:    c.Next,
	}
}

type Stub[T any] struct {
	Cursor traverse.Cursor[T]

	StubHasNext func() bool
	StubNext    func() (T, error)
}

// wrapper

func (m *Stub[T]) HasNext() bool {
	return m.StubHasNext()
}

func (m *Stub[T]) Next() (T, error) {
	return m.StubNext()
}

// Reseting stubs

func (m *Stub[T]) ResetHasNext() {
	m.StubHasNext = m.Cursor.HasNext
}

func (m *Stub[T]) ResetNext() {
	m.StubNext = m.Cursor.Next
}

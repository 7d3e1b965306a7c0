// Package traverse provides the iterator pattern's role interfaces:
// a Cursor for sequential access and a Traversable for cursor manufacturing aggregates.
//
// Clients use a cursor to access and traverse an aggregate
// without knowing its representation (data structures).
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package traverse

// Cursor define a separate object that encapsulates accessing and traversing an aggregate object.
//
// A cursor is single use and owned by a single goroutine;
// concurrent advancement requires external synchronization.
type Cursor[V any] interface {
	// HasNext reports whether the sequence has more elements.
	// It has no side effect on the cursor's position and is always safe to call.
	HasNext() bool
	// Next returns the element at the current position and advances the cursor by one.
	// After the sequence ran out of elements, Next returns the zero value of V along with ErrExhausted.
	// Exhaustion is terminal: once Next reported ErrExhausted,
	// every further Next call reports it as well, and HasNext keeps returning false.
	Next() (V, error)
}

// Traversable is the aggregate role of the iterator pattern.
// It owns an ordered collection of elements and manufactures cursors over it.
type Traversable[V any] interface {
	// Iterate returns a new Cursor positioned at the beginning of the collection.
	// Each returned cursor advances independently from the others.
	//
	// The cursor observes the collection through a live reference, not a snapshot:
	// elements appended while a not yet exhausted cursor is outstanding will be visited by it.
	Iterate() Cursor[V]
}

package datastruct

import (
	"iter"

	"go.llib.dev/traverse"
)

// LinkedList is a doubly linked traversable container.
// The zero value is an empty list, ready to use.
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds elements to the beginning of the list.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		ll.prepend(vs[i])
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	newNode := &llElem[T]{data: v}
	if ll.head == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevHead := ll.head
		prevHead.prev = newNode
		newNode.next = prevHead
		ll.head = newNode
	}
	ll.length++
}

// Pop removes and returns the last element of the list.
func (ll *LinkedList[T]) Pop() (T, bool) {
	if ll.tail == nil {
		var zero T
		return zero, false
	}
	node := ll.tail
	ll.tail = node.prev
	if ll.tail == nil {
		ll.head = nil
	} else {
		ll.tail.next = nil
	}
	ll.length--
	return node.data, true
}

// Shift removes and returns the first element of the list.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	node := ll.head
	ll.head = node.next
	if ll.head == nil {
		ll.tail = nil
	} else {
		ll.head.prev = nil
	}
	ll.length--
	return node.data, true
}

func (ll *LinkedList[T]) Len() int {
	return ll.length
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

// Iterate returns a cursor over the list's live element sequence,
// positioned before the first element.
// Elements appended while the cursor is not yet exhausted will be visited.
// Removing already visited elements with Pop or Shift while a cursor is outstanding
// leaves that cursor's remaining traversal unspecified.
func (ll *LinkedList[T]) Iterate() traverse.Cursor[T] {
	return &linkedListCursor[T]{list: ll}
}

type linkedListCursor[T any] struct {
	list *LinkedList[T]
	last *llElem[T] // most recently visited element
	done bool
}

// peek resolves the upcoming element at call time,
// so appends made after the cursor was created remain visible.
func (c *linkedListCursor[T]) peek() *llElem[T] {
	if c.last == nil {
		return c.list.head
	}
	return c.last.next
}

func (c *linkedListCursor[T]) HasNext() bool {
	return !c.done && c.peek() != nil
}

func (c *linkedListCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		c.done = true
		var zero T
		return zero, traverse.ErrExhausted
	}
	node := c.peek()
	c.last = node
	return node.data, nil
}

// Package datastruct contains the ordered containers that act as traversable aggregates.
package datastruct

import (
	"iter"

	"go.llib.dev/traverse"
)

// List is the common role interface of the ordered containers in this package.
// A List preserves insertion order, allows duplicates and grows by appending.
type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq[T]
	traverse.Traversable[T]
	Sizer
}

type Sizer interface {
	Len() int
}

// Package traversecontract contains the behavioral contracts of the traverse role interfaces.
//
// Any expectation a consumer has towards a Cursor or Traversable supplier
// should be defined here, so alternate implementations can verify themselves
// against the same behavioral requirements.
package traversecontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/traverse"
)

// Contract represents a role interface specification.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioral requirements on a supplier implementation.
	Test(*testing.T)
	// Benchmark runs the contract's specification as a benchmark.
	Benchmark(*testing.B)
}

// Cursor specifies the behavior every traverse.Cursor implementation must honor.
// The mk function must return a cursor that is expected to yield the given elements, in order.
func Cursor[T any](mk func(tb testing.TB, vs []T) traverse.Cursor[T], mkV func(tb testing.TB) T) Contract {
	s := testcase.NewSpec(nil)

	s.Test("a cursor over N elements yields exactly them, in order, then reports exhaustion", func(t *testcase.T) {
		var exp []T
		t.Random.Repeat(1, 7, func() {
			exp = append(exp, mkV(t))
		})
		subject := mk(t, exp)

		var got []T
		for subject.HasNext() {
			v, err := subject.Next()
			assert.NoError(t, err)
			got = append(got, v)
		}

		assert.Equal(t, exp, got)
		assert.False(t, subject.HasNext())
	})

	s.Test("HasNext is false right away over an empty sequence", func(t *testcase.T) {
		subject := mk(t, nil)

		assert.False(t, subject.HasNext())
	})

	s.Test("HasNext has no side effect on the traversal position", func(t *testcase.T) {
		exp := mkV(t)
		subject := mk(t, []T{exp})

		t.Random.Repeat(2, 7, func() {
			assert.True(t, subject.HasNext())
		})

		got, err := subject.Next()
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	})

	s.Test("Next on an exhausted cursor fails with ErrExhausted and does not corrupt the cursor state", func(t *testcase.T) {
		subject := mk(t, nil)

		t.Random.Repeat(2, 5, func() {
			_, err := subject.Next()
			assert.ErrorIs(t, err, traverse.ErrExhausted)
			assert.False(t, subject.HasNext())
		})
	})

	return s.AsSuite("Cursor")
}

// Traversable specifies the behavior of a cursor manufacturing aggregate.
// The mk function must return an aggregate that holds the given elements, in order.
func Traversable[T any](mk func(tb testing.TB, vs []T) traverse.Traversable[T], mkV func(tb testing.TB) T) Contract {
	s := testcase.NewSpec(nil)

	s.Describe(".Iterate", Cursor[T](func(tb testing.TB, vs []T) traverse.Cursor[T] {
		return mk(tb, vs).Iterate()
	}, mkV).Spec)

	s.Test("cursors made from the same aggregate advance independently", func(t *testcase.T) {
		var exp []T
		t.Random.Repeat(2, 7, func() {
			exp = append(exp, mkV(t))
		})
		subject := mk(t, exp)

		fst := subject.Iterate()
		snd := subject.Iterate()

		got, err := fst.Next()
		assert.NoError(t, err)
		assert.Equal(t, exp[0], got)

		got, err = fst.Next()
		assert.NoError(t, err)
		assert.Equal(t, exp[1], got)

		got, err = snd.Next() // unaffected by the other cursor's advancement
		assert.NoError(t, err)
		assert.Equal(t, exp[0], got)
	})

	return s.AsSuite("Traversable")
}

package datastruct_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/traverse"
	"go.llib.dev/traverse/datastruct"
	"go.llib.dev/traverse/traversecontract"
)

var _ datastruct.List[int] = &datastruct.LinkedList[int]{}

func TestLinkedList(t *testing.T) {
	s := testcase.NewSpec(t)

	list := let.Var(s, func(t *testcase.T) *datastruct.LinkedList[int] {
		return &datastruct.LinkedList[int]{}
	})

	s.Test("smoke", func(t *testcase.T) {
		var ll datastruct.LinkedList[int]

		ll.Append(1, 2, 3)
		ll.Append(4)
		ll.Prepend(-1, 0)
		assert.Equal(t, []int{-1, 0, 1, 2, 3, 4}, ll.ToSlice())
		assert.Equal(t, 6, ll.Len())

		last, ok := ll.Pop()
		assert.True(t, ok)
		assert.Equal(t, 4, last)

		first, ok := ll.Shift()
		assert.True(t, ok)
		assert.Equal(t, -1, first)

		assert.Equal(t, []int{0, 1, 2, 3}, ll.ToSlice())
		assert.Equal(t, 4, ll.Len())
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		var (
			newVS = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
			})
		)
		act := let.Act0(func(t *testcase.T) {
			list.Get(t).Append(newVS.Get(t)...)
		})

		s.Then("the values are appended in their given order", func(t *testcase.T) {
			act(t)

			assert.Equal(t, newVS.Get(t), list.Get(t).ToSlice())
		})

		s.When("elements were already present in the list", func(s *testcase.Spec) {
			existing := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 5), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				list.Get(t).Append(existing.Get(t)...)
			})

			s.Then("the new values land at the end", func(t *testcase.T) {
				act(t)

				exp := append(append([]int{}, existing.Get(t)...), newVS.Get(t)...)
				assert.Equal(t, exp, list.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#Pop", func(s *testcase.Spec) {
		s.Test("empty list reports no value", func(t *testcase.T) {
			_, ok := list.Get(t).Pop()
			assert.False(t, ok)
		})

		s.Test("the last element is removed", func(t *testcase.T) {
			list.Get(t).Append(1, 2, 3)

			got, ok := list.Get(t).Pop()
			assert.True(t, ok)
			assert.Equal(t, 3, got)
			assert.Equal(t, []int{1, 2}, list.Get(t).ToSlice())
		})

		s.Test("popping the only element empties the list", func(t *testcase.T) {
			list.Get(t).Append(42)

			_, ok := list.Get(t).Pop()
			assert.True(t, ok)
			assert.Equal(t, 0, list.Get(t).Len())
			assert.Empty(t, list.Get(t).ToSlice())
		})
	})

	s.Describe("#Shift", func(s *testcase.Spec) {
		s.Test("empty list reports no value", func(t *testcase.T) {
			_, ok := list.Get(t).Shift()
			assert.False(t, ok)
		})

		s.Test("the first element is removed", func(t *testcase.T) {
			list.Get(t).Append(1, 2, 3)

			got, ok := list.Get(t).Shift()
			assert.True(t, ok)
			assert.Equal(t, 1, got)
			assert.Equal(t, []int{2, 3}, list.Get(t).ToSlice())
		})
	})

	s.Describe("#Iterate", func(s *testcase.Spec) {
		s.Test("an outstanding cursor observes values appended later", func(t *testcase.T) {
			ll := list.Get(t)
			ll.Append(1)

			c := ll.Iterate()
			got, err := c.Next()
			assert.NoError(t, err)
			assert.Equal(t, 1, got)
			assert.False(t, c.HasNext())

			ll.Append(2)
			assert.True(t, c.HasNext())
			got, err = c.Next()
			assert.NoError(t, err)
			assert.Equal(t, 2, got)
		})

		s.Test("a cursor that reported exhaustion stays exhausted even after the list grows", func(t *testcase.T) {
			ll := list.Get(t)

			c := ll.Iterate()
			_, err := c.Next()
			assert.ErrorIs(t, err, traverse.ErrExhausted)

			ll.Append(t.Random.Int())
			assert.False(t, c.HasNext())
			_, err = c.Next()
			assert.ErrorIs(t, err, traverse.ErrExhausted)
		})
	})

	s.Describe("#Iter", func(s *testcase.Spec) {
		s.Test("the stdlib sequence visits every element in order", func(t *testcase.T) {
			vs := random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
			list.Get(t).Append(vs...)

			var got []int
			for v := range list.Get(t).Iter() {
				got = append(got, v)
			}
			assert.Equal(t, vs, got)
		})
	})
}

func TestLinkedList_implementsTraversable(t *testing.T) {
	traversecontract.Traversable[int](func(tb testing.TB, vs []int) traverse.Traversable[int] {
		var ll datastruct.LinkedList[int]
		ll.Append(vs...)
		return &ll
	}, func(tb testing.TB) int {
		t := testcase.ToT(&tb)
		return t.Random.Int()
	}).Test(t)
}

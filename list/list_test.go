package list_test

import (
	"testing"

	"github.com/denismitr/primseq/list"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceIterable[T comparable] struct {
	items []T
}

func (s sliceIterable[T]) Items() []T {
	return s.items
}

func TestList_Add(t *testing.T) {
	t.Run("add keeps insertion order and duplicates", func(t *testing.T) {
		l := list.New[int](0)
		l.Add(3)
		l.Add(1)
		l.Add(3)

		assert.Equal(t, 3, l.Len())
		assert.Equal(t, []int{3, 1, 3}, l.Items())
	})

	t.Run("add all and add iterable append at the end", func(t *testing.T) {
		l := list.Of(1, 2)
		l.AddAll(3, 4)
		l.AddIterable(sliceIterable[int]{items: []int{5}})

		assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Items())
	})

	t.Run("items returns an independent copy", func(t *testing.T) {
		l := list.Of(1, 2, 3)

		items := l.Items()
		items[0] = 99

		first, err := l.Get(0)
		require.NoError(t, err)
		assert.Equal(t, 1, first)
	})
}

func TestList_Get(t *testing.T) {
	t.Run("get within bounds", func(t *testing.T) {
		l := list.Of[rune]('a', 'b', 'c')

		v, err := l.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 'b', v)
	})

	t.Run("get outside bounds fails", func(t *testing.T) {
		l := list.Of(1, 2)

		_, err := l.Get(2)
		assert.True(t, errors.Is(err, list.ErrIndexOutOfBounds))

		_, err = l.Get(-1)
		assert.True(t, errors.Is(err, list.ErrIndexOutOfBounds))
	})
}

func TestList_Remove(t *testing.T) {
	t.Run("remove first drops only the first occurrence", func(t *testing.T) {
		l := list.Of[rune]('a', 'b', 'a')

		assert.True(t, l.RemoveFirst('a'))
		assert.Equal(t, []rune{'b', 'a'}, l.Items())
	})

	t.Run("remove first of a missing value reports false", func(t *testing.T) {
		l := list.Of(1, 2)

		assert.False(t, l.RemoveFirst(3))
		assert.Equal(t, 2, l.Len())
	})

	t.Run("remove all drops every member of the argument", func(t *testing.T) {
		l := list.Of(1, 2, 3, 2, 4)

		removed := l.RemoveAll(sliceIterable[int]{items: []int{2, 4}})

		assert.Equal(t, 3, removed)
		assert.Equal(t, []int{1, 3}, l.Items())
	})
}

func TestList_Reverse(t *testing.T) {
	t.Run("reverse flips in place", func(t *testing.T) {
		l := list.Of(1, 2, 3)
		l.Reverse()

		assert.Equal(t, []int{3, 2, 1}, l.Items())
	})

	t.Run("reverse of empty is a no-op", func(t *testing.T) {
		l := list.New[int](0)
		l.Reverse()

		assert.Equal(t, 0, l.Len())
	})
}

func TestList_Equal(t *testing.T) {
	t.Run("order matters", func(t *testing.T) {
		a := list.Of(1, 2, 3)
		b := list.Of(1, 2, 3)
		c := list.Of(3, 2, 1)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("equal lists hash equally", func(t *testing.T) {
		a := list.Of[rune]('a', 'b')
		b := list.Of[rune]('a', 'b')

		assert.Equal(t, a.HashCode(), b.HashCode())
	})
}

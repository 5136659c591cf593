package set_test

import (
	"testing"

	"github.com/denismitr/primseq/set"
	"github.com/stretchr/testify/assert"
)

func TestOrderedSet_Insert(t *testing.T) {
	t.Run("items keep first insertion order", func(t *testing.T) {
		s := set.NewOrderedSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("bar")

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})

	t.Run("insert all keeps order and collapses duplicates", func(t *testing.T) {
		s := set.NewOrderedSet[int]()
		s.InsertAll(3, 1, 3, 2, 1)

		assert.Equal(t, []int{3, 1, 2}, s.Items())
	})
}

func TestOrderedSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewOrderedSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		assert.True(t, s.Remove("bar"))

		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
		assert.False(t, s.Has("bar"))
	})

	t.Run("remove missing item reports false", func(t *testing.T) {
		s := set.NewOrderedSet[string]()
		s.Insert("foo")

		assert.False(t, s.Remove("bar"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestOrderedSet_InsertSet(t *testing.T) {
	t.Run("sets with single elements", func(t *testing.T) {
		s1 := set.NewOrderedSet[int]()
		s1.Insert(3)

		s2 := set.NewOrderedSet[int]()
		s2.Insert(9)

		assert.True(t, s1.InsertSet(s2))
		assert.Equal(t, 2, s1.Len())
		assert.Equal(t, 1, s2.Len())
		assert.True(t, s1.Has(3))
		assert.True(t, s1.Has(9))
		assert.False(t, s1.Has(1))

		assert.Equal(t, []int{3, 9}, s1.Items())
	})
}

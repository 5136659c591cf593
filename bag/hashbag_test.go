package bag_test

import (
	"sort"
	"testing"

	"github.com/denismitr/primseq/bag"
	"github.com/stretchr/testify/assert"
)

func TestHashBag_Add(t *testing.T) {
	t.Run("occurrences accumulate", func(t *testing.T) {
		b := bag.NewHashBag[rune]()
		b.Add('a')
		b.Add('b')
		b.Add('a')

		assert.Equal(t, 3, b.Size())
		assert.Equal(t, 2, b.DistinctLen())
		assert.Equal(t, 2, b.OccurrencesOf('a'))
		assert.Equal(t, 1, b.OccurrencesOf('b'))
		assert.Equal(t, 0, b.OccurrencesOf('z'))
	})

	t.Run("add occurrences in bulk", func(t *testing.T) {
		b := bag.NewHashBag[string]()
		b.AddOccurrences("foo", 3)

		assert.Equal(t, 3, b.Size())
		assert.Equal(t, 3, b.OccurrencesOf("foo"))
	})

	t.Run("non positive occurrences are a no-op", func(t *testing.T) {
		b := bag.NewHashBag[string]()
		b.AddOccurrences("foo", 0)
		b.AddOccurrences("foo", -2)

		assert.Equal(t, 0, b.Size())
		assert.False(t, b.Has("foo"))
	})
}

func TestHashBag_Remove(t *testing.T) {
	t.Run("remove drops one occurrence", func(t *testing.T) {
		b := bag.NewHashBag[rune]()
		b.Add('a')
		b.Add('a')

		assert.True(t, b.Remove('a'))
		assert.Equal(t, 1, b.OccurrencesOf('a'))
		assert.True(t, b.Has('a'))

		assert.True(t, b.Remove('a'))
		assert.False(t, b.Has('a'))
		assert.Equal(t, 0, b.Size())
	})

	t.Run("remove missing item reports false", func(t *testing.T) {
		b := bag.NewHashBag[rune]()

		assert.False(t, b.Remove('a'))
	})
}

func TestHashBag_Items(t *testing.T) {
	t.Run("items repeat by occurrence count", func(t *testing.T) {
		b := bag.NewHashBag[rune]()
		b.Add('b')
		b.Add('a')
		b.Add('a')

		items := b.Items()
		sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
		assert.Equal(t, []rune{'a', 'a', 'b'}, items)
	})

	t.Run("for each with occurrences visits distinct items once", func(t *testing.T) {
		b := bag.NewHashBag[string]()
		b.AddOccurrences("foo", 2)
		b.Add("bar")

		visited := make(map[string]int)
		b.ForEachWithOccurrences(func(item string, occurrences int) {
			visited[item] = occurrences
		})

		assert.Equal(t, map[string]int{"foo": 2, "bar": 1}, visited)
	})
}

func TestHashBag_Equal(t *testing.T) {
	t.Run("same counts are equal", func(t *testing.T) {
		a := bag.NewHashBag[rune]()
		a.Add('x')
		a.Add('x')
		a.Add('y')

		b := bag.NewHashBag[rune]()
		b.AddOccurrences('x', 2)
		b.Add('y')

		assert.True(t, a.Equal(b))
	})

	t.Run("different counts are not equal", func(t *testing.T) {
		a := bag.NewHashBag[rune]()
		a.Add('x')

		b := bag.NewHashBag[rune]()
		b.AddOccurrences('x', 2)

		assert.False(t, a.Equal(b))
	})
}

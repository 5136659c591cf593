package bag

// HashBag - is an unordered mutable multiset keeping an occurrence
// count per distinct item. It carries no internal locking: callers
// must serialize concurrent writes externally.
type HashBag[T comparable] struct {
	counts map[T]int
	size   int
}

func NewHashBag[T comparable]() *HashBag[T] {
	return &HashBag[T]{
		counts: make(map[T]int),
	}
}

func NewHashBagWithCapacity[T comparable](capacity int) *HashBag[T] {
	return &HashBag[T]{
		counts: make(map[T]int, capacity),
	}
}

func (b *HashBag[T]) Add(item T) {
	b.counts[item]++
	b.size++
}

// AddOccurrences adds item n times. Non-positive n is a no-op.
func (b *HashBag[T]) AddOccurrences(item T, n int) {
	if n <= 0 {
		return
	}
	b.counts[item] += n
	b.size += n
}

// Remove drops one occurrence of item and reports whether it was present.
func (b *HashBag[T]) Remove(item T) bool {
	c, found := b.counts[item]
	if !found {
		return false
	}
	if c == 1 {
		delete(b.counts, item)
	} else {
		b.counts[item] = c - 1
	}
	b.size--
	return true
}

func (b *HashBag[T]) Has(item T) bool {
	_, ok := b.counts[item]
	return ok
}

func (b *HashBag[T]) OccurrencesOf(item T) int {
	return b.counts[item]
}

// Size counts items with multiplicity.
func (b *HashBag[T]) Size() int {
	return b.size
}

// DistinctLen counts distinct items.
func (b *HashBag[T]) DistinctLen() int {
	return len(b.counts)
}

func (b *HashBag[T]) Clear() {
	b.counts = nil
	b.counts = make(map[T]int)
	b.size = 0
}

// Items returns every item repeated by its occurrence count, in
// unspecified order.
func (b *HashBag[T]) Items() []T {
	items := make([]T, 0, b.size)
	for item, c := range b.counts {
		for i := 0; i < c; i++ {
			items = append(items, item)
		}
	}
	return items
}

func (b *HashBag[T]) ForEachWithOccurrences(fn func(item T, occurrences int)) {
	for item, c := range b.counts {
		fn(item, c)
	}
}

// Equal reports whether both bags hold the same items with the same
// occurrence counts.
func (b *HashBag[T]) Equal(other *HashBag[T]) bool {
	if b.size != other.size || len(b.counts) != len(other.counts) {
		return false
	}
	for item, c := range b.counts {
		if other.counts[item] != c {
			return false
		}
	}
	return true
}

package set

// HashSet - is an unordered mutable set. It carries no internal
// locking: callers must serialize concurrent writes externally.
type HashSet[T comparable] struct {
	m map[T]struct{}
}

var _ Set[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]struct{}),
	}
}

func newHashSetWithCapacity[T comparable](capacity int) *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]struct{}, capacity),
	}
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) InsertAll(items ...T) {
	for _, item := range items {
		s.m[item] = struct{}{}
	}
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Remove(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

func (s *HashSet[T]) RemoveAll(items ...T) {
	for _, item := range items {
		delete(s.m, item)
	}
}

func (s *HashSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]struct{})
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

// Items returns a fresh slice of the stored items in unspecified order.
func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

// Equal reports whether both sets hold exactly the same items.
func (s *HashSet[T]) Equal(other *HashSet[T]) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for item := range s.m {
		if _, ok := other.m[item]; !ok {
			return false
		}
	}
	return true
}

package set

// The factory functions below are the canonical construction entry
// points for a mutable set of one primitive kind. They are stateless:
// every call builds an independent set, and repeated empty-producing
// calls are observably equal via HashSet.Equal.

// Empty returns a new empty mutable set.
func Empty[T comparable]() *HashSet[T] {
	return NewHashSet[T]()
}

// Of builds a set from the given values. Duplicate values collapse to
// one stored item. With no arguments it is equivalent to Empty.
func Of[T comparable](values ...T) *HashSet[T] {
	if len(values) == 0 {
		return Empty[T]()
	}
	s := newHashSetWithCapacity[T](len(values))
	s.InsertAll(values...)
	return s
}

// With is an alias for Of.
func With[T comparable](values ...T) *HashSet[T] {
	return Of(values...)
}

// OfAll builds a set by consuming the source sequence. The source is
// copied; the returned set keeps no reference to it.
func OfAll[T comparable](src Iterable[T]) *HashSet[T] {
	items := src.Items()
	s := newHashSetWithCapacity[T](len(items))
	s.InsertAll(items...)
	return s
}

// WithAll is an alias for OfAll.
func WithAll[T comparable](src Iterable[T]) *HashSet[T] {
	return OfAll(src)
}

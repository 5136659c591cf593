package set

// Set - is a mutable collection of unique items of one element kind.
type Set[T comparable] interface {
	Insert(item T) (modified bool)
	InsertAll(items ...T)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Len() int
	Items() []T
	InsertSet(sourceSet Set[T]) (modified bool)
}

// Iterable is any finite same-kind sequence a set can be populated from.
type Iterable[T comparable] interface {
	Items() []T
}

package list

import (
	"github.com/pkg/errors"

	"github.com/denismitr/primseq/primitive"
	"github.com/denismitr/primseq/set"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

// Iterable is any finite same-kind sequence a list can consume.
type Iterable[T comparable] interface {
	Items() []T
}

// List - is a growable mutable array list of one primitive kind. It is
// the transient representation the immutable adapters thaw into for
// bulk operations. No internal locking: callers must serialize
// concurrent writes externally.
type List[T primitive.Numeric] struct {
	items []T
}

func New[T primitive.Numeric](capacity int) *List[T] {
	return &List[T]{
		items: make([]T, 0, capacity),
	}
}

func Of[T primitive.Numeric](values ...T) *List[T] {
	l := New[T](len(values))
	l.items = append(l.items, values...)
	return l
}

func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
}

func (l *List[T]) AddAll(items ...T) {
	l.items = append(l.items, items...)
}

func (l *List[T]) AddIterable(src Iterable[T]) {
	l.items = append(l.items, src.Items()...)
}

func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "index %d, size %d", index, len(l.items))
	}
	return l.items[index], nil
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// RemoveFirst drops the first occurrence of value and reports whether
// one was found.
func (l *List[T]) RemoveFirst(value T) bool {
	for i, item := range l.items {
		if item == value {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAll drops every element whose value is a member of src and
// returns the number of elements removed.
func (l *List[T]) RemoveAll(src Iterable[T]) int {
	victims := set.Of(src.Items()...)
	kept := l.items[:0]
	removed := 0
	for _, item := range l.items {
		if victims.Has(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	return removed
}

// Reverse flips the element order in place.
func (l *List[T]) Reverse() {
	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
}

// Items returns a fresh copy of the elements in list order.
func (l *List[T]) Items() []T {
	items := make([]T, len(l.items))
	copy(items, l.items)
	return items
}

// Equal reports whether other holds equal elements in the same order.
func (l *List[T]) Equal(other Iterable[T]) bool {
	return primitive.EqualItems(l.items, other.Items())
}

// HashCode folds the elements with the shared ordered-sequence hash
// contract, so an equal immutable adapter hashes identically.
func (l *List[T]) HashCode() int {
	return primitive.HashOf(l.items)
}

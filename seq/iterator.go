package seq

import "github.com/denismitr/primseq/primitive"

// Iterator - is a single-pass cursor over an adapter, yielding
// elements strictly in index order. A spent cursor cannot be rewound;
// obtain a fresh one from the adapter instead.
type Iterator[T primitive.Numeric] struct {
	items []T
	next  int
}

func (a *Adapter[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{items: a.items}
}

func (it *Iterator[T]) HasNext() bool {
	return it.next != len(it.items)
}

// Next returns the next element, or ErrIteratorExhausted when the
// cursor is already past the last one.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrIteratorExhausted
	}
	item := it.items[it.next]
	it.next++
	return item, nil
}

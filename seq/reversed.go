package seq

import (
	"github.com/pkg/errors"

	"github.com/denismitr/primseq/primitive"
)

// ReversedView - is a lazy reversed reading of an adapter. It holds no
// elements of its own: indexed access is remapped onto the underlying
// adapter, and nothing is materialized until Items is asked for. Like
// the adapter it views, it is immutable and freely shareable.
type ReversedView[T primitive.Numeric] struct {
	a *Adapter[T]
}

// AsReversed returns a lazy reversed view of the adapter. For a new
// adapter holding reversed elements use ToReversed.
func (a *Adapter[T]) AsReversed() ReversedView[T] {
	return ReversedView[T]{a: a}
}

func (v ReversedView[T]) Size() int {
	return v.a.Size()
}

func (v ReversedView[T]) IsEmpty() bool {
	return v.a.IsEmpty()
}

// Get returns the element at index counted from the far end of the
// underlying adapter.
func (v ReversedView[T]) Get(index int) (T, error) {
	if index < 0 || index >= v.a.Size() {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "index %d, size %d", index, v.a.Size())
	}
	return v.a.Get(v.a.Size() - 1 - index)
}

func (v ReversedView[T]) GetFirst() (T, error) {
	return v.a.GetLast()
}

func (v ReversedView[T]) GetLast() (T, error) {
	return v.a.GetFirst()
}

func (v ReversedView[T]) Contains(value T) bool {
	return v.a.Contains(value)
}

func (v ReversedView[T]) ForEach(fn func(item T)) {
	for i := v.a.Size() - 1; i >= 0; i-- {
		fn(v.a.items[i])
	}
}

// Items materializes the elements in reversed order.
func (v ReversedView[T]) Items() []T {
	items := make([]T, 0, v.a.Size())
	v.ForEach(func(item T) {
		items = append(items, item)
	})
	return items
}

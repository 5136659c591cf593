package seq

import (
	"github.com/pkg/errors"

	"github.com/denismitr/primseq/bag"
	"github.com/denismitr/primseq/list"
	"github.com/denismitr/primseq/primitive"
	"github.com/denismitr/primseq/set"
)

// Iterable is any finite same-kind sequence an adapter can consume.
type Iterable[T primitive.Numeric] interface {
	Items() []T
}

// Adapter - is an immutable ordered sequence of one primitive kind.
// The backing slice is owned by the adapter and never mutated in
// place: every transforming operation allocates a new adapter. An
// adapter may therefore be shared across goroutines freely.
type Adapter[T primitive.Numeric] struct {
	items []T
}

// Adapt wraps items without copying. The caller hands over ownership
// and must not mutate the slice afterwards.
func Adapt[T primitive.Numeric](items []T) *Adapter[T] {
	return &Adapter[T]{items: items}
}

// From builds an adapter over a copy of the given values.
func From[T primitive.Numeric](values ...T) *Adapter[T] {
	items := make([]T, len(values))
	copy(items, values)
	return &Adapter[T]{items: items}
}

// FromIterable builds an adapter over a defensive copy of src. The
// copy is made here: an Iterable is free to return its internal slice.
func FromIterable[T primitive.Numeric](src Iterable[T]) *Adapter[T] {
	return From(src.Items()...)
}

func (a *Adapter[T]) Size() int {
	return len(a.items)
}

func (a *Adapter[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// Items returns a fresh copy of the elements in sequence order.
func (a *Adapter[T]) Items() []T {
	items := make([]T, len(a.items))
	copy(items, a.items)
	return items
}

func (a *Adapter[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(a.items) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "index %d, size %d", index, len(a.items))
	}
	return a.items[index], nil
}

func (a *Adapter[T]) GetFirst() (T, error) {
	if len(a.items) == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "no first element")
	}
	return a.items[0], nil
}

func (a *Adapter[T]) GetLast() (T, error) {
	if len(a.items) == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "no last element")
	}
	return a.items[len(a.items)-1], nil
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (a *Adapter[T]) IndexOf(value T) int {
	for i, item := range a.items {
		if item == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func (a *Adapter[T]) LastIndexOf(value T) int {
	for i := len(a.items) - 1; i >= 0; i-- {
		if a.items[i] == value {
			return i
		}
	}
	return -1
}

func (a *Adapter[T]) Contains(value T) bool {
	return a.IndexOf(value) >= 0
}

func (a *Adapter[T]) ForEach(fn func(item T)) {
	for _, item := range a.items {
		fn(item)
	}
}

func (a *Adapter[T]) ForEachWithIndex(fn func(item T, index int)) {
	for i, item := range a.items {
		fn(item, i)
	}
}

// Distinct returns a new adapter keeping only the first occurrence of
// every value, in original order.
func (a *Adapter[T]) Distinct() *Adapter[T] {
	seenSoFar := set.NewHashSet[T]()
	items := make([]T, 0, len(a.items))
	for _, item := range a.items {
		if seenSoFar.Insert(item) {
			items = append(items, item)
		}
	}
	return Adapt(items)
}

// Select returns a new adapter holding the elements that satisfy the
// predicate, in original order.
func (a *Adapter[T]) Select(pred func(item T) bool) *Adapter[T] {
	items := make([]T, 0, len(a.items))
	for _, item := range a.items {
		if pred(item) {
			items = append(items, item)
		}
	}
	return Adapt(items)
}

// Reject returns a new adapter holding the elements that do not
// satisfy the predicate, in original order.
func (a *Adapter[T]) Reject(pred func(item T) bool) *Adapter[T] {
	return a.Select(func(item T) bool { return !pred(item) })
}

// Collect returns a new adapter with fn applied to every element,
// order preserved. Cross-kind mapping lives in CollectTo.
func (a *Adapter[T]) Collect(fn func(item T) T) *Adapter[T] {
	items := make([]T, len(a.items))
	for i, item := range a.items {
		items[i] = fn(item)
	}
	return Adapt(items)
}

// DetectIfNone returns the first element satisfying the predicate, or
// ifNone when no element does.
func (a *Adapter[T]) DetectIfNone(pred func(item T) bool, ifNone T) T {
	for _, item := range a.items {
		if pred(item) {
			return item
		}
	}
	return ifNone
}

func (a *Adapter[T]) Count(pred func(item T) bool) int {
	n := 0
	for _, item := range a.items {
		if pred(item) {
			n++
		}
	}
	return n
}

func (a *Adapter[T]) AnySatisfy(pred func(item T) bool) bool {
	for _, item := range a.items {
		if pred(item) {
			return true
		}
	}
	return false
}

func (a *Adapter[T]) AllSatisfy(pred func(item T) bool) bool {
	for _, item := range a.items {
		if !pred(item) {
			return false
		}
	}
	return true
}

func (a *Adapter[T]) NoneSatisfy(pred func(item T) bool) bool {
	return !a.AnySatisfy(pred)
}

// Max returns the largest element. Ties keep the first occurrence.
func (a *Adapter[T]) Max() (T, error) {
	if len(a.items) == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "no max")
	}
	max := a.items[0]
	for _, item := range a.items[1:] {
		if max < item {
			max = item
		}
	}
	return max, nil
}

// Min returns the smallest element. Ties keep the first occurrence.
func (a *Adapter[T]) Min() (T, error) {
	if len(a.items) == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "no min")
	}
	min := a.items[0]
	for _, item := range a.items[1:] {
		if item < min {
			min = item
		}
	}
	return min, nil
}

// NewWith returns a new adapter with value appended at the end.
func (a *Adapter[T]) NewWith(value T) *Adapter[T] {
	items := make([]T, len(a.items)+1)
	copy(items, a.items)
	items[len(a.items)] = value
	return Adapt(items)
}

// NewWithout returns a new adapter with the first occurrence of value
// removed, or the receiver itself when value is absent.
func (a *Adapter[T]) NewWithout(value T) *Adapter[T] {
	idx := a.IndexOf(value)
	if idx < 0 {
		return a
	}
	items := make([]T, 0, len(a.items)-1)
	items = append(items, a.items[:idx]...)
	items = append(items, a.items[idx+1:]...)
	return Adapt(items)
}

// NewWithAll returns a new adapter with every element of src appended,
// going through a transient mutable list.
func (a *Adapter[T]) NewWithAll(src Iterable[T]) *Adapter[T] {
	transient := list.Of(a.items...)
	transient.AddIterable(src)
	return Adapt(transient.Items())
}

// NewWithoutAll returns a new adapter with every element whose value
// is a member of src removed.
func (a *Adapter[T]) NewWithoutAll(src Iterable[T]) *Adapter[T] {
	transient := list.Of(a.items...)
	transient.RemoveAll(src)
	return Adapt(transient.Items())
}

// ToReversed returns a new adapter with the element order flipped.
func (a *Adapter[T]) ToReversed() *Adapter[T] {
	items := make([]T, len(a.items))
	for i, item := range a.items {
		items[len(a.items)-1-i] = item
	}
	return Adapt(items)
}

// SubList is not implemented on Adapter: the general slicing contract
// would have to return a new adapter, and that shape is excluded from
// this family. It always fails with ErrUnsupported.
func (a *Adapter[T]) SubList(fromIndex, toIndex int) (*Adapter[T], error) {
	return nil, errors.Wrap(ErrUnsupported, "SubList is not implemented on Adapter")
}

// BinarySearch is not implemented on Adapter: the backing sequence is
// not guaranteed sorted.
func (a *Adapter[T]) BinarySearch(value T) (int, error) {
	return 0, errors.Wrap(ErrUnsupported, "BinarySearch is not implemented on Adapter")
}

// DotProduct is not implemented on Adapter: the sequence is not a
// numeric vector.
func (a *Adapter[T]) DotProduct(other *Adapter[T]) (int64, error) {
	return 0, errors.Wrap(ErrUnsupported, "DotProduct is not implemented on Adapter")
}

func (a *Adapter[T]) ToList() *list.List[T] {
	return list.Of(a.items...)
}

func (a *Adapter[T]) ToSet() *set.HashSet[T] {
	s := set.Empty[T]()
	s.InsertAll(a.items...)
	return s
}

func (a *Adapter[T]) ToOrderedSet() *set.OrderedSet[T] {
	s := set.NewOrderedSet[T]()
	s.InsertAll(a.items...)
	return s
}

func (a *Adapter[T]) ToBag() *bag.HashBag[T] {
	b := bag.NewHashBagWithCapacity[T](len(a.items))
	for _, item := range a.items {
		b.Add(item)
	}
	return b
}

// Equal reports whether other holds equal elements in the same order.
// Any same-kind ordered representation qualifies.
func (a *Adapter[T]) Equal(other Iterable[T]) bool {
	return primitive.EqualItems(a.items, other.Items())
}

// HashCode folds the elements with the shared ordered-sequence hash
// contract, matching every equal same-kind representation.
func (a *Adapter[T]) HashCode() int {
	return primitive.HashOf(a.items)
}

package seq

import (
	"golang.org/x/exp/constraints"

	"github.com/denismitr/primseq/primitive"
)

// The functions below need a second type parameter, which Go methods
// cannot carry, so they live at package level.

// CollectTo maps every element of a into a value of another kind,
// order preserved, one output per input.
func CollectTo[T primitive.Numeric, V any](a *Adapter[T], fn func(item T) V) []V {
	out := make([]V, a.Size())
	a.ForEachWithIndex(func(item T, i int) {
		out[i] = fn(item)
	})
	return out
}

// InjectInto folds the elements left to right starting from seed.
func InjectInto[T primitive.Numeric, R any](a *Adapter[T], seed R, fn func(acc R, item T) R) R {
	acc := seed
	a.ForEach(func(item T) {
		acc = fn(acc, item)
	})
	return acc
}

// InjectIntoWithIndex folds left to right, additionally passing each
// element's index to the combinator.
func InjectIntoWithIndex[T primitive.Numeric, R any](a *Adapter[T], seed R, fn func(acc R, item T, index int) R) R {
	acc := seed
	a.ForEachWithIndex(func(item T, i int) {
		acc = fn(acc, item, i)
	})
	return acc
}

// Sum accumulates integer-kind elements in a 64-bit accumulator so
// narrow kinds cannot overflow mid-scan.
func Sum[T constraints.Integer](a *Adapter[T]) int64 {
	var sum int64
	a.ForEach(func(item T) {
		sum += int64(item)
	})
	return sum
}

// SumFloat accumulates float-kind elements in a float64 accumulator.
func SumFloat[T constraints.Float](a *Adapter[T]) float64 {
	var sum float64
	a.ForEach(func(item T) {
		sum += float64(item)
	})
	return sum
}

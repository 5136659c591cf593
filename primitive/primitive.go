package primitive

import "golang.org/x/exp/constraints"

// Numeric covers every primitive element kind an ordered sequence
// adapter can be specialized to: character (rune), byte, short, int,
// long, float and double. Booleans are excluded - they have no
// ordering and no sum.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// HashOf folds items left to right as 31*acc + int(v), seeded at 1.
// Every ordered sequence representation of one element kind must hash
// with this exact fold so that equal sequences hash equally across
// representations.
func HashOf[T Numeric](items []T) int {
	h := 1
	for _, v := range items {
		h = 31*h + int(v)
	}
	return h
}

// EqualItems reports whether a and b hold equal elements in the same order.
func EqualItems[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

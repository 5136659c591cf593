package charseq

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/denismitr/primseq/bag"
	"github.com/denismitr/primseq/list"
	"github.com/denismitr/primseq/seq"
	"github.com/denismitr/primseq/set"
)

// Iterable is any finite character sequence an adapter can consume.
type Iterable interface {
	Items() []rune
}

// CharAdapter - is an immutable view of the characters of a string as
// an ordered rune sequence. Elements are code points, decoded once at
// construction. All transforming operations return a new CharAdapter;
// the adapted string is never changed.
type CharAdapter struct {
	adapted string
	core    *seq.Adapter[rune]
}

// Adapt wraps the given string.
func Adapt(value string) CharAdapter {
	return CharAdapter{
		adapted: value,
		core:    seq.Adapt([]rune(value)),
	}
}

// From builds an adapter over the given characters.
func From(chars ...rune) CharAdapter {
	return Adapt(string(chars))
}

// FromIterable builds an adapter over a copy of the characters of src.
func FromIterable(src Iterable) CharAdapter {
	return Adapt(string(src.Items()))
}

func wrap(core *seq.Adapter[rune]) CharAdapter {
	return CharAdapter{
		adapted: string(core.Items()),
		core:    core,
	}
}

// String returns the adapted string verbatim.
func (c CharAdapter) String() string {
	return c.adapted
}

// Seq exposes the generic sequence core, e.g. for seq.InjectInto.
func (c CharAdapter) Seq() *seq.Adapter[rune] {
	return c.core
}

func (c CharAdapter) Size() int {
	return c.core.Size()
}

// Length is a CharSequence-flavored alias for Size.
func (c CharAdapter) Length() int {
	return c.core.Size()
}

func (c CharAdapter) IsEmpty() bool {
	return c.core.IsEmpty()
}

// Items returns a fresh copy of the characters in order.
func (c CharAdapter) Items() []rune {
	return c.core.Items()
}

func (c CharAdapter) Get(index int) (rune, error) {
	return c.core.Get(index)
}

// CharAt is a CharSequence-flavored alias for Get.
func (c CharAdapter) CharAt(index int) (rune, error) {
	return c.core.Get(index)
}

func (c CharAdapter) GetFirst() (rune, error) {
	return c.core.GetFirst()
}

func (c CharAdapter) GetLast() (rune, error) {
	return c.core.GetLast()
}

// SubSequence returns the characters in [start, end) as a plain
// string view. General slicing into a new adapter is deliberately not
// offered; see SubList.
func (c CharAdapter) SubSequence(start, end int) (string, error) {
	items := c.core.Items()
	if start < 0 || end > len(items) || start > end {
		return "", errors.Wrapf(seq.ErrIndexOutOfBounds, "sub sequence [%d, %d), size %d", start, end, len(items))
	}
	return string(items[start:end]), nil
}

func (c CharAdapter) IndexOf(value rune) int {
	return c.core.IndexOf(value)
}

func (c CharAdapter) LastIndexOf(value rune) int {
	return c.core.LastIndexOf(value)
}

func (c CharAdapter) Contains(value rune) bool {
	return c.core.Contains(value)
}

func (c CharAdapter) ForEach(fn func(item rune)) {
	c.core.ForEach(fn)
}

func (c CharAdapter) ForEachWithIndex(fn func(item rune, index int)) {
	c.core.ForEachWithIndex(fn)
}

func (c CharAdapter) Iterator() *seq.Iterator[rune] {
	return c.core.Iterator()
}

func (c CharAdapter) Distinct() CharAdapter {
	return wrap(c.core.Distinct())
}

func (c CharAdapter) Select(pred func(item rune) bool) CharAdapter {
	return wrap(c.core.Select(pred))
}

func (c CharAdapter) Reject(pred func(item rune) bool) CharAdapter {
	return wrap(c.core.Reject(pred))
}

func (c CharAdapter) Collect(fn func(item rune) rune) CharAdapter {
	return wrap(c.core.Collect(fn))
}

func (c CharAdapter) DetectIfNone(pred func(item rune) bool, ifNone rune) rune {
	return c.core.DetectIfNone(pred, ifNone)
}

func (c CharAdapter) Count(pred func(item rune) bool) int {
	return c.core.Count(pred)
}

func (c CharAdapter) AnySatisfy(pred func(item rune) bool) bool {
	return c.core.AnySatisfy(pred)
}

func (c CharAdapter) AllSatisfy(pred func(item rune) bool) bool {
	return c.core.AllSatisfy(pred)
}

func (c CharAdapter) NoneSatisfy(pred func(item rune) bool) bool {
	return c.core.NoneSatisfy(pred)
}

func (c CharAdapter) Max() (rune, error) {
	return c.core.Max()
}

func (c CharAdapter) Min() (rune, error) {
	return c.core.Min()
}

// Sum adds up the code point values in a 64-bit accumulator.
func (c CharAdapter) Sum() int64 {
	return seq.Sum(c.core)
}

// NewWith returns a new adapter with value appended at the end.
func (c CharAdapter) NewWith(value rune) CharAdapter {
	return Adapt(c.adapted + string(value))
}

// NewWithout returns a new adapter with the first occurrence of value
// removed, or the receiver unchanged when value is absent.
func (c CharAdapter) NewWithout(value rune) CharAdapter {
	next := c.core.NewWithout(value)
	if next == c.core {
		return c
	}
	return wrap(next)
}

func (c CharAdapter) NewWithAll(src Iterable) CharAdapter {
	return wrap(c.core.NewWithAll(src))
}

func (c CharAdapter) NewWithoutAll(src Iterable) CharAdapter {
	return wrap(c.core.NewWithoutAll(src))
}

func (c CharAdapter) ToReversed() CharAdapter {
	return wrap(c.core.ToReversed())
}

// AsReversed returns a lazy reversed view of the characters without
// materializing a new adapter.
func (c CharAdapter) AsReversed() seq.ReversedView[rune] {
	return c.core.AsReversed()
}

// SubList always fails: slicing into a new adapter is not part of
// this family's contract. Use SubSequence for a plain string view.
func (c CharAdapter) SubList(fromIndex, toIndex int) (CharAdapter, error) {
	_, err := c.core.SubList(fromIndex, toIndex)
	return CharAdapter{}, err
}

// BinarySearch always fails: the adapted string is not sorted.
func (c CharAdapter) BinarySearch(value rune) (int, error) {
	return c.core.BinarySearch(value)
}

// DotProduct always fails: a character sequence is not a numeric vector.
func (c CharAdapter) DotProduct(other CharAdapter) (int64, error) {
	return c.core.DotProduct(other.core)
}

func (c CharAdapter) ToList() *list.List[rune] {
	return c.core.ToList()
}

func (c CharAdapter) ToSet() *set.HashSet[rune] {
	return c.core.ToSet()
}

func (c CharAdapter) ToOrderedSet() *set.OrderedSet[rune] {
	return c.core.ToOrderedSet()
}

func (c CharAdapter) ToBag() *bag.HashBag[rune] {
	return c.core.ToBag()
}

// ToBuilder returns a strings.Builder preloaded with the characters.
func (c CharAdapter) ToBuilder() *strings.Builder {
	var b strings.Builder
	b.WriteString(c.adapted)
	return &b
}

// Equal reports whether other holds the same characters in the same
// order. Any character sequence representation qualifies.
func (c CharAdapter) Equal(other Iterable) bool {
	return c.core.Equal(other)
}

// HashCode matches the shared ordered-sequence hash contract of every
// equal character sequence representation.
func (c CharAdapter) HashCode() int {
	return c.core.HashCode()
}

// MakeString renders the characters between start and end, separated
// by sep, as characters rather than code point numbers.
func (c CharAdapter) MakeString(start, sep, end string) string {
	var b strings.Builder
	// strings.Builder never fails to write
	_ = c.AppendString(&b, start, sep, end)
	return b.String()
}

// AppendString renders the characters into w. A sink write failure is
// returned wrapped, with the underlying cause preserved.
func (c CharAdapter) AppendString(w io.Writer, start, sep, end string) error {
	if _, err := io.WriteString(w, start); err != nil {
		return errors.Wrap(err, "append string: write start")
	}
	for i, r := range []rune(c.adapted) {
		if i > 0 {
			if _, err := io.WriteString(w, sep); err != nil {
				return errors.Wrap(err, "append string: write separator")
			}
		}
		if _, err := io.WriteString(w, string(r)); err != nil {
			return errors.Wrap(err, "append string: write element")
		}
	}
	if _, err := io.WriteString(w, end); err != nil {
		return errors.Wrap(err, "append string: write end")
	}
	return nil
}

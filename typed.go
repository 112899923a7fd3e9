// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sliceview

import (
	"io"
	"unsafe"

	"golang.org/x/exp/constraints"

	"buf.build/go/sliceview/internal/debug"
	"buf.build/go/sliceview/internal/layout"
	"buf.build/go/sliceview/internal/xunsafe"
)

// Slice is a view specialized to element type T: the element size is erased
// into the type instead of being stored in the descriptor.
//
// Every operation converts to the untyped [View] form, delegates, and casts
// the result back. Slice is a zero-cost, type-safe facade over View, never
// an independent reimplementation, so the two layers cannot drift in
// behavior.
//
// The zero Slice violates the address invariant, like the zero [View];
// construct typed views with [Make], [Of], [EmptyOf] or [RangeOf].
type Slice[T any] struct {
	ptr *T
	len int
}

// ComparatorOf is a [Comparator] specialized to *T operands.
type ComparatorOf[T any] func(a, b *T) int

// untyped lifts a typed comparator to the untyped boundary. A nil comparator
// stays nil so the delegate's own precondition reports it.
func (cmp ComparatorOf[T]) untyped() Comparator {
	if cmp == nil {
		return nil
	}
	return func(a, b unsafe.Pointer) int {
		return cmp((*T)(a), (*T)(b))
	}
}

// Ordering returns the natural three-way comparator for an ordered element
// type, for use with [Slice.Equal], [Slice.Sort] and [Slice.Search].
func Ordering[T constraints.Ordered]() ComparatorOf[T] {
	return func(a, b *T) int {
		switch {
		case *a < *b:
			return -1
		case *a > *b:
			return 1
		default:
			return 0
		}
	}
}

// Cast gives an element type to an untyped view.
//
// The caller vouches that v's element size is exactly the size of T; this is
// asserted only in debug builds.
func Cast[T any](v View) Slice[T] {
	debug.Assert(v.ItemSize() == layout.Size[T](),
		"cast of %d-byte elements to a %d-byte element type", v.ItemSize(), layout.Size[T]())

	return Slice[T]{xunsafe.Cast[T]((*byte)(v.Ptr())), v.Len()}
}

// View returns the untyped form of s, recovering the element size from the
// type. The conversion is a relabeling, not a data transformation.
func (s Slice[T]) View() View {
	return New(unsafe.Pointer(s.ptr), layout.Size[T](), s.len)
}

// Make assembles a typed view from a pointer to element 0 and a length.
//
// Panics with [ErrInvalidArgument] if ptr is nil or n is negative.
func Make[T any](ptr *T, n int) Slice[T] {
	return Cast[T](New(unsafe.Pointer(ptr), layout.Size[T](), n))
}

// Of constructs a typed view over the elements of s, aliasing its backing
// array. A nil or empty slice yields an empty view.
func Of[T any](s []T) Slice[T] {
	return Cast[T](FromSlice(s))
}

// EmptyOf returns an empty typed view anchored at the sentinel address.
func EmptyOf[T any]() Slice[T] {
	return Cast[T](Empty(layout.Size[T]()))
}

// RangeOf constructs the typed view spanning [start, end).
//
// Panics with [ErrInvalidArgument] if either pointer is nil or the range is
// reversed.
func RangeOf[T any](start, end *T) Slice[T] {
	return Cast[T](FromRange(unsafe.Pointer(start), unsafe.Pointer(end), layout.Size[T]()))
}

// Ptr returns the address of element 0.
func (s Slice[T]) Ptr() *T { return s.ptr }

// Len returns the number of elements.
func (s Slice[T]) Len() int { return s.len }

// Size returns the total size of the viewed region in bytes.
func (s Slice[T]) Size() int { return s.View().Size() }

// IsEmpty reports whether the view has no elements.
func (s Slice[T]) IsEmpty() bool { return s.View().IsEmpty() }

// WithLen returns a copy of s with a new length.
//
// Panics with [ErrInvalidArgument] if n is negative.
func (s Slice[T]) WithLen(n int) Slice[T] {
	return Cast[T](s.View().WithLen(n))
}

// Get computes the address of the i-th element. Like [View.Get], the index
// is signed and unchecked.
func (s Slice[T]) Get(i int) *T {
	return (*T)(s.View().Get(i))
}

// First computes the address of the first element.
func (s Slice[T]) First() *T {
	return (*T)(s.View().First())
}

// Last computes the address of the last element. Meaningless for an empty
// view; callers check [Slice.Len] first.
func (s Slice[T]) Last() *T {
	return (*T)(s.View().Last())
}

// Load loads the value at the given index.
func (s Slice[T]) Load(i int) T {
	return *s.Get(i)
}

// Store stores a value at the given index.
func (s Slice[T]) Store(i int, v T) {
	*s.Get(i) = v
}

// Sub returns the sub-view spanning elements [start, end), with the bounds
// discipline of [View.Sub].
func (s Slice[T]) Sub(start, end int) Slice[T] {
	return Cast[T](s.View().Sub(start, end))
}

// Advance shifts the start of the view by n elements, keeping the original
// end. n may be negative.
func (s Slice[T]) Advance(n int) Slice[T] {
	return Cast[T](s.View().Advance(n))
}

// BytesEqual reports whether s and other are byte-for-byte identical.
func (s Slice[T]) BytesEqual(other Slice[T]) bool {
	return s.View().BytesEqual(other.View())
}

// Equal compares s and other element-wise with cmp.
//
// Panics with [ErrInvalidArgument] if cmp is nil.
func (s Slice[T]) Equal(other Slice[T], cmp ComparatorOf[T]) bool {
	return s.View().Equal(other.View(), cmp.untyped())
}

// StartsWithBytes reports whether prefix is a byte-level prefix of s.
func (s Slice[T]) StartsWithBytes(prefix Slice[T]) bool {
	return s.View().StartsWithBytes(prefix.View())
}

// StartsWith reports whether prefix is a prefix of s under cmp.
//
// Panics with [ErrInvalidArgument] if cmp is nil.
func (s Slice[T]) StartsWith(prefix Slice[T], cmp ComparatorOf[T]) bool {
	return s.View().StartsWith(prefix.View(), cmp.untyped())
}

// EndsWithBytes reports whether postfix is a byte-level suffix of s.
func (s Slice[T]) EndsWithBytes(postfix Slice[T]) bool {
	return s.View().EndsWithBytes(postfix.View())
}

// EndsWith reports whether postfix is a suffix of s under cmp.
//
// Panics with [ErrInvalidArgument] if cmp is nil.
func (s Slice[T]) EndsWith(postfix Slice[T], cmp ComparatorOf[T]) bool {
	return s.View().EndsWith(postfix.View(), cmp.untyped())
}

// CopyFrom copies src's elements to the beginning of s's region, with the
// overlap and capacity contract of [View.CopyFrom].
func (s Slice[T]) CopyFrom(src Slice[T]) {
	s.View().CopyFrom(src.View())
}

// CopyFromDisjoint is like [Slice.CopyFrom], except that the two regions
// shall not overlap (unchecked).
func (s Slice[T]) CopyFromDisjoint(src Slice[T]) {
	s.View().CopyFromDisjoint(src.View())
}

// Swap exchanges the elements at indices i and j. The scratch storage is a
// stack temporary; no caller-supplied buffer is needed at this layer.
func (s Slice[T]) Swap(i, j int) {
	var tmp T
	s.View().Swap(i, j, scratchOf(&tmp))
}

// SwapWith exchanges the contents of s and other element by element. The two
// views shall be disjoint (unchecked).
//
// Panics with [ErrInvalidArgument] if the lengths differ.
func (s Slice[T]) SwapWith(other Slice[T]) {
	var tmp T
	s.View().SwapWith(other.View(), scratchOf(&tmp))
}

// Reverse reverses the order of elements in place.
func (s Slice[T]) Reverse() {
	var tmp T
	s.View().Reverse(scratchOf(&tmp))
}

// SplitAt splits s at index i: left covers [0, i), right covers [i, Len).
// Both halves alias the original memory.
//
// Panics with [ErrInvalidArgument] if i is negative or exceeds the length.
func (s Slice[T]) SplitAt(i int) (left, right Slice[T]) {
	l, r := s.View().SplitAt(i)
	return Cast[T](l), Cast[T](r)
}

// Find scans the view in index order and returns the address of the first
// element for which pred holds, or nil if none does.
//
// Panics with [ErrInvalidArgument] if pred is nil.
func (s Slice[T]) Find(pred func(item *T) bool) *T {
	checkArg(pred != nil, "nil predicate")

	return (*T)(s.View().Find(func(item unsafe.Pointer) bool {
		return pred((*T)(item))
	}))
}

// ForEach applies f to the address of every element in index order.
//
// Panics with [ErrInvalidArgument] if f is nil.
func (s Slice[T]) ForEach(f func(item *T)) {
	checkArg(f != nil, "nil visitor")

	s.View().ForEach(func(item unsafe.Pointer) {
		f((*T)(item))
	})
}

// Sort sorts the view in place under cmp, delegating to the untyped
// [View.Sort].
//
// Panics with [ErrInvalidArgument] if cmp is nil.
func (s Slice[T]) Sort(cmp ComparatorOf[T]) {
	var tmp T
	s.View().Sort(cmp.untyped(), scratchOf(&tmp))
}

// Search binary-searches a view sorted under cmp for an element comparing
// equal to *key, returning its address or nil.
//
// Panics with [ErrInvalidArgument] if cmp is nil.
func (s Slice[T]) Search(key *T, cmp ComparatorOf[T]) *T {
	return (*T)(s.View().Search(unsafe.Pointer(key), cmp.untyped()))
}

// Raw returns the viewed region as an ordinary Go slice aliasing the same
// memory. An empty view yields nil.
func (s Slice[T]) Raw() []T {
	if s.len == 0 {
		return nil
	}
	return unsafe.Slice(s.ptr, s.len)
}

// Bytes returns the viewed region as a byte slice aliasing the same memory.
func (s Slice[T]) Bytes() []byte {
	return s.View().Bytes()
}

// WriteTo writes the viewed bytes to w, implementing [io.WriterTo].
func (s Slice[T]) WriteTo(w io.Writer) (int64, error) {
	return s.View().WriteTo(w)
}

// scratchOf exposes a one-element temporary as a byte scratch buffer for the
// untyped mutation primitives.
func scratchOf[T any](p *T) []byte {
	return unsafe.Slice(xunsafe.Cast[byte](p), layout.Size[T]())
}

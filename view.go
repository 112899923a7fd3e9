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
	"fmt"
	"unsafe"

	"buf.build/go/sliceview/internal/layout"
	"buf.build/go/sliceview/internal/xunsafe"
)

// View is a borrowed descriptor of a contiguous memory region: an address,
// the size in bytes of one element, and the number of elements.
//
// A View never allocates or frees; the referenced memory must outlive it.
// Operations return fresh View values rather than mutating the descriptor in
// place. The zero View violates the address invariant; construct views with
// [New], [FromRange], [Empty] or [FromSlice].
//
// Invariants: the address is never nil (an empty view is anchored at a valid
// sentinel), the element size is strictly positive, and the length is
// non-negative. Zero length is a first-class state, not an error.
type View struct {
	ptr      *byte
	itemSize int
	len      int
}

// emptySentinel anchors empty views so that their address is never nil.
var emptySentinel byte

// New constructs a view from its raw parts.
//
// Panics with [ErrInvalidArgument] if ptr is nil, itemSize is not positive,
// or n is negative.
func New(ptr unsafe.Pointer, itemSize, n int) View {
	checkArg(ptr != nil, "nil view address")
	checkArg(itemSize > 0, "element size must be positive, got %d", itemSize)
	checkArg(n >= 0, "negative length %d", n)

	return View{(*byte)(ptr), itemSize, n}
}

// FromRange constructs the view spanning [start, end).
//
// The length is computed from the byte distance between the two addresses.
// Panics with [ErrInvalidArgument] if either address is nil, the range is
// reversed, or its byte length is not a whole number of elements.
func FromRange(start, end unsafe.Pointer, itemSize int) View {
	checkArg(start != nil, "nil range start")
	checkArg(end != nil, "nil range end")
	checkArg(itemSize > 0, "element size must be positive, got %d", itemSize)

	diff := xunsafe.ByteSub((*byte)(end), (*byte)(start))
	checkArg(diff >= 0, "reversed range of %d bytes", diff)
	checkArg(diff%itemSize == 0,
		"range of %d bytes is not a whole number of %d-byte elements", diff, itemSize)

	return New(start, itemSize, diff/itemSize)
}

// Empty returns a zero-length view with the given element size, anchored at
// a valid non-nil sentinel address that must never be dereferenced.
func Empty(itemSize int) View {
	return New(unsafe.Pointer(&emptySentinel), itemSize, 0)
}

// FromSlice constructs a view over the elements of s. The view aliases s's
// backing array; it does not copy.
//
// A nil or empty slice yields an empty view. Panics with
// [ErrInvalidArgument] if T is zero-sized.
func FromSlice[T any](s []T) View {
	if len(s) == 0 {
		return Empty(layout.Size[T]())
	}
	return New(unsafe.Pointer(unsafe.SliceData(s)), layout.Size[T](), len(s))
}

// Ptr returns the address of element 0.
func (v View) Ptr() unsafe.Pointer { return unsafe.Pointer(v.ptr) }

// ItemSize returns the size in bytes of one element.
func (v View) ItemSize() int { return v.itemSize }

// Len returns the number of elements.
func (v View) Len() int { return v.len }

// Size returns the total size of the viewed region in bytes.
func (v View) Size() int { return v.itemSize * v.len }

// IsEmpty reports whether the view has no elements.
func (v View) IsEmpty() bool { return v.len == 0 }

// WithPtr returns a copy of v with a new address.
//
// Panics with [ErrInvalidArgument] if ptr is nil.
func (v View) WithPtr(ptr unsafe.Pointer) View {
	return New(ptr, v.itemSize, v.len)
}

// WithItemSize returns a copy of v with a new element size.
//
// Panics with [ErrInvalidArgument] if itemSize is not positive.
func (v View) WithItemSize(itemSize int) View {
	return New(v.Ptr(), itemSize, v.len)
}

// WithLen returns a copy of v with a new length.
//
// Panics with [ErrInvalidArgument] if n is negative.
func (v View) WithLen(n int) View {
	return New(v.Ptr(), v.itemSize, n)
}

// Get computes the address of the i-th element.
//
// The index is signed: negative indices produce addresses before the view's
// start. No bounds are checked; whether the resulting address may be
// dereferenced is the caller's responsibility.
func (v View) Get(i int) unsafe.Pointer {
	return unsafe.Pointer(xunsafe.ByteAdd[byte](v.ptr, i*v.itemSize))
}

// First computes the address of the first element.
func (v View) First() unsafe.Pointer { return v.Get(0) }

// Last computes the address of the last element.
//
// The result is one element before the start for an empty view; callers
// check [View.Len] first.
func (v View) Last() unsafe.Pointer { return v.Get(v.len - 1) }

// Sub returns the sub-view spanning elements [start, end).
//
// Only start <= end is checked. Like [View.Get], the indices may be negative
// or exceed the view's length; the result then addresses memory outside the
// nominal region, and keeping that inside a valid allocation is the caller's
// contract.
//
// Panics with [ErrInvalidArgument] if start > end.
func (v View) Sub(start, end int) View {
	checkArg(start <= end, "reversed sub-view bounds [%d:%d]", start, end)
	return FromRange(v.Get(start), v.Get(end), v.itemSize)
}

// Advance shifts the start of the view by n elements, keeping the original
// end. n may be negative.
func (v View) Advance(n int) View {
	return v.Sub(n, v.len)
}

// Format implements [fmt.Formatter].
func (v View) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, "%#x[%dx%d]", uintptr(v.Ptr()), v.len, v.itemSize)
}

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

import "unsafe"

// CopyFrom copies all of src's bytes to the beginning of v's region.
//
// The two regions may overlap; the copy direction is resolved dynamically,
// like memmove. v's length is not checked against src's: that v has room for
// src is the caller's contract. This is a low-level primitive, not a
// safe-copy operation.
func (v View) CopyFrom(src View) {
	mem.Move(v.Ptr(), src.Ptr(), src.Size())
}

// CopyFromDisjoint is like [View.CopyFrom], except that the two regions
// shall not overlap. The disjointness precondition is documented, not
// checked; the implementation may use an overlap-unsafe copy.
func (v View) CopyFromDisjoint(src View) {
	mem.Copy(v.Ptr(), src.Ptr(), src.Size())
}

// Swap exchanges the elements at indices i and j through scratch.
//
// scratch shall not overlap either element, and the two elements shall not
// overlap each other; neither is checked. Panics with [ErrInvalidArgument]
// if scratch is smaller than one element.
func (v View) Swap(i, j int, scratch []byte) {
	p := v.scratchPtr(scratch)
	mem.Copy(p, v.Get(i), v.itemSize)
	mem.Copy(v.Get(i), v.Get(j), v.itemSize)
	mem.Copy(v.Get(j), p, v.itemSize)
}

// SwapWith exchanges the contents of v and other element by element through
// scratch.
//
// The two views and scratch shall be pairwise disjoint (unchecked). Panics
// with [ErrInvalidArgument] if the lengths or element sizes differ, or
// scratch is smaller than one element.
func (v View) SwapWith(other View, scratch []byte) {
	checkArg(v.len == other.len, "mismatched lengths %d and %d", v.len, other.len)
	checkArg(v.itemSize == other.itemSize,
		"mismatched element sizes %d and %d", v.itemSize, other.itemSize)

	p := v.scratchPtr(scratch)
	for i := 0; i < v.len; i++ {
		mem.Copy(p, v.Get(i), v.itemSize)
		mem.Copy(v.Get(i), other.Get(i), v.itemSize)
		mem.Copy(other.Get(i), p, v.itemSize)
	}
}

// Reverse reverses the order of elements in place. Empty and single-element
// views are no-ops.
//
// scratch shall not overlap the viewed region (unchecked). Panics with
// [ErrInvalidArgument] if the view is non-degenerate and scratch is smaller
// than one element.
func (v View) Reverse(scratch []byte) {
	for i := 0; i < v.len/2; i++ {
		v.Swap(i, v.len-i-1, scratch)
	}
}

// SplitAt splits v at index i: left covers [0, i), right covers [i, Len).
// Both halves alias the original memory; nothing is copied.
//
// Panics with [ErrInvalidArgument] if i is negative or exceeds the length.
func (v View) SplitAt(i int) (left, right View) {
	checkArg(i >= 0 && i <= v.len, "split index %d out of range [0, %d]", i, v.len)
	return v.Sub(0, i), v.Sub(i, v.len)
}

// scratchPtr validates scratch against the element size and returns its
// address.
func (v View) scratchPtr(scratch []byte) unsafe.Pointer {
	checkArg(len(scratch) >= v.itemSize,
		"scratch of %d bytes is smaller than one %d-byte element", len(scratch), v.itemSize)
	return unsafe.Pointer(unsafe.SliceData(scratch))
}

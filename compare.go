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
	"unsafe"

	"buf.build/go/sliceview/internal/xunsafe"
)

// Comparator is a caller-supplied three-way element comparison: it returns
// zero when the two elements compare equal, a negative value when the first
// orders before the second, and a positive value otherwise.
//
// The equality predicates only distinguish zero from nonzero, so an
// equality-only oracle is sufficient for them; [View.Sort] and [View.Search]
// need the full ordering.
type Comparator func(a, b unsafe.Pointer) int

// BytesEqual reports whether v and other are byte-for-byte identical,
// ignoring element-level interpretation. Views of different total byte size
// are never equal.
func (v View) BytesEqual(other View) bool {
	if v.Size() != other.Size() {
		return false
	}
	return mem.Compare(v.Ptr(), other.Ptr(), v.Size()) == 0
}

// Equal compares v and other element-wise with cmp, short-circuiting on the
// first mismatch. Views of different lengths are never equal.
//
// Panics with [ErrInvalidArgument] if the element sizes differ or cmp is
// nil.
func (v View) Equal(other View, cmp Comparator) bool {
	checkArg(v.itemSize == other.itemSize,
		"mismatched element sizes %d and %d", v.itemSize, other.itemSize)
	checkArg(cmp != nil, "nil comparator")

	if v.len != other.len {
		return false
	}
	for i := 0; i < v.len; i++ {
		if cmp(v.Get(i), other.Get(i)) != 0 {
			return false
		}
	}
	return true
}

// StartsWithBytes reports whether prefix is a byte-level prefix of v,
// ignoring element-level interpretation. An empty prefix matches any view.
func (v View) StartsWithBytes(prefix View) bool {
	n := prefix.Size()
	if v.Size() < n {
		return false
	}
	return mem.Compare(v.Ptr(), prefix.Ptr(), n) == 0
}

// StartsWith reports whether prefix is a prefix of v under element-wise
// equality with cmp. An empty prefix matches any view.
//
// Panics with [ErrInvalidArgument] if the element sizes differ or cmp is
// nil.
func (v View) StartsWith(prefix View, cmp Comparator) bool {
	checkArg(v.itemSize == prefix.itemSize,
		"mismatched element sizes %d and %d", v.itemSize, prefix.itemSize)
	checkArg(cmp != nil, "nil comparator")

	if v.len < prefix.len {
		return false
	}
	return v.Sub(0, prefix.len).Equal(prefix, cmp)
}

// EndsWithBytes reports whether postfix is a byte-level suffix of v,
// ignoring element-level interpretation. An empty postfix matches any view.
func (v View) EndsWithBytes(postfix View) bool {
	n := postfix.Size()
	if v.Size() < n {
		return false
	}
	tail := unsafe.Pointer(xunsafe.ByteAdd[byte](v.ptr, v.Size()-n))
	return mem.Compare(tail, postfix.Ptr(), n) == 0
}

// EndsWith reports whether postfix is a suffix of v under element-wise
// equality with cmp. An empty postfix matches any view.
//
// Panics with [ErrInvalidArgument] if the element sizes differ or cmp is
// nil.
func (v View) EndsWith(postfix View, cmp Comparator) bool {
	checkArg(v.itemSize == postfix.itemSize,
		"mismatched element sizes %d and %d", v.itemSize, postfix.itemSize)
	checkArg(cmp != nil, "nil comparator")

	if v.len < postfix.len {
		return false
	}
	return v.Sub(v.len-postfix.len, v.len).Equal(postfix, cmp)
}

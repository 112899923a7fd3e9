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
	"bytes"
	"unsafe"

	"buf.build/go/sliceview/internal/debug"
	"buf.build/go/sliceview/internal/xunsafe"
)

// Memory is the set of byte-level primitives the package routes every
// comparison and copy through.
//
// The defaults have the standard memcmp/memmove/memcpy/strlen semantics.
// They can be replaced as a unit with [SetMemory], e.g. to substitute
// instrumented or freestanding implementations. Swapping hooks while views
// are in use on other goroutines is the caller's problem.
type Memory struct {
	// Compare three-way compares the first n bytes at a and b.
	Compare func(a, b unsafe.Pointer, n int) int

	// Move copies n bytes from src to dst. The regions may overlap.
	Move func(dst, src unsafe.Pointer, n int)

	// Copy copies n bytes from src to dst. The regions shall not overlap.
	Copy func(dst, src unsafe.Pointer, n int)

	// StrLen counts the bytes at p before the first zero byte.
	StrLen func(p *byte) int
}

// DefaultMemory returns the standard hook set.
func DefaultMemory() Memory {
	return Memory{
		Compare: func(a, b unsafe.Pointer, n int) int {
			return bytes.Compare(bytesAt(a, n), bytesAt(b, n))
		},
		Move: func(dst, src unsafe.Pointer, n int) {
			// The builtin copy resolves direction dynamically, like memmove.
			copy(bytesAt(dst, n), bytesAt(src, n))
		},
		Copy: func(dst, src unsafe.Pointer, n int) {
			copy(bytesAt(dst, n), bytesAt(src, n))
		},
		StrLen: func(p *byte) int {
			return xunsafe.StrLen(p)
		},
	}
}

// mem is the active hook set.
var mem = DefaultMemory()

// SetMemory replaces the active memory hooks. Nil fields fall back to the
// defaults.
func SetMemory(m Memory) {
	d := DefaultMemory()
	if m.Compare == nil {
		m.Compare = d.Compare
	}
	if m.Move == nil {
		m.Move = d.Move
	}
	if m.Copy == nil {
		m.Copy = d.Copy
	}
	if m.StrLen == nil {
		m.StrLen = d.StrLen
	}

	debug.Log(nil, "set memory hooks", "%p/%p/%p/%p", m.Compare, m.Move, m.Copy, m.StrLen)
	mem = m
}

// bytesAt materializes n bytes at p as a slice.
func bytesAt(p unsafe.Pointer, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

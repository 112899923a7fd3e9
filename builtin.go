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
)

// Ready-made view instantiations for the builtin scalar types. Go's
// fixed-width types exist on every supported platform, so the whole family
// is unconditional; Int, Uint and Uintptr cover the platform-native widths.
type (
	I8      = Slice[int8]
	U8      = Slice[uint8]
	I16     = Slice[int16]
	U16     = Slice[uint16]
	I32     = Slice[int32]
	U32     = Slice[uint32]
	I64     = Slice[int64]
	U64     = Slice[uint64]
	Int     = Slice[int]
	Uint    = Slice[uint]
	Uintptr = Slice[uintptr]
	F32     = Slice[float32]
	F64     = Slice[float64]
	Bool    = Slice[bool]
	Char    = Slice[byte]
	Rune    = Slice[rune]
)

// FromCString constructs a char view over the bytes of a null-terminated
// string, excluding the terminator. The length is measured with the active
// StrLen hook.
//
// Panics with [ErrInvalidArgument] if p is nil.
func FromCString(p *byte) Char {
	checkArg(p != nil, "nil C string")
	return Make(p, mem.StrLen(p))
}

// FromString constructs a char view over the bytes of a Go string.
//
// The viewed memory is the string's backing array. Strings are immutable:
// the result must only be read, and applying any mutation primitive to it is
// undefined behavior.
func FromString(s string) Char {
	if len(s) == 0 {
		return EmptyOf[byte]()
	}
	return Make(unsafe.StringData(s), len(s))
}

// CString copies s into out, appends a null terminator, and returns out.
//
// out shall not overlap s (unchecked). Panics with [ErrInvalidArgument] if
// out cannot hold s plus the terminator.
func CString(s Char, out []byte) []byte {
	n := s.Len()
	checkArg(len(out) > n,
		"buffer of %d bytes cannot hold %d bytes plus a null terminator", len(out), n)

	Of(out).CopyFromDisjoint(s)
	out[n] = 0
	return out
}

// Sprintf formats into buf's memory and returns the written portion as a
// sub-view of buf.
//
// Panics with [ErrInvalidArgument] if the formatted text does not fit; buf
// is left untouched in that case.
func Sprintf(buf Char, format string, args ...any) Char {
	text := fmt.Appendf(buf.Raw()[:0], format, args...)
	checkArg(len(text) <= buf.Len(),
		"formatted %d bytes into a %d-byte view", len(text), buf.Len())

	return buf.Sub(0, len(text))
}

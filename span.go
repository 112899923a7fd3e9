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
	"math"

	"buf.build/go/sliceview/internal/xunsafe"
)

// Span records a sub-view's position relative to some base view as an
// element offset and length, rather than as an address.
//
// This is a packed representation of a value with the layout
//
//	struct {
//	  offset, len uint32
//	}
//
// The zero value faithfully represents an empty span at offset 0.
//
// Spans are the opt-in checked counterpart to the raw, unchecked [View.Sub]:
// record where a sub-view lives with [SpanOf], carry the span around instead
// of a pointer, and materialize it later with [Span.Resolve], which
// validates bounds against the base at that point.
type Span uint64

// NewSpan creates a span from an element offset and length.
//
// Panics with [ErrInvalidArgument] if either is negative or does not fit in
// 32 bits.
func NewSpan(offset, n int) Span {
	checkArg(offset >= 0 && offset <= math.MaxUint32, "span offset %d out of range", offset)
	checkArg(n >= 0 && n <= math.MaxUint32, "span length %d out of range", n)

	return Span(offset) | Span(n)<<32
}

// SpanOf records sub's position within base. sub must alias base's memory.
//
// Panics with [ErrInvalidArgument] if the element sizes differ, sub does not
// lie on an element boundary of base, or sub starts before base.
func SpanOf(base, sub View) Span {
	checkArg(base.itemSize == sub.itemSize,
		"mismatched element sizes %d and %d", base.itemSize, sub.itemSize)

	diff := xunsafe.ByteSub(sub.ptr, base.ptr)
	checkArg(diff >= 0, "sub-view starts %d bytes before its base", -diff)
	checkArg(diff%base.itemSize == 0, "sub-view is not element-aligned within its base")

	return NewSpan(diff/base.itemSize, sub.len)
}

// Start returns the element offset of the span within its base.
func (s Span) Start() int { return int(uint32(s)) }

// End returns the one-past-the-end element offset.
func (s Span) End() int { return s.Start() + s.Len() }

// Len returns the element count.
func (s Span) Len() int { return int(s >> 32) }

// Resolve materializes the span against base with bounds checked: the
// result is absent unless the span lies entirely within [0, base.Len()].
func (s Span) Resolve(base View) Maybe {
	if s.End() > base.Len() {
		return Nothing()
	}
	return Just(base.Sub(s.Start(), s.End()))
}

// Format implements [fmt.Formatter].
func (s Span) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, "[%d:%d]", s.Start(), s.End())
}

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

package sliceview_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/sliceview"
)

func TestMaybe(t *testing.T) {
	t.Parallel()

	v := sliceview.FromSlice([]byte{1, 2, 3})

	just := sliceview.Just(v)
	assert.True(t, just.Present())
	got, ok := just.Get()
	assert.True(t, ok)
	assert.Equal(t, v.Ptr(), got.Ptr())

	nothing := sliceview.Nothing()
	assert.False(t, nothing.Present())

	// Absence still carries a valid (empty) view, never a nil address.
	inner, ok := nothing.Get()
	assert.False(t, ok)
	assert.NotNil(t, inner.Ptr())
	assert.True(t, inner.IsEmpty())

	// An empty-but-present view is distinct from absence.
	assert.True(t, sliceview.Just(sliceview.Empty(1)).Present())
}

func TestSpan(t *testing.T) {
	t.Parallel()

	sp := sliceview.NewSpan(2, 3)
	assert.Equal(t, 2, sp.Start())
	assert.Equal(t, 3, sp.Len())
	assert.Equal(t, 5, sp.End())
	assert.Equal(t, "[2:5]", fmt.Sprintf("%v", sp))

	// The zero value is an empty span at offset 0.
	var zero sliceview.Span
	assert.Zero(t, zero.Start())
	assert.Zero(t, zero.Len())

	requireInvalidArg(t, func() { sliceview.NewSpan(-1, 3) })
	requireInvalidArg(t, func() { sliceview.NewSpan(0, -3) })
	requireInvalidArg(t, func() { sliceview.NewSpan(1<<32, 0) })
}

func TestSpanOf(t *testing.T) {
	t.Parallel()

	data := []int32{1, 2, 3, 4, 5}
	base := sliceview.FromSlice(data)
	sub := base.Sub(1, 4)

	sp := sliceview.SpanOf(base, sub)
	assert.Equal(t, 1, sp.Start())
	assert.Equal(t, 3, sp.Len())

	requireInvalidArg(t, func() { sliceview.SpanOf(base, sub.WithItemSize(2)) })
	requireInvalidArg(t, func() { sliceview.SpanOf(base.Sub(1, 4), base) })
}

func TestSpanResolve(t *testing.T) {
	t.Parallel()

	data := []int32{1, 2, 3, 4, 5}
	base := sliceview.FromSlice(data)

	m := sliceview.SpanOf(base, base.Sub(1, 4)).Resolve(base)
	require.True(t, m.Present())
	got, _ := m.Get()
	assert.Equal(t, base.Get(1), got.Ptr())
	assert.Equal(t, []int32{2, 3, 4}, sliceview.Cast[int32](got).Raw())

	// Resolution is where bounds are enforced: a span past the base's end
	// is absent, not a panic and not a wild pointer.
	assert.False(t, sliceview.NewSpan(3, 5).Resolve(base).Present())
	assert.False(t, sliceview.NewSpan(6, 0).Resolve(base).Present())

	// A whole-view span and the zero span are both fine.
	assert.True(t, sliceview.NewSpan(0, 5).Resolve(base).Present())
	empty, ok := sliceview.Span(0).Resolve(base).Get()
	assert.True(t, ok)
	assert.True(t, empty.IsEmpty())
}

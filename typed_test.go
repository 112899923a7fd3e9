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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/sliceview"
)

func TestTypedConstructors(t *testing.T) {
	t.Parallel()

	data := []int64{1, 2, 3}
	s := sliceview.Of(data)
	assert.Equal(t, &data[0], s.Ptr())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 24, s.Size())

	m := sliceview.Make(&data[1], 2)
	assert.Equal(t, &data[1], m.Ptr())
	assert.Equal(t, 2, m.Len())

	r := sliceview.RangeOf(&data[0], &data[2])
	assert.Equal(t, 2, r.Len())

	e := sliceview.EmptyOf[int64]()
	assert.True(t, e.IsEmpty())
	assert.NotNil(t, e.Ptr())

	assert.Nil(t, sliceview.Of([]int64(nil)).Raw())

	requireInvalidArg(t, func() { sliceview.Make[int64](nil, 2) })
	requireInvalidArg(t, func() { sliceview.Make(&data[0], -1) })
	requireInvalidArg(t, func() { sliceview.RangeOf(&data[2], &data[0]) })
}

func TestTypedConversions(t *testing.T) {
	t.Parallel()

	data := []uint32{10, 20, 30}
	s := sliceview.Of(data)

	// To-untyped recovers the element size from the type; to-typed trusts
	// the caller. Round-tripping is the identity.
	v := s.View()
	assert.Equal(t, 4, v.ItemSize())
	assert.Equal(t, 3, v.Len())

	back := sliceview.Cast[uint32](v)
	assert.Equal(t, s.Ptr(), back.Ptr())
	assert.Equal(t, s.Len(), back.Len())
}

func TestTypedAccessors(t *testing.T) {
	t.Parallel()

	data := []int32{1, 2, 3, 4, 5}
	s := sliceview.Of(data)

	assert.Equal(t, &data[0], s.First())
	assert.Equal(t, &data[4], s.Last())
	assert.Equal(t, &data[2], s.Get(2))
	assert.Equal(t, int32(3), s.Load(2))

	s.Store(2, 33)
	assert.Equal(t, int32(33), data[2])
	s.Store(2, 3)

	assert.Equal(t, data, s.Raw())
	assert.Equal(t, 2, s.WithLen(2).Len())
}

// TestTypedDelegation pins the facade property: a typed operation is exactly
// its untyped counterpart, relabeled.
func TestTypedDelegation(t *testing.T) {
	t.Parallel()

	arr := [10]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s := sliceview.Of(arr[2:7])
	v := s.View()

	for _, bounds := range [][2]int{{0, 5}, {1, 3}, {-2, 6}, {4, 4}} {
		start, end := bounds[0], bounds[1]
		sub := s.Sub(start, end)
		usub := v.Sub(start, end)
		require.Equal(t, usub.Ptr(), sub.View().Ptr())
		require.Equal(t, usub.Len(), sub.Len())
	}

	adv := s.Advance(2)
	assert.Equal(t, v.Advance(2).Ptr(), adv.View().Ptr())
}

func TestTypedCompare(t *testing.T) {
	t.Parallel()

	a := sliceview.Of([]int32{1, 2, 3})
	b := sliceview.Of([]int32{1, 2, 3})
	c := sliceview.Of([]int32{1, 2})

	cmp := sliceview.Ordering[int32]()

	assert.True(t, a.BytesEqual(b))
	assert.True(t, a.Equal(b, cmp))
	assert.False(t, a.Equal(c, cmp))

	assert.True(t, a.StartsWithBytes(c))
	assert.True(t, a.StartsWith(c, cmp))
	assert.True(t, a.EndsWithBytes(sliceview.Of([]int32{2, 3})))
	assert.True(t, a.EndsWith(sliceview.Of([]int32{3}), cmp))
	assert.False(t, a.EndsWith(c, cmp))

	requireInvalidArg(t, func() { a.Equal(b, nil) })
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	cmp := sliceview.Ordering[int]()
	x, y := 1, 2
	assert.Negative(t, cmp(&x, &y))
	assert.Positive(t, cmp(&y, &x))
	assert.Zero(t, cmp(&x, &x))

	scmp := sliceview.Ordering[string]()
	p, q := "a", "b"
	assert.Negative(t, scmp(&p, &q))
}

func TestTypedMutate(t *testing.T) {
	t.Parallel()

	data := []int32{1, 2, 3, 4, 5}
	s := sliceview.Of(data)

	// No scratch buffer at this layer; the temporary is internal.
	s.Swap(1, 3)
	assert.Equal(t, []int32{1, 4, 3, 2, 5}, data)
	s.Swap(1, 3)

	s.Reverse()
	assert.Equal(t, []int32{5, 4, 3, 2, 1}, data)
	s.Reverse()

	other := []int32{9, 8, 7, 6, 5}
	s.SwapWith(sliceview.Of(other))
	assert.Equal(t, []int32{9, 8, 7, 6, 5}, data)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, other)
	s.SwapWith(sliceview.Of(other))

	dst := make([]int32, 5)
	sliceview.Of(dst).CopyFrom(s)
	assert.Equal(t, data, dst)

	dst2 := make([]int32, 5)
	sliceview.Of(dst2).CopyFromDisjoint(s)
	assert.Equal(t, data, dst2)

	requireInvalidArg(t, func() { s.SwapWith(sliceview.Of(other[:2])) })
}

func TestTypedSplitAt(t *testing.T) {
	t.Parallel()

	data := []int32{1, 2, 3, 4, 5}
	s := sliceview.Of(data)

	left, right := s.SplitAt(2)
	assert.Equal(t, []int32{1, 2}, left.Raw())
	assert.Equal(t, []int32{3, 4, 5}, right.Raw())
	assert.Equal(t, s.Ptr(), left.Ptr())
	assert.Equal(t, s.Get(2), right.Ptr())

	requireInvalidArg(t, func() { s.SplitAt(6) })
}

func TestTypedTraversal(t *testing.T) {
	t.Parallel()

	data := []int32{3, 1, 4, 1, 5}
	s := sliceview.Of(data)

	p := s.Find(func(item *int32) bool { return *item == 1 })
	assert.Equal(t, &data[1], p)
	assert.Nil(t, s.Find(func(item *int32) bool { return *item == 9 }))

	sum := int32(0)
	s.ForEach(func(item *int32) { sum += *item })
	assert.Equal(t, int32(14), sum)

	requireInvalidArg(t, func() { s.Find(nil) })
	requireInvalidArg(t, func() { s.ForEach(nil) })
}

func TestTypedSortSearch(t *testing.T) {
	t.Parallel()

	data := []int32{5, 3, 9, 1, 7}
	s := sliceview.Of(data)
	cmp := sliceview.Ordering[int32]()

	s.Sort(cmp)
	assert.Equal(t, []int32{1, 3, 5, 7, 9}, data)

	key := int32(7)
	assert.Equal(t, &data[3], s.Search(&key, cmp))

	key = 4
	assert.Nil(t, s.Search(&key, cmp))
}

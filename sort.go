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
	"sort"
	"unsafe"
)

// Sort sorts the view in place under cmp, delegating the algorithm to
// [sort.Sort]. The sort is not guaranteed to be stable.
//
// scratch backs the element exchanges, like [View.Swap], and shall not
// overlap the viewed region (unchecked). Panics with [ErrInvalidArgument] if
// cmp is nil or scratch is smaller than one element.
func (v View) Sort(cmp Comparator, scratch []byte) {
	checkArg(cmp != nil, "nil comparator")
	v.scratchPtr(scratch)

	sort.Sort(&viewSorter{v, cmp, scratch})
}

// viewSorter adapts a view to [sort.Interface].
type viewSorter struct {
	view    View
	cmp     Comparator
	scratch []byte
}

func (s *viewSorter) Len() int           { return s.view.Len() }
func (s *viewSorter) Less(i, j int) bool { return s.cmp(s.view.Get(i), s.view.Get(j)) < 0 }
func (s *viewSorter) Swap(i, j int)      { s.view.Swap(i, j, s.scratch) }

// Search binary-searches a view sorted under cmp for an element comparing
// equal to key, delegating to [sort.Search]. It returns the address of the
// first such element, or nil if there is none.
//
// The view must already be sorted under cmp (unchecked). Panics with
// [ErrInvalidArgument] if cmp is nil.
func (v View) Search(key unsafe.Pointer, cmp Comparator) unsafe.Pointer {
	checkArg(cmp != nil, "nil comparator")

	i := sort.Search(v.len, func(i int) bool {
		return cmp(v.Get(i), key) >= 0
	})
	if i == v.len || cmp(v.Get(i), key) != 0 {
		return nil
	}
	return v.Get(i)
}

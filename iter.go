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

// Find scans the view strictly in index order and returns the address of the
// first element for which pred holds, or nil if none does.
//
// Auxiliary state travels in the predicate's closure. Panics with
// [ErrInvalidArgument] if pred is nil.
func (v View) Find(pred func(item unsafe.Pointer) bool) unsafe.Pointer {
	checkArg(pred != nil, "nil predicate")

	for i := 0; i < v.len; i++ {
		if item := v.Get(i); pred(item) {
			return item
		}
	}
	return nil
}

// ForEach applies f to the address of every element in index order, with no
// early exit.
//
// Panics with [ErrInvalidArgument] if f is nil.
func (v View) ForEach(f func(item unsafe.Pointer)) {
	checkArg(f != nil, "nil visitor")

	for i := 0; i < v.len; i++ {
		f(v.Get(i))
	}
}

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

package xunsafe

// StrLen returns the length of the zero-terminated ("C-style") array to
// which p points: the number of nonzero elements before the first zero
// element.
func StrLen[T comparable](p *T) int {
	var zero T
	n := 0
	for *p != zero {
		n++
		if n < 0 {
			panic("sliceview: C string length overflow")
		}
		p = Add(p, 1)
	}
	return n
}

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

// Package xunsafe provides a more convenient interface for performing unsafe
// operations than Go's built-in package unsafe.
package xunsafe

import (
	"unsafe"

	"buf.build/go/sliceview/internal/layout"
)

// Cast casts one pointer type to another.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

// Add adds the given offset to p, scaled by the size of E.
//
// The offset may be negative, producing a pointer before p. Keeping the
// result inside a valid allocation is the caller's responsibility.
func Add[P ~*E, E any](p P, n int) P {
	size := layout.Size[E]()
	return P(unsafe.Add(unsafe.Pointer(p), n*size))
}

// Sub computes the difference between two pointers, scaled by the size of E.
func Sub[P ~*E, E any](p1, p2 P) int {
	size := layout.Size[E]()
	return int(uintptr(unsafe.Pointer(p1))-uintptr(unsafe.Pointer(p2))) / size
}

// Load loads a value of the given type at the given index.
func Load[P ~*E, E any](p P, n int) E {
	return *Add(p, n)
}

// Store stores a value at the given index.
func Store[P ~*E, E any](p P, n int, v E) {
	*Add(p, n) = v
}

// Copy copies n elements from one pointer to the other.
//
// The regions may overlap; copy direction is resolved dynamically.
func Copy[P ~*E, E any](dst, src P, n int) {
	copy(unsafe.Slice(dst, n), unsafe.Slice(src, n))
}

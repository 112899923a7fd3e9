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

// Package sliceview provides non-owning views over contiguous typed memory.
//
// A [View] is a fat pointer: an address, a positive element size, and a
// non-negative element count. It never owns the memory it describes; all
// buffers are supplied by the caller and must outlive the view. On top of
// that descriptor the package defines indexing (including negative, relative
// indexing), sub-viewing, equality and prefix/suffix predicates, in-place
// mutation (swap, reverse, split), sorting and binary search delegates,
// and sequential traversal.
//
// [Slice] is the typed projection of [View]: the element size is erased into
// the type parameter, pointers come back as *T instead of unsafe.Pointer,
// and every operation delegates to the untyped layer, so the two can never
// drift in behavior. [Of], [Make], [EmptyOf] and [RangeOf] construct typed
// views; [Cast] and [Slice.View] convert between the two forms at zero cost.
// Ready-made instantiations for the builtin scalar types ([I8] through
// [F64], [Bool], [Char], [Rune]) live alongside char-specific string
// helpers.
//
// # Safety Model
//
// Construction and binary operations check their preconditions and panic
// with an error unwrapping to [ErrInvalidArgument] on misuse; these are
// programmer errors, not runtime failures, so they are fatal near the call
// site rather than returned.
//
// Indexing and sub-viewing are deliberately unchecked beyond start <= end:
// [View.Get] and [View.Sub] accept negative indices and indices past the
// nominal length, computing raw addresses exactly like pointer arithmetic.
// Staying inside a valid allocation is the caller's contract. [Span] is the
// opt-in checked layer: record a sub-view's position, then resolve it
// against a base with bounds validated at that point.
//
// Views are immutable value types. Operations that "update" a view return a
// new descriptor; only the mutation primitives write through to the
// underlying memory. Nothing here locks: concurrent mutation of the same
// region through two views is a data race the caller must prevent.
//
// Element types must have a positive size; views of zero-sized types are
// rejected at construction.
package sliceview

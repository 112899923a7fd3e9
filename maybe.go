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

// Maybe is an optional [View]: either a present view, possibly empty, or
// nothing at all. Absence is a distinct state from an empty-but-present
// view, with no nil or sentinel address involved.
//
// Construct values with [Just] and [Nothing]; the zero Maybe is absent but
// carries an invalid inner view.
type Maybe struct {
	present bool
	view    View
}

// Just wraps a present view.
func Just(v View) Maybe {
	return Maybe{present: true, view: v}
}

// Nothing returns the absent value. Its inner view is a valid empty view, so
// the view invariants hold even when nothing is there.
func Nothing() Maybe {
	return Maybe{present: false, view: Empty(1)}
}

// Present reports whether a view is present.
func (m Maybe) Present() bool { return m.present }

// Get returns the inner view and whether it is present.
func (m Maybe) Get() (View, bool) { return m.view, m.present }

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

	"github.com/stretchr/testify/require"

	"buf.build/go/sliceview"
)

// propertyN is the iteration count for randomized property tests.
const propertyN = 1000

// requireInvalidArg asserts that f panics with an error unwrapping to
// [sliceview.ErrInvalidArgument].
func requireInvalidArg(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a precondition panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, sliceview.ErrInvalidArgument)
	}()
	f()
}

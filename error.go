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
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel that every checked precondition failure
// unwraps to.
var ErrInvalidArgument = errors.New("invalid argument")

// invalidArgumentError is the panic payload for a violated checked
// precondition.
type invalidArgumentError struct {
	reason string
}

// Error implements [error].
func (e *invalidArgumentError) Error() string {
	return "sliceview: invalid argument: " + e.reason
}

// Unwrap implements error unwrapping via [errors.Unwrap].
func (e *invalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// checkArg panics with an *invalidArgumentError unless cond holds.
//
// Checked preconditions describe programmer errors, not environmental
// failures, so they are fatal at the call site instead of being returned.
func checkArg(cond bool, format string, args ...any) {
	if !cond {
		panic(&invalidArgumentError{fmt.Sprintf(format, args...)})
	}
}

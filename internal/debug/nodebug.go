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

//go:build !debug

// Package debug includes debugging helpers.
package debug

// Enabled is true if the library is being built with the debug tag, which
// enables various debugging features.
const Enabled = false

// Log prints debugging information to stderr. No-op without the debug tag.
func Log(context []any, operation string, format string, args ...any) {}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {}

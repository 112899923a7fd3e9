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
	"io"
	"unsafe"
)

// Bytes returns the viewed region as a byte slice aliasing the same memory.
// An empty view yields nil.
func (v View) Bytes() []byte {
	if v.Size() == 0 {
		return nil
	}
	return unsafe.Slice(v.ptr, v.Size())
}

// WriteTo writes the viewed bytes to w. It implements [io.WriterTo]; the
// view itself never touches the sink outside of this method.
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.Bytes())
	return int64(n), err
}

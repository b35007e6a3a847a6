// Copyright 2025 go-ftgs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ftgs

import (
	"errors"
	"fmt"
)

// ErrEmptyTerm is returned by ExecutePass when the pass descriptor carries
// zero slices. Reported to the caller; not fatal.
var ErrEmptyTerm = errors.New("ftgs: pass has no slices")

// ErrRemapConflict is returned by RemapDocsInTargetGroups when a
// placeholder-guarded remap observes a non-placeholder existing assignment.
// Reported to the caller; the caller decides whether to abort the query.
var ErrRemapConflict = errors.New("ftgs: remap conflict under placeholder guard")

// RangeError reports an out-of-range row, column, or group index,
// returned whenever debug checks are enabled (see BoundsChecked) instead
// of letting an out-of-range index corrupt memory.
type RangeError struct {
	Kind  string // "row", "col", "group", "doc", or "shard"
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ftgs: %s index %d out of range [0,%d)", e.Kind, e.Index, e.Limit)
}

// LayoutMismatch indicates that two tables within a single pass carry
// incompatible packed layouts, a programming error rather than a
// reportable runtime failure. LookupAndAccumulate panics with a
// LayoutMismatch value so callers can recover it in tests without every
// caller having to check a distinct error path.
type LayoutMismatch struct {
	Want, Got *Layout
}

func (e *LayoutMismatch) Error() string {
	return fmt.Sprintf("ftgs: layout mismatch: want row size %d (unpacked len %d), got row size %d (unpacked len %d)",
		e.Want.RowSize, e.Want.UnpackedRowLen, e.Got.RowSize, e.Got.UnpackedRowLen)
}

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

// Package ftgs implements the bit-packed, lane-laid-out group-aggregation
// core of a Field/Term/Group/Stats (FTGS) query engine: a PackedTable that
// stores one row per document (a 28-bit group id, up to four boolean
// columns, and N variable-width integer columns packed into 128-bit lanes),
// an UnpackedTable of group-indexed int64 accumulators shaped to mirror that
// layout, and the unpack-and-accumulate pipeline that streams document ids
// from a delta-compressed wire format into running per-group sums.
//
// A portable (scalar) implementation of every mask application is always
// correct and always available (see masks.go), while dispatch.go reports
// what wider hardware lanes are present so callers can size buffers and
// choose prefetch distances accordingly. No code path here requires the
// wider lanes to be present.
//
// Basic usage:
//
//	layout, _ := ftgs.NewLayout(mins, maxes)
//	packed, _ := ftgs.NewPackedTable(nRows, layout)
//	packed.SetCell(row, col, value)
//	accum := ftgs.NewUnpackedTable(nGroups, layout)
//	staging := ftgs.NewStagingBuffer(layout)
//	ftgs.LookupAndAccumulate(packed, docIDs, staging, accum)
package ftgs

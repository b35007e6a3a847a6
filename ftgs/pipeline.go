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

// LookupAndAccumulate walks rows (the document rows touched by one term),
// staging up to NRowsPrefetch unpacked rows at a time and draining each
// full (or final, partial) batch into acc before moving on. The two-phase
// structure (unpack a batch, then accumulate it) rather than a single
// per-row unpack+accumulate loop is the inner loop's whole reason for
// existing: it lets every row's unpack proceed independently before the
// data-dependent accumulate step needs its result, matching the source's
// split between its unpack and accumulate passes.
func LookupAndAccumulate(table *PackedTable, rows []int, staging *StagingBuffer, acc *UnpackedTable) error {
	if table.Layout != staging.Layout || table.Layout != acc.Layout {
		panic(&LayoutMismatch{Want: table.Layout, Got: staging.Layout})
	}

	for _, row := range rows {
		ok, err := staging.UnpackRow(table, row)
		if err != nil {
			return err
		}
		if !ok {
			staging.Drain(acc)
			ok, err = staging.UnpackRow(table, row)
			if err != nil {
				return err
			}
			if !ok {
				return &RangeError{Kind: "row", Index: row, Limit: table.NRows}
			}
		}
	}
	staging.Drain(acc)
	return nil
}

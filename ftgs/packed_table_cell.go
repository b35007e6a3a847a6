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

// BatchColLookup returns GetCell(rows[i], c) for every i, calling GetCell
// once per row and returning the first error it meets.
func (t *PackedTable) BatchColLookup(rows []int, c int) ([]int64, error) {
	out := make([]int64, len(rows))
	for i, r := range rows {
		v, err := t.GetCell(r, c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// BatchSetCol sets column c of rows[i] to vals[i] for every i.
func (t *PackedTable) BatchSetCol(rows []int, c int, vals []int64) error {
	if len(rows) != len(vals) {
		return &RangeError{Kind: "col", Index: len(vals), Limit: len(rows)}
	}
	for i, r := range rows {
		if err := t.SetCell(r, c, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

// BatchGroupLookup returns GetGroup(rows[i]) for every i.
func (t *PackedTable) BatchGroupLookup(rows []int) ([]int, error) {
	out := make([]int, len(rows))
	for i, r := range rows {
		g, err := t.GetGroup(r)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}

// BatchSetGroup sets the group id of rows[i] to groups[i] for every i.
func (t *PackedTable) BatchSetGroup(rows []int, groups []int) error {
	if len(rows) != len(groups) {
		return &RangeError{Kind: "group", Index: len(groups), Limit: len(rows)}
	}
	for i, r := range rows {
		if err := t.SetGroup(r, groups[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetColRange sets column c to v across the contiguous row range
// [start,end), a common case (a single term touching a run of adjacent
// rows) worth special-casing so callers don't have to materialize a rows
// slice.
func (t *PackedTable) SetColRange(start, end, c int, v int64) error {
	if BoundsChecked && (start < 0 || end > t.NRows || start > end) {
		return &RangeError{Kind: "row", Index: end, Limit: t.NRows}
	}
	for r := start; r < end; r++ {
		if err := t.SetCell(r, c, v); err != nil {
			return err
		}
	}
	return nil
}

// SetGroupRange sets the group id to g across the contiguous row range
// [start,end).
func (t *PackedTable) SetGroupRange(start, end, g int) error {
	if BoundsChecked && (start < 0 || end > t.NRows || start > end) {
		return &RangeError{Kind: "row", Index: end, Limit: t.NRows}
	}
	for r := start; r < end; r++ {
		if err := t.SetGroup(r, g); err != nil {
			return err
		}
	}
	return nil
}

// BitSetRegroup is the single-pass filter-split path: every row whose
// current group equals target is reassigned to positive or negative
// depending on that row's own bit in bits (row i's bit lives at
// bits[i/64], bit i%64), leaving every other row's group untouched. bits
// is a caller-owned per-row membership set, not a per-group one; a filter
// evaluated against a target group's rows is the typical producer of it.
func (t *PackedTable) BitSetRegroup(bits []uint64, target, negative, positive int) error {
	for row := 0; row < t.NRows; row++ {
		g, err := t.GetGroup(row)
		if err != nil {
			return err
		}
		if g != target {
			continue
		}
		word := bits[row>>6]
		newGroup := negative
		if word&(uint64(1)<<uint(row&63)) != 0 {
			newGroup = positive
		}
		if err := t.SetGroup(row, newGroup); err != nil {
			return err
		}
	}
	return nil
}

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

// UnpackedTable is a group-indexed accumulator table, one int64 per
// column per group (boolean columns included: UnpackRow stages each header
// bit as 0 or 1 and AddRow sums it like any other slot), laid out with the same lane-pairing as the PackedTable it mirrors so a
// single paired accumulate step can update two neighboring columns
// together. NonZeroRows tracks which groups have been touched since the
// last Reset, letting a pass emit only groups with nonzero accumulators
// instead of sweeping every possible group id.
type UnpackedTable struct {
	Layout      *Layout
	NGroups     int
	RowLen      int // == Layout.UnpackedRowLen
	Data        []int64
	NonZeroRows *BitTree
}

// NewUnpackedTable allocates an accumulator table sized for nGroups groups
// under layout, all entries zero.
func NewUnpackedTable(nGroups int, layout *Layout) *UnpackedTable {
	return &UnpackedTable{
		Layout:      layout,
		NGroups:     nGroups,
		RowLen:      layout.UnpackedRowLen,
		Data:        make([]int64, nGroups*layout.UnpackedRowLen),
		NonZeroRows: NewBitTree(nGroups),
	}
}

// Row returns the slice of RowLen accumulator slots belonging to group,
// growing the table if group is beyond its current capacity (lazy sizing,
// so the caller never needs to know the group space's upper bound up
// front).
func (u *UnpackedTable) Row(group int) []int64 {
	if group >= u.NGroups {
		u.grow(group + 1)
	}
	start := group * u.RowLen
	return u.Data[start : start+u.RowLen]
}

func (u *UnpackedTable) grow(newNGroups int) {
	newData := make([]int64, newNGroups*u.RowLen)
	copy(newData, u.Data)
	u.Data = newData

	newTree := NewBitTree(newNGroups)
	u.NonZeroRows.ForEachSet(func(id int) { newTree.Set(id) })
	u.NonZeroRows = newTree
	u.NGroups = newNGroups
}

// AddRow accumulates staged (RowLen int64 slots, one per unpacked column
// slot as laid out by Layout.ColOffset/pairGroups) into group's row,
// marking group touched. staged carries raw biased words exactly as
// UnpackRow produced them: only packed-minus-min deltas ever enter the
// accumulator here; a caller reading out results applies ColMin back
// itself, since re-biasing every add would mean re-deriving which column
// each accumulator slot belongs to on every single row.
func (u *UnpackedTable) AddRow(group int, staged []int64) {
	row := u.Row(group)
	for i := range row {
		row[i] += staged[i]
	}
	u.NonZeroRows.Set(group)
}

// Reset clears every accumulator and the touched-group tracker, without
// shrinking the backing array, so the same UnpackedTable can be reused
// across passes.
func (u *UnpackedTable) Reset() {
	for i := range u.Data {
		u.Data[i] = 0
	}
	u.NonZeroRows.Reset()
}

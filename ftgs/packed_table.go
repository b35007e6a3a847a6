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

// PackedTable is a dense, bit-packed, column-biased row store: each row is
// Layout.RowSize lanes of LaneSize bytes, a 4-byte header (group id in the
// low GroupBits bits, up to MaxBitFields booleans in the bits above it)
// followed by the integer columns at their precomputed lane offsets. Every
// integer value is stored biased (value - ColMin[c]) so it always fits in
// the column's declared byte width.
type PackedTable struct {
	Layout *Layout
	NRows  int
	Data   []byte
}

// NewPackedTable allocates a zeroed table of nRows rows under layout. A
// zero row decodes to group 0, no booleans set, and every integer column at
// its min (bias zero), the natural reading of an all-zero-bytes row.
func NewPackedTable(nRows int, layout *Layout) (*PackedTable, error) {
	if nRows < 0 {
		return nil, &RangeError{Kind: "row", Index: nRows, Limit: 0}
	}
	return &PackedTable{
		Layout: layout,
		NRows:  nRows,
		Data:   make([]byte, nRows*layout.RowSize*LaneSize),
	}, nil
}

// rowOffset returns the byte offset of row's first lane, bounds-checking
// when BoundsChecked is true.
func (t *PackedTable) rowOffset(row int) (int, error) {
	if BoundsChecked && (row < 0 || row >= t.NRows) {
		return 0, &RangeError{Kind: "row", Index: row, Limit: t.NRows}
	}
	return row * t.Layout.RowSize * LaneSize, nil
}

// laneBytes returns the lane'th 16-byte lane of row as a fixed array copy.
func (t *PackedTable) laneBytes(rowOff, lane int) [LaneSize]byte {
	var b [LaneSize]byte
	copy(b[:], t.Data[rowOff+lane*LaneSize:rowOff+(lane+1)*LaneSize])
	return b
}

func (t *PackedTable) putLaneBytes(rowOff, lane int, b [LaneSize]byte) {
	copy(t.Data[rowOff+lane*LaneSize:rowOff+(lane+1)*LaneSize], b[:])
}

// header returns row's raw 32-bit header word.
func (t *PackedTable) header(rowOff int) uint32 {
	b := t.Data[rowOff : rowOff+headerSize]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (t *PackedTable) putHeader(rowOff int, h uint32) {
	b := t.Data[rowOff : rowOff+headerSize]
	b[0] = byte(h)
	b[1] = byte(h >> 8)
	b[2] = byte(h >> 16)
	b[3] = byte(h >> 24)
}

// GetGroup returns row's group id.
func (t *PackedTable) GetGroup(row int) (int, error) {
	off, err := t.rowOffset(row)
	if err != nil {
		return 0, err
	}
	return int(t.header(off) & GroupMask), nil
}

// SetGroup overwrites row's group id, leaving the header's boolean bits
// untouched.
func (t *PackedTable) SetGroup(row, group int) error {
	off, err := t.rowOffset(row)
	if err != nil {
		return err
	}
	h := t.header(off)
	h = (h &^ GroupMask) | (uint32(group) & GroupMask)
	t.putHeader(off, h)
	return nil
}

// GetBool returns the value of boolean column b (0..NBooleanCols-1) of row.
func (t *PackedTable) GetBool(row, b int) (bool, error) {
	off, err := t.rowOffset(row)
	if err != nil {
		return false, err
	}
	if BoundsChecked && (b < 0 || b >= t.Layout.NBooleanCols) {
		return false, &RangeError{Kind: "col", Index: b, Limit: t.Layout.NBooleanCols}
	}
	h := t.header(off)
	return h&(1<<uint(GroupBits+b)) != 0, nil
}

// SetBool ORs boolean column b of row with v. It never clears a bit that
// set(true) already wrote: repeated sets of a boolean column OR together,
// so a column only ever goes from false to true over a row's lifetime.
func (t *PackedTable) SetBool(row, b int, v bool) error {
	off, err := t.rowOffset(row)
	if err != nil {
		return err
	}
	if BoundsChecked && (b < 0 || b >= t.Layout.NBooleanCols) {
		return &RangeError{Kind: "col", Index: b, Limit: t.Layout.NBooleanCols}
	}
	if v {
		h := t.header(off)
		h |= uint32(1) << uint(GroupBits+b)
		t.putHeader(off, h)
	}
	return nil
}

// GetCell returns the unbiased (real) value of integer column c in row.
func (t *PackedTable) GetCell(row, c int) (int64, error) {
	off, err := t.rowOffset(row)
	if err != nil {
		return 0, err
	}
	if BoundsChecked && (c < t.Layout.NBooleanCols || c >= t.Layout.NCols) {
		return 0, &RangeError{Kind: "col", Index: c, Limit: t.Layout.NCols}
	}
	i := c - t.Layout.NBooleanCols
	_, _, lane := t.Layout.ColByteRange(c)
	lb := t.laneBytes(off, lane)
	gathered := applyShuffle(t.Layout.gather[i], lb)
	biased := int64(le64(gathered))
	return biased + t.Layout.ColMin[c], nil
}

// SetCell overwrites integer column c of row with the real (unbiased)
// value v, storing it as v - ColMin[c].
func (t *PackedTable) SetCell(row, c int, v int64) error {
	off, err := t.rowOffset(row)
	if err != nil {
		return err
	}
	if BoundsChecked && (c < t.Layout.NBooleanCols || c >= t.Layout.NCols) {
		return &RangeError{Kind: "col", Index: c, Limit: t.Layout.NCols}
	}
	i := c - t.Layout.NBooleanCols
	_, _, lane := t.Layout.ColByteRange(c)
	biased := v - t.Layout.ColMin[c]
	src := putLE64(uint64(biased))
	scattered := applyShuffle(t.Layout.scatter[i], src)
	lb := t.laneBytes(off, lane)
	blended := applyBlend(t.Layout.blend[i], lb, scattered)
	t.putLaneBytes(off, lane, blended)
	return nil
}

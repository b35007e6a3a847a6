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
	"fmt"
	"math/bits"

	"github.com/samber/lo"
)

const (
	// LaneSize is the byte width of one packed-row lane (a 128-bit SIMD lane).
	LaneSize = 16

	// GroupBits is the number of low bits of the row header holding the
	// document's group id.
	GroupBits = 28

	// GroupMask masks a value down to the 28-bit group id range.
	GroupMask = 0x0FFF_FFFF

	// MaxBitFields is the number of boolean columns that fit in the row
	// header alongside the group id (32 - GroupBits).
	MaxBitFields = 4

	// headerSize is the byte width of the row header (group + booleans).
	headerSize = 4

	// maxRowLanes bounds how many lanes a row may occupy; a lane index
	// must fit in a single byte, so constructing a layout whose computed
	// row needs more lanes than this fails outright.
	maxRowLanes = 255
)

// colSpec is the caller-declared range for one column, used internally by
// the layout builder. Exported callers describe columns with parallel
// min/max slices; colSpec exists purely so the classification loop below
// has a single value to range over instead of juggling two parallel slices.
type colSpec struct {
	index    int
	min, max int64
}

// pairGroup describes one gather_pair mask application: it reads one lane
// of a packed row and produces up to two accumulator words (two columns
// sharing that lane), written contiguously into an unpacked row starting at
// DestSlot. Groups never cross a lane boundary.
type pairGroup struct {
	Lane       int
	GatherPair [LaneSize]byte
	DestSlot   int // i64 slot index in the unpacked row
	ColA       int // declared column index of the first column
	ColB       int // declared column index of the second column, or -1
}

// Layout describes the packed-row geometry and precomputed shuffle/blend
// masks for a fixed set of columns, plus the mirrored UnpackedTable row
// shape. A Layout is immutable once built and may be shared by many
// PackedTable/UnpackedTable instances with the same column schema.
type Layout struct {
	NCols        int
	ColMin       []int64
	ColMax       []int64
	NBooleanCols int

	// Per integer column (index 0..NCols-NBooleanCols-1, corresponding to
	// declared column NBooleanCols+i):
	intStart  []int // byte offset within its lane (0..15)
	intEnd    []int // exclusive
	intLane   []int // lane index within the row
	gather    [][LaneSize]byte
	scatter   [][LaneSize]byte
	blend     [][LaneSize]byte

	NColsPerVector  []int // length UnpaddedRowSize
	UnpaddedRowSize int   // lanes, before padding
	RowSize         int   // lanes, padded to 1 or an even count

	pairGroups     []pairGroup
	lanePairGroups [][]pairGroup // indexed by lane, for the staging sweep

	// ColOffset mirrors the UnpackedTable row: ColOffset[c] is the int64
	// slot column c lands in within an unpacked row. Always even for the
	// first column of any lane-pair group (the only offsets the unpack
	// pipeline dereferences directly).
	ColOffset      []int
	UnpackedRowLen int // int64 slots per unpacked row
}

// NewLayout computes column widths, lane assignment, and masks from
// min/max ranges alone. Columns are packed in declared order; a column
// collapses into a boolean slot of the header when its range fits in one
// bit and fewer than MaxBitFields booleans have been committed while
// still in the boolean-collecting phase. That phase ends the first time
// any column is placed as an integer column: booleans are only ever
// packed into the header ahead of the first integer column, never mixed
// in afterward.
func NewLayout(mins, maxes []int64) (*Layout, error) {
	if len(mins) != len(maxes) {
		return nil, fmt.Errorf("ftgs: mins and maxes length mismatch: %d vs %d", len(mins), len(maxes))
	}
	n := len(mins)
	specs := make([]colSpec, n)
	for i := range specs {
		specs[i] = colSpec{index: i, min: mins[i], max: maxes[i]}
	}

	nBooleans := 0
	booleanPhase := true
	var intSpecs []colSpec
	sizes := make([]int, n)
	for _, s := range specs {
		rng := s.max - s.min
		if booleanPhase && rng <= 1 && nBooleans < MaxBitFields {
			nBooleans++
			sizes[s.index] = 0
			continue
		}
		booleanPhase = false
		width := byteWidth(rng)
		sizes[s.index] = width
		intSpecs = append(intSpecs, s)
	}

	// Lane-assign the integer columns in declared order, starting right
	// after the 4-byte header in lane 0.
	vecNums := make([]int, n)
	offsets := make([]int, n)
	cursor := headerSize
	for _, s := range intSpecs {
		w := sizes[s.index]
		lane := cursor / LaneSize
		remaining := LaneSize - cursor%LaneSize
		if w > remaining {
			cursor = (lane + 1) * LaneSize
			lane++
		}
		vecNums[s.index] = lane
		offsets[s.index] = cursor % LaneSize
		cursor += w
	}

	return newLayoutFromColumns(mins, maxes, sizes, vecNums, offsets)
}

// NewLayoutExplicit builds a Layout from caller-supplied column metadata:
// sizes[i] is the byte width of column i (0 for a boolean-collapsed
// column), vecNums[i] its lane index, and offsets[i] its byte offset
// within that lane. Masks are derived from this metadata exactly as
// NewLayout derives them from its own computed values, so two layouts
// built from equivalent (sizes, vecNums, offsets) for the same (mins,
// maxes) are wire-equivalent under GetCell.
func NewLayoutExplicit(mins, maxes []int64, sizes, vecNums, offsets []int) (*Layout, error) {
	if len(mins) != len(maxes) || len(mins) != len(sizes) || len(mins) != len(vecNums) || len(mins) != len(offsets) {
		return nil, fmt.Errorf("ftgs: column metadata slices must share one length")
	}
	return newLayoutFromColumns(mins, maxes, sizes, vecNums, offsets)
}

func newLayoutFromColumns(mins, maxes []int64, sizes, vecNums, offsets []int) (*Layout, error) {
	n := len(mins)
	nBooleans := lo.CountBy(sizes, func(s int) bool { return s == 0 })

	l := &Layout{
		NCols:        n,
		ColMin:       append([]int64(nil), mins...),
		ColMax:       append([]int64(nil), maxes...),
		NBooleanCols: nBooleans,
	}

	nInt := n - nBooleans
	l.intStart = make([]int, nInt)
	l.intEnd = make([]int, nInt)
	l.intLane = make([]int, nInt)

	maxLane := 0
	for c := nBooleans; c < n; c++ {
		i := c - nBooleans
		l.intStart[i] = offsets[c]
		l.intEnd[i] = offsets[c] + sizes[c]
		l.intLane[i] = vecNums[c]
		if l.intEnd[i] > LaneSize {
			return nil, fmt.Errorf("ftgs: column %d (bytes [%d,%d)) straddles its lane", c, l.intStart[i], l.intEnd[i])
		}
		if vecNums[c] > maxLane {
			maxLane = vecNums[c]
		}
	}

	if nInt == 0 {
		l.UnpaddedRowSize = 1
	} else {
		l.UnpaddedRowSize = maxLane + 1
	}
	if l.UnpaddedRowSize > maxRowLanes {
		return nil, fmt.Errorf("ftgs: row of %d lanes exceeds the mask-table ceiling of %d", l.UnpaddedRowSize, maxRowLanes)
	}
	if l.UnpaddedRowSize == 1 {
		l.RowSize = 1
	} else {
		l.RowSize = (l.UnpaddedRowSize + 1) &^ 1
	}

	l.NColsPerVector = make([]int, l.UnpaddedRowSize)
	for _, lane := range l.intLane {
		l.NColsPerVector[lane]++
	}

	l.buildCellMasks()
	l.buildPairGroupsAndOffsets()
	return l, nil
}

// byteWidth computes ceil(bits_needed/8) where bits_needed is the number
// of bits needed to represent rng as an unsigned delta, with a floor of
// one byte: the boolean collapse is the only path that should ever
// produce a zero-width column, so a column that reaches this formula
// always gets at least a full byte.
func byteWidth(rng int64) int {
	bitsNeeded := bits.Len64(uint64(rng))
	w := (bitsNeeded + 7) / 8
	if w < 1 {
		w = 1
	}
	return w
}

// NumIntCols returns the number of integer (non-boolean) columns.
func (l *Layout) NumIntCols() int { return l.NCols - l.NBooleanCols }

// ColByteRange returns the lane-relative [start,end) byte range and lane
// index for integer column c (a declared column index, c >= NBooleanCols).
func (l *Layout) ColByteRange(c int) (start, end, lane int) {
	i := c - l.NBooleanCols
	return l.intStart[i], l.intEnd[i], l.intLane[i]
}

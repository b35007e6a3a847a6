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

// NRowsPrefetch is the staging buffer's depth: the pipeline unpacks up to
// this many rows into the buffer before adding any of them into the
// UnpackedTable, then drains the whole batch at once.
const NRowsPrefetch = 32

// StagingBuffer decouples PackedTable row-unpacking from UnpackedTable
// accumulation: UnpackRow fills slots independently of AddRow draining
// them, so a caller can issue all of a chunk's unpacks before doing any of
// its (data-dependent, harder to pipeline) accumulates.
type StagingBuffer struct {
	Layout *Layout
	Slots  [][]int64 // NRowsPrefetch rows of Layout.UnpackedRowLen slots
	Groups []int     // destination group id per filled slot
	Count  int
}

// NewStagingBuffer allocates a staging ring sized for layout's unpacked row
// shape.
func NewStagingBuffer(layout *Layout) *StagingBuffer {
	slots := make([][]int64, NRowsPrefetch)
	for i := range slots {
		slots[i] = make([]int64, layout.UnpackedRowLen)
	}
	return &StagingBuffer{Layout: layout, Slots: slots, Groups: make([]int, NRowsPrefetch)}
}

// Reset empties the buffer without reallocating, ready for the next chunk.
func (s *StagingBuffer) Reset() {
	s.Count = 0
}

// Full reports whether the buffer has reached NRowsPrefetch filled slots.
func (s *StagingBuffer) Full() bool {
	return s.Count >= NRowsPrefetch
}

// prefetchLane is a software-prefetch hint for the lane about to be read.
// Go exposes no portable prefetch intrinsic, so this is intentionally a
// no-op. It is kept, rather than removed, so the surrounding loop still
// walks lanes four at a time (one cache line's worth, LaneSize*4 == 64
// bytes), which is the part of the access pattern that still matters once
// the instruction itself is gone.
func prefetchLane(table *PackedTable, rowOff, lane int) {
	_ = table
	_ = rowOff
	_ = lane
}

// UnpackRow decodes packed row `row` of table into the next free staging
// slot and tags it with its destination group, biased values left exactly
// as stored (value - ColMin) and never re-biased here: only GetCell adds
// ColMin back, since the accumulate step never needs an individual cell's
// real value, only its contribution to a running sum. Returns false
// without modifying the buffer if it is already full.
func (s *StagingBuffer) UnpackRow(table *PackedTable, row int) (bool, error) {
	if s.Full() {
		return false, nil
	}
	off, err := table.rowOffset(row)
	if err != nil {
		return false, err
	}
	h := table.header(off)
	group := int(h & GroupMask)

	slot := s.Slots[s.Count]
	for i := range slot {
		slot[i] = 0
	}

	layout := table.Layout

	// Boolean columns are decoded two at a time via a 4-entry lookup
	// table keyed by the pair's two header bits, the same shape as the
	// integer gather-pair loop below but over header bits instead of
	// lane bytes.
	boolPairs := [4][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i := 0; i < (layout.NBooleanCols+1)/2; i++ {
		a, b := i*2, i*2+1
		idx := 0
		if h&(1<<uint(GroupBits+a)) != 0 {
			idx |= 1
		}
		if b < layout.NBooleanCols && h&(1<<uint(GroupBits+b)) != 0 {
			idx |= 2
		}
		pair := boolPairs[idx]
		slot[a] = pair[0]
		if b < layout.NBooleanCols {
			slot[b] = pair[1]
		}
	}

	for lane := 0; lane < layout.UnpaddedRowSize; lane++ {
		if lane%4 == 0 {
			prefetchLane(table, off, lane+4)
		}
		lb := table.laneBytes(off, lane)
		for _, pg := range layout.lanePairGroups[lane] {
			out := applyShuffle(pg.GatherPair, lb)
			slot[pg.DestSlot] = int64(le64At(out, 0))
			if pg.ColB != -1 {
				slot[pg.DestSlot+1] = int64(le64At(out, 8))
			}
		}
	}

	s.Groups[s.Count] = group
	s.Count++
	return true, nil
}

// Drain adds every staged row into dst, then resets the buffer. Splitting
// Drain from UnpackRow is what lets a caller batch all of a chunk's
// unpacks before doing any of its accumulates.
func (s *StagingBuffer) Drain(dst *UnpackedTable) {
	for i := 0; i < s.Count; i++ {
		dst.AddRow(s.Groups[i], s.Slots[i])
	}
	s.Reset()
}

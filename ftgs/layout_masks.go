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

// buildCellMasks computes, per integer column, three single-column masks:
// gather (move the column's bytes to lane positions 0..7), scatter (move a
// value's low bytes to the column's own positions), and blend (select
// scatter's output only within the column's byte range, keeping the rest
// of the lane untouched).
func (l *Layout) buildCellMasks() {
	n := l.NumIntCols()
	l.gather = make([][LaneSize]byte, n)
	l.scatter = make([][LaneSize]byte, n)
	l.blend = make([][LaneSize]byte, n)

	for i := 0; i < n; i++ {
		start, end := l.intStart[i], l.intEnd[i]
		width := end - start

		var gather, scatter, blend [LaneSize]byte
		for j := 0; j < LaneSize; j++ {
			gather[j] = maskZero
			scatter[j] = maskZero
		}
		for k := 0; k < width; k++ {
			gather[k] = byte(start + k) // dest k <- lane byte (start+k)
			scatter[start+k] = byte(k)  // dest (start+k) <- value byte k
			blend[start+k] = 0xFF
		}
		l.gather[i] = gather
		l.scatter[i] = scatter
		l.blend[i] = blend
	}
}

// buildPairGroupsAndOffsets groups integer columns into per-lane pairs for
// the bulk unpack path (gather_pair masks) and computes the mirrored
// UnpackedTable column offsets. Pairing never crosses a lane boundary: two
// consecutive columns sharing a lane fill one 128-bit gather, a column
// whose neighbor lives in a different lane (or who has no neighbor) is
// gathered alone with the upper half zeroed.
func (l *Layout) buildPairGroupsAndOffsets() {
	l.ColOffset = make([]int, l.NCols)
	l.lanePairGroups = make([][]pairGroup, l.UnpaddedRowSize)

	nBooleanVecs := (l.NBooleanCols + 1) / 2
	for b := 0; b < l.NBooleanCols; b++ {
		l.ColOffset[b] = b
	}
	slot := nBooleanVecs * 2

	// Columns sharing a lane are contiguous in our construction order
	// (NewLayout assigns lanes monotonically; NewLayoutExplicit trusts
	// the caller to do the same), so grouping by lane in column order is
	// sufficient without needing to re-sort.
	cols := make([]int, l.NumIntCols())
	for i := range cols {
		cols[i] = l.NBooleanCols + i
	}

	for lane := 0; lane < l.UnpaddedRowSize; lane++ {
		var laneCols []int
		for _, c := range cols {
			_, _, cl := l.ColByteRange(c)
			if cl == lane {
				laneCols = append(laneCols, c)
			}
		}
		for k := 0; k < len(laneCols); k += 2 {
			a := laneCols[k]
			ai := a - l.NBooleanCols
			var mask [LaneSize]byte
			copy(mask[0:8], l.gather[ai][0:8])
			for j := 8; j < LaneSize; j++ {
				mask[j] = maskZero
			}
			l.ColOffset[a] = slot

			pg := pairGroup{Lane: lane, DestSlot: slot, ColA: a, ColB: -1}
			if k+1 < len(laneCols) {
				b := laneCols[k+1]
				bi := b - l.NBooleanCols
				for j, m := range l.gather[bi][0:8] {
					if m == maskZero {
						mask[8+j] = maskZero
					} else {
						mask[8+j] = m
					}
				}
				l.ColOffset[b] = slot + 1
				pg.ColB = b
			}
			pg.GatherPair = mask
			l.pairGroups = append(l.pairGroups, pg)
			l.lanePairGroups[lane] = append(l.lanePairGroups[lane], pg)
			slot += 2
		}
	}
	l.UnpackedRowLen = slot
}

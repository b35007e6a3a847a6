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

// maskZero is the sentinel byte a shuffle/gather mask entry uses to request
// a zero output byte, matching the 0xFF "don't care" lane used by x86
// PSHUFB (any index with bit 7 set zeroes that output byte).
const maskZero = 0xFF

// applyShuffle is the scalar reference implementation of a 128-bit byte
// shuffle: out[i] = src[mask[i]], or 0 when mask[i] == maskZero. Every mask
// PackedTable precomputes at construction time (gather, gather-pair,
// scatter) is consumed only through this function and its blend
// counterpart below, so a hardware backend need only replace these two
// functions with PSHUFB/TBL and PBLENDVB/BSL to exploit native lanes: the
// row layout and the masks themselves never change, only how fast they
// get applied.
func applyShuffle(mask, src [LaneSize]byte) [LaneSize]byte {
	var out [LaneSize]byte
	for i, m := range mask {
		if m == maskZero {
			continue
		}
		out[i] = src[m]
	}
	return out
}

// applyBlend selects, byte by byte, between old and new: out[i] = new[i]
// when mask[i] != 0, else old[i]. This is the scalar reference for
// PBLENDVB/BSL, used by SetCell to replace only a single column's bytes
// within a lane.
func applyBlend(mask, oldv, newv [LaneSize]byte) [LaneSize]byte {
	var out [LaneSize]byte
	for i, m := range mask {
		if m != 0 {
			out[i] = newv[i]
		} else {
			out[i] = oldv[i]
		}
	}
	return out
}

// le64 decodes the first 8 bytes of b as a little-endian uint64.
func le64(b [LaneSize]byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	return v
}

// le64At decodes 8 bytes of b starting at offset (0 or 8) as little-endian,
// used to split a gather_pair shuffle's output into its two constituent
// column values in one pass.
func le64At(b [LaneSize]byte, offset int) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[offset+i]) << (8 * uint(i))
	}
	return v
}

// putLE64 encodes v into the first 8 bytes of an otherwise-zero register,
// the shape SetCell's scatter mask expects as its shuffle source.
func putLE64(v uint64) [LaneSize]byte {
	var b [LaneSize]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
	return b
}

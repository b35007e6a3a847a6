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

// Package varintdelta implements the delta-varint wire format a term's
// posting list is stored in: a run of strictly increasing row ids, each
// encoded as the LEB128 unsigned varint of its difference from the
// previous id in the run (the first id's difference is taken from a
// caller-supplied running total, so a multi-chunk posting list can resume
// mid-stream without re-decoding from zero).
package varintdelta

import "fmt"

// ErrTruncated reports a posting list that ends mid-varint. Decode itself
// never returns it (it leaves a dangling partial varint unconsumed);
// callers with no further bytes to supply, such as ftgs.ExecutePass,
// return it.
var ErrTruncated = fmt.Errorf("varintdelta: truncated varint")

// Decode reads as many delta-encoded ids as fit in out from the front of
// buf, reconstructing absolute ids by running a prefix sum seeded with
// last (the previously decoded id, or 0 at the start of a posting list).
// It returns the ids written into out, the number of bytes of buf
// consumed, and the last absolute id decoded (so the caller can feed it
// back as `last` on the next call). Decode never reads past the final
// complete varint in buf; a dangling partial varint at the end of buf is
// left unconsumed rather than erroring, so callers can refill and retry.
func Decode(buf []byte, last int, out []int) (n, consumed int, newLast int, err error) {
	pos := 0
	for n < len(out) && pos < len(buf) {
		delta, width, ok := decodeUvarint(buf[pos:])
		if !ok {
			break
		}
		last += int(delta)
		out[n] = last
		n++
		pos += width
	}
	return n, pos, last, nil
}

// Encode appends the delta-varint encoding of ids (which must be strictly
// increasing, the first no smaller than last) to dst, returning the extended
// slice and the final id encoded (for chaining into a subsequent Encode
// call across chunks).
func Encode(dst []byte, last int, ids []int) ([]byte, int) {
	for _, id := range ids {
		delta := uint64(id - last)
		dst = appendUvarint(dst, delta)
		last = id
	}
	return dst, last
}

func decodeUvarint(buf []byte) (v uint64, width int, ok bool) {
	var shift uint
	for i, b := range buf {
		if shift >= 64 {
			return 0, 0, false
		}
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, i + 1, true
		}
		shift += 7
	}
	return 0, 0, false
}

func appendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

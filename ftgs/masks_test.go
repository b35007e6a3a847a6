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

import "testing"

func TestApplyShuffleIdentity(t *testing.T) {
	var mask, src [LaneSize]byte
	for i := range mask {
		mask[i] = byte(i)
		src[i] = byte(100 + i)
	}
	out := applyShuffle(mask, src)
	if out != src {
		t.Errorf("identity shuffle: out = %v, want %v", out, src)
	}
}

func TestApplyShuffleZeroFill(t *testing.T) {
	var mask, src [LaneSize]byte
	for i := range src {
		src[i] = byte(200 + i)
	}
	mask[0] = maskZero
	mask[1] = 0
	out := applyShuffle(mask, src)
	if out[0] != 0 {
		t.Errorf("out[0] = %d, want 0 (maskZero entry)", out[0])
	}
	if out[1] != src[0] {
		t.Errorf("out[1] = %d, want %d", out[1], src[0])
	}
}

func TestApplyBlend(t *testing.T) {
	var mask, oldv, newv [LaneSize]byte
	for i := range oldv {
		oldv[i] = byte(1)
		newv[i] = byte(2)
	}
	mask[3] = 0xFF
	mask[4] = 0xFF
	out := applyBlend(mask, oldv, newv)
	for i := range out {
		if i == 3 || i == 4 {
			if out[i] != 2 {
				t.Errorf("out[%d] = %d, want 2", i, out[i])
			}
		} else if out[i] != 1 {
			t.Errorf("out[%d] = %d, want 1", i, out[i])
		}
	}
}

func TestLE64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 1 << 40, ^uint64(0)} {
		b := putLE64(v)
		if got := le64(b); got != v {
			t.Errorf("le64(putLE64(%d)) = %d, want %d", v, got, v)
		}
		if got := le64At(b, 0); got != v {
			t.Errorf("le64At(putLE64(%d), 0) = %d, want %d", v, got, v)
		}
	}
}

func TestLE64AtHighHalf(t *testing.T) {
	var b [LaneSize]byte
	lo := putLE64(42)
	hi := putLE64(99)
	copy(b[0:8], lo[0:8])
	copy(b[8:16], hi[0:8])
	if got := le64At(b, 0); got != 42 {
		t.Errorf("le64At(b, 0) = %d, want 42", got)
	}
	if got := le64At(b, 8); got != 99 {
		t.Errorf("le64At(b, 8) = %d, want 99", got)
	}
}

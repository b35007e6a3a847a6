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

package varintdelta

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ids := []int{3, 7, 8, 1000, 1001, 1 << 20}

	buf, last := Encode(nil, 0, ids)
	if last != ids[len(ids)-1] {
		t.Fatalf("Encode last = %d, want %d", last, ids[len(ids)-1])
	}

	out := make([]int, len(ids))
	n, consumed, newLast, err := Decode(buf, 0, out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if consumed != len(buf) {
		t.Errorf("consumed = %d, want %d", consumed, len(buf))
	}
	if n != len(ids) {
		t.Fatalf("n = %d, want %d", n, len(ids))
	}
	for i, id := range ids {
		if out[i] != id {
			t.Errorf("out[%d] = %d, want %d", i, out[i], id)
		}
	}
	if newLast != ids[len(ids)-1] {
		t.Errorf("newLast = %d, want %d", newLast, ids[len(ids)-1])
	}
}

func TestDecodeStopsAtOutCapacity(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5}
	buf, _ := Encode(nil, 0, ids)

	out := make([]int, 2)
	n, consumed, _, err := Decode(buf, 0, out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if out[0] != 1 || out[1] != 2 {
		t.Errorf("out = %v, want [1 2]", out)
	}
	if consumed <= 0 || consumed >= len(buf) {
		t.Errorf("consumed = %d, want partial consumption of %d bytes", consumed, len(buf))
	}
}

func TestDecodeResumesAcrossChunksWithLast(t *testing.T) {
	ids := []int{10, 20, 30}
	buf, _ := Encode(nil, 0, ids)

	out := make([]int, 1)
	n, consumed, last, err := Decode(buf, 0, out)
	if err != nil || n != 1 || out[0] != 10 {
		t.Fatalf("first Decode: n=%d out=%v err=%v", n, out, err)
	}

	n, _, last, err = Decode(buf[consumed:], last, out)
	if err != nil || n != 1 || out[0] != 20 {
		t.Fatalf("second Decode: n=%d out=%v err=%v", n, out, err)
	}
	if last != 20 {
		t.Errorf("last = %d, want 20", last)
	}
}

func TestDecodeTruncatedVarintLeftUnconsumed(t *testing.T) {
	ids := []int{1, 300}
	buf, _ := Encode(nil, 0, ids)
	truncated := buf[:len(buf)-1] // chop the final varint's last byte

	out := make([]int, 2)
	n, consumed, _, err := Decode(truncated, 0, out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, want 1 (second varint incomplete)", n)
	}
	if consumed >= len(truncated) {
		t.Errorf("consumed = %d, want < %d (dangling varint left unconsumed)", consumed, len(truncated))
	}
}

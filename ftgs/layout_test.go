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

func TestNewLayoutBooleanCollapse(t *testing.T) {
	// Two 0/1-ranged columns collapse into header booleans; a third,
	// wider column becomes the first integer column.
	mins := []int64{0, 0, 0}
	maxes := []int64{1, 1, 1000}
	l, err := NewLayout(mins, maxes)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.NBooleanCols != 2 {
		t.Errorf("NBooleanCols = %d, want 2", l.NBooleanCols)
	}
	if l.NumIntCols() != 1 {
		t.Errorf("NumIntCols() = %d, want 1", l.NumIntCols())
	}
}

func TestNewLayoutBooleanPhaseEndsOnce(t *testing.T) {
	// A 0/1-ranged column arriving after an integer column must NOT
	// collapse into the header: the boolean phase ends permanently the
	// first time any column is placed as an integer.
	mins := []int64{0, 0}
	maxes := []int64{1000, 1}
	l, err := NewLayout(mins, maxes)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.NBooleanCols != 0 {
		t.Errorf("NBooleanCols = %d, want 0 (second column must not collapse once phase ended)", l.NBooleanCols)
	}
	if l.NumIntCols() != 2 {
		t.Errorf("NumIntCols() = %d, want 2", l.NumIntCols())
	}
}

func TestNewLayoutMaxBitFields(t *testing.T) {
	mins := make([]int64, 6)
	maxes := make([]int64, 6)
	for i := range maxes {
		maxes[i] = 1
	}
	l, err := NewLayout(mins, maxes)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.NBooleanCols != MaxBitFields {
		t.Errorf("NBooleanCols = %d, want %d", l.NBooleanCols, MaxBitFields)
	}
	if l.NumIntCols() != 2 {
		t.Errorf("NumIntCols() = %d, want 2 (remaining 0/1 columns spill into integer columns)", l.NumIntCols())
	}
}

func TestNewLayoutColumnStraddleRejected(t *testing.T) {
	// Explicit metadata placing a 4-byte column at lane offset 14 would
	// straddle the 16-byte lane boundary.
	_, err := NewLayoutExplicit(
		[]int64{0},
		[]int64{1 << 32},
		[]int{4},
		[]int{0},
		[]int{14},
	)
	if err == nil {
		t.Fatal("NewLayoutExplicit: want error for straddling column, got nil")
	}
}

func TestNewLayoutRowSizeParity(t *testing.T) {
	// A single-lane row (after the header) stays at RowSize 1; a row
	// spanning into a second lane pads to an even RowSize.
	l1, err := NewLayout([]int64{0}, []int64{1000})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l1.RowSize != 1 {
		t.Errorf("RowSize = %d, want 1", l1.RowSize)
	}

	mins := make([]int64, 10)
	maxes := make([]int64, 10)
	for i := range maxes {
		maxes[i] = 1 << 40 // 6 bytes each, forces multiple lanes
	}
	l2, err := NewLayout(mins, maxes)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l2.UnpaddedRowSize > 1 && l2.RowSize%2 != 0 {
		t.Errorf("RowSize = %d, want even padding for a multi-lane row", l2.RowSize)
	}
}

func TestColOffsetParity(t *testing.T) {
	mins := []int64{0, 0, 0}
	maxes := []int64{1, 1000, 1000}
	l, err := NewLayout(mins, maxes)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	// Column 0 is boolean (offset == its column index).
	if l.ColOffset[0] != 0 {
		t.Errorf("ColOffset[0] = %d, want 0", l.ColOffset[0])
	}
	// The first integer column must land on an even slot.
	if l.ColOffset[1]%2 != 0 {
		t.Errorf("ColOffset[1] = %d, want even", l.ColOffset[1])
	}
}

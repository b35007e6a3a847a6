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
	"testing"

	"github.com/ajroetker/go-ftgs/internal/varintdelta"
	"github.com/stretchr/testify/require"
)

func buildShard(t *testing.T, l *Layout, id string, nRows int) *Shard {
	t.Helper()
	pt, err := NewPackedTable(nRows, l)
	require.NoError(t, err)
	for i := 0; i < nRows; i++ {
		require.NoError(t, pt.SetGroup(i, i%2))
		require.NoError(t, pt.SetCell(i, 2, int64(i*10)))
	}
	return NewShard(id, pt)
}

func TestWorkerExecutePassAccumulatesPostedRows(t *testing.T) {
	l := testLayout(t)
	shard := buildShard(t, l, "shard-0", 10)
	session, err := NewSession([]*Shard{shard})
	require.NoError(t, err)
	w := NewWorker(2, l)

	wire, _ := varintdelta.Encode(nil, 0, []int{0, 2, 4, 6, 8})
	pass := TermPass{Term: "t", Postings: []TermPosting{{ShardID: "shard-0", Wire: wire}}}
	require.NoError(t, ExecutePass(w, session, pass))

	var want int64
	for _, row := range []int{0, 2, 4, 6, 8} {
		want += int64(row*10) - l.ColMin[2]
	}
	require.Equal(t, want, w.Acc.Row(0)[l.ColOffset[2]])
	require.False(t, w.Acc.NonZeroRows.IsSet(1))
}

func TestWorkerResetClearsAccumulator(t *testing.T) {
	l := testLayout(t)
	shard := buildShard(t, l, "shard-0", 4)
	session, err := NewSession([]*Shard{shard})
	require.NoError(t, err)
	w := NewWorker(1, l)

	wire, _ := varintdelta.Encode(nil, 0, []int{0, 1})
	pass := TermPass{Term: "t", Postings: []TermPosting{{ShardID: "shard-0", Wire: wire}}}
	require.NoError(t, ExecutePass(w, session, pass))
	require.True(t, w.Acc.NonZeroRows.IsSet(0))

	w.Reset()
	require.False(t, w.Acc.NonZeroRows.IsSet(0))
}

func TestExecutePassWalksEveryNamedShardSequentially(t *testing.T) {
	l := testLayout(t)
	shardA := buildShard(t, l, "shard-0", 6)
	shardB := buildShard(t, l, "shard-1", 6)

	session, err := NewSession([]*Shard{shardA, shardB})
	require.NoError(t, err)
	w := NewWorker(2, l)

	wireA, _ := varintdelta.Encode(nil, 0, []int{0, 2, 4})
	wireB, _ := varintdelta.Encode(nil, 0, []int{1, 3, 5})

	pass := TermPass{Term: "example", Postings: []TermPosting{
		{ShardID: "shard-0", Wire: wireA},
		{ShardID: "shard-1", Wire: wireB},
	}}
	require.NoError(t, ExecutePass(w, session, pass))

	var wantGroup0, wantGroup1 int64
	for _, row := range []int{0, 2, 4} {
		wantGroup0 += int64(row*10) - l.ColMin[2]
	}
	for _, row := range []int{1, 3, 5} {
		wantGroup1 += int64(row*10) - l.ColMin[2]
	}
	require.Equal(t, wantGroup0, w.Acc.Row(0)[l.ColOffset[2]])
	require.Equal(t, wantGroup1, w.Acc.Row(1)[l.ColOffset[2]])
}

func TestExecutePassEmptyPostingsIsEmptyTerm(t *testing.T) {
	l := testLayout(t)
	shard := buildShard(t, l, "shard-0", 2)
	session, err := NewSession([]*Shard{shard})
	require.NoError(t, err)
	w := NewWorker(1, l)

	err = ExecutePass(w, session, TermPass{Term: "t"})
	require.ErrorIs(t, err, ErrEmptyTerm)
}

func TestExecutePassUnknownShardIsRangeError(t *testing.T) {
	l := testLayout(t)
	shard := buildShard(t, l, "shard-0", 2)
	session, err := NewSession([]*Shard{shard})
	require.NoError(t, err)
	w := NewWorker(1, l)

	wire, _ := varintdelta.Encode(nil, 0, []int{0})
	pass := TermPass{Term: "t", Postings: []TermPosting{{ShardID: "nope", Wire: wire}}}
	err = ExecutePass(w, session, pass)
	require.Error(t, err)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
}

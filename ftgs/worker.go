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

import "github.com/ajroetker/go-ftgs/internal/varintdelta"

// TGSBufferSize caps how many row ids ExecutePass decodes from the wire
// before unpacking any of them, matching the source's TGS_BUFFER_SIZE: a
// large-enough chunk to amortize the decode loop's overhead without
// holding an entire posting list's worth of ids in memory at once.
const TGSBufferSize = 1024

// Worker owns the one UnpackedTable a pass's results land in, reused
// across passes and grown only on demand, plus the scratch decode buffer
// its own ExecutePass calls fill. A Worker owns no shard and no staging
// buffer: those belong to the Session it is run against, so one Worker
// can walk every shard a Session owns in turn within a single pass.
type Worker struct {
	Acc   *UnpackedTable
	idBuf []int
}

// NewWorker allocates a Worker sized for an initial nGroups groups under
// layout (the accumulator grows on demand past that, see
// UnpackedTable.Row).
func NewWorker(nGroups int, layout *Layout) *Worker {
	return &Worker{
		Acc:   NewUnpackedTable(nGroups, layout),
		idBuf: make([]int, TGSBufferSize),
	}
}

// Reset clears the Worker's accumulator for a fresh pass, keeping the
// allocated UnpackedTable and decode buffer for reuse.
func (w *Worker) Reset() {
	w.Acc.Reset()
}

// ExecutePass runs desc straight through, single-threaded, against
// session: for each posting, it resolves the named shard from session's
// shard list, decodes that posting's wire in TGSBufferSize-id chunks, and
// unpacks/accumulates each chunk via LookupAndAccumulate into worker's
// accumulator, using session's shared staging buffer. Slices are
// processed strictly in desc.Postings order; there is no suspension point
// inside this loop. Layout mismatches between session's shards and
// worker's own accumulator surface as a LayoutMismatch panic from
// LookupAndAccumulate.
//
// Parallelism across shard subsets is the caller's responsibility: run
// independent (Worker, Session) pairs, each owning a disjoint slice of
// the shard space, concurrently. ExecutePass itself never spawns a
// goroutine.
func ExecutePass(worker *Worker, session *Session, desc TermPass) error {
	if len(desc.Postings) == 0 {
		return ErrEmptyTerm
	}
	for _, p := range desc.Postings {
		shard, ok := session.Shards[p.ShardID]
		if !ok {
			return &RangeError{Kind: "shard", Index: 0, Limit: len(session.Shards)}
		}

		last := 0
		wire := p.Wire
		for len(wire) > 0 {
			n, consumed, newLast, err := varintdelta.Decode(wire, last, worker.idBuf)
			if err != nil {
				return err
			}
			if consumed == 0 {
				return varintdelta.ErrTruncated
			}
			last = newLast
			wire = wire[consumed:]

			if err := LookupAndAccumulate(shard.Table, worker.idBuf[:n], session.Staging, worker.Acc); err != nil {
				return err
			}
		}
	}
	return nil
}

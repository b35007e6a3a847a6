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

// Session owns the list of a query's shards, the staging buffer shared by
// every pass run against it, and the common Layout its shards must all
// carry. A Session owns no accumulator: that belongs to whichever Worker
// is run against it, so several Workers may run independent passes over
// the same Session's shards (each over disjoint postings) without
// aliasing each other's results.
type Session struct {
	Layout  *Layout
	Shards  map[string]*Shard // by shard id
	Staging *StagingBuffer
}

// NewSession builds a Session over shards, which must all share one
// Layout (mismatched layouts panic with LayoutMismatch, a programming
// error rather than a reportable runtime failure).
func NewSession(shards []*Shard) (*Session, error) {
	if len(shards) == 0 {
		return &Session{Shards: map[string]*Shard{}}, nil
	}
	layout := shards[0].Table.Layout
	byID := make(map[string]*Shard, len(shards))
	for _, sh := range shards {
		if sh.Table.Layout != layout {
			panic(&LayoutMismatch{Want: layout, Got: sh.Table.Layout})
		}
		byID[sh.ID] = sh
	}
	return &Session{Layout: layout, Shards: byID, Staging: NewStagingBuffer(layout)}, nil
}

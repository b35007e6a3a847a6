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

// Shard owns one PackedTable: a contiguous, independently addressable
// slice of the overall document space. A Session owns the list of a
// query's shards; a single Worker's pass iterates over as many of them as
// a TermPass names, sequentially.
type Shard struct {
	ID    string
	Table *PackedTable
}

// NewShard wraps an existing PackedTable under id.
func NewShard(id string, table *PackedTable) *Shard {
	return &Shard{ID: id, Table: table}
}

// TermPosting is one term's wire-encoded posting list within a shard: the
// delta-varint-encoded, strictly increasing row ids within that shard
// whose document carries the term.
type TermPosting struct {
	ShardID string
	Wire    []byte
}

// TermPass describes one field/term/group/stats pass: a term, and the
// per-shard wire postings naming which rows of each shard to fold into
// the pass's accumulator.
type TermPass struct {
	Term     string
	Postings []TermPosting
}

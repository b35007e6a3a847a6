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

// remapChunk bounds how many doc ids RemapDocsInTargetGroups decodes at
// once, the same chunk size ExecutePass uses for posting lists.
const remapChunk = TGSBufferSize

// RemapDocsInTargetGroups recomputes results[doc_id] for every doc id in
// compressedDocIDs's delta-varint stream (internal/varintdelta's wire
// format). For each decoded doc id, old = table.GetGroup(doc_id); group 0
// is the reserved "no group" and is skipped. Otherwise new =
// remappings[old], and the write into results[doc_id] goes through
// MultiRemap under placeholder's guard policy.
func RemapDocsInTargetGroups(table *PackedTable, results []int, compressedDocIDs []byte, remappings []int, placeholder int) error {
	buf := compressedDocIDs
	last := 0
	ids := make([]int, remapChunk)
	for len(buf) > 0 {
		n, consumed, newLast, err := varintdelta.Decode(buf, last, ids)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			docID := ids[i]
			old, err := table.GetGroup(docID)
			if err != nil {
				return err
			}
			if old == 0 {
				continue
			}
			if old < 0 || old >= len(remappings) {
				return &RangeError{Kind: "group", Index: old, Limit: len(remappings)}
			}
			if err := MultiRemap(results, docID, remappings[old], placeholder); err != nil {
				return err
			}
		}
		if consumed == 0 {
			break
		}
		buf = buf[consumed:]
		last = newLast
	}
	return nil
}

// MultiRemap writes one document's remapped group into results[docID]
// under a placeholder-guard policy. current = results[docID]. If
// placeholder > 0 and current != placeholder, the slot already holds a
// real assignment (written by an earlier call, or pre-existing) and
// MultiRemap fails with ErrRemapConflict rather than silently overwriting
// it: guard mode disallows double assignment outright. Otherwise it
// writes newGroup when the slot still holds placeholder (the first write
// this doc has ever received), or min(current, newGroup) when a previous
// call already wrote a real value here, the deterministic tie-break
// repeated calls over overlapping document subsets rely on.
func MultiRemap(results []int, docID, newGroup, placeholder int) error {
	if docID < 0 || docID >= len(results) {
		return &RangeError{Kind: "doc", Index: docID, Limit: len(results)}
	}
	current := results[docID]
	if placeholder > 0 && current != placeholder {
		return ErrRemapConflict
	}
	if current == placeholder || newGroup < current {
		results[docID] = newGroup
	}
	return nil
}

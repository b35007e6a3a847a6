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

//go:build !ftgs_unsafe

package ftgs

// BoundsChecked is true unless the ftgs_unsafe build tag is set: row/
// column/group index errors return RangeError instead of corrupting
// memory. Builds that pass -tags ftgs_unsafe trade this check away for
// raw, unchecked indexing throughput.
const BoundsChecked = true

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
	"os"
	"strconv"
)

// DispatchLevel reports which hardware register width this runtime
// detected. PackedTable's row layout is defined purely in terms of 16-byte
// lanes regardless of level, and the unpack-accumulate pipeline applies
// every mask through the scalar primitives in masks.go at every level: the
// level is reported for callers and never changes the in-memory byte
// layout.
type DispatchLevel int

const (
	// DispatchScalar applies every gather/scatter/blend mask byte-by-byte.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 is the x86-64 baseline: native 128-bit lanes, one lane
	// processed per mask application.
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit hardware registers are available,
	// each spanning two 16-byte lanes.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit hardware registers, each spanning
	// four 16-byte lanes.
	DispatchAVX512

	// DispatchNEON is the ARM64 baseline: native 128-bit lanes.
	DispatchNEON
)

// String returns a human-readable dispatch level name.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel and currentWidth are set by init() in dispatch_*.go's
// build-tag-selected file.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level detected for this runtime.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the hardware register width in bytes backing the
// current dispatch level (always a multiple of the 16-byte lane size).
func CurrentWidth() int { return currentWidth }

// CurrentName returns a human-readable name for the current dispatch level.
func CurrentName() string { return currentName }

// LanesPerStep returns how many 16-byte PackedTable lanes one hardware
// register spans at the current dispatch level. The pipeline in this
// package does not consult it.
func LanesPerStep() int {
	if currentWidth <= 0 {
		return 1
	}
	return currentWidth / LaneSize
}

// NoSimdEnv reports whether FTGS_NO_SIMD requests the portable scalar path
// regardless of detected CPU capability, an escape hatch for testing and
// debugging the scalar fallback on hardware that would otherwise dispatch
// wider.
func NoSimdEnv() bool {
	val := os.Getenv("FTGS_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

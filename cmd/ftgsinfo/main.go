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

// Command ftgsinfo reports the dispatch level this build detected and,
// given a set of column ranges, the row layout it would compute for them.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-ftgs/ftgs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var mins, maxes []string

	cmd := &cobra.Command{
		Use:   "ftgsinfo",
		Short: "Report dispatch capability and packed-row layout info",
		RunE: func(cmd *cobra.Command, args []string) error {
			printDispatchInfo(cmd)
			if len(mins) == 0 {
				return nil
			}
			return printLayoutInfo(cmd, mins, maxes)
		},
	}

	cmd.Flags().StringSliceVar(&mins, "mins", nil, "comma-separated column minimums")
	cmd.Flags().StringSliceVar(&maxes, "maxes", nil, "comma-separated column maximums (same length as --mins)")
	return cmd
}

func printDispatchInfo(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(out, "NumCPU: %d\n\n", runtime.NumCPU())
	fmt.Fprintf(out, "dispatch level: %s\n", ftgs.CurrentLevel())
	fmt.Fprintf(out, "dispatch width: %d bytes\n", ftgs.CurrentWidth())
	fmt.Fprintf(out, "lanes per step: %d\n\n", ftgs.LanesPerStep())
}

func printLayoutInfo(cmd *cobra.Command, rawMins, rawMaxes []string) error {
	if len(rawMins) != len(rawMaxes) {
		return fmt.Errorf("--mins and --maxes must have the same number of entries (%d vs %d)", len(rawMins), len(rawMaxes))
	}
	mins := make([]int64, len(rawMins))
	maxes := make([]int64, len(rawMaxes))
	for i, s := range rawMins {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing --mins[%d]: %w", i, err)
		}
		mins[i] = v
	}
	for i, s := range rawMaxes {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing --maxes[%d]: %w", i, err)
		}
		maxes[i] = v
	}

	layout, err := ftgs.NewLayout(mins, maxes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "columns: %d (%d boolean, %d integer)\n", layout.NCols, layout.NBooleanCols, layout.NumIntCols())
	fmt.Fprintf(out, "row size: %d lanes (%d unpadded)\n", layout.RowSize, layout.UnpaddedRowSize)
	fmt.Fprintf(out, "unpacked row length: %d int64 slots\n", layout.UnpackedRowLen)
	return nil
}

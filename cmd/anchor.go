// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/cpmech/gosteel/anchor"
	"github.com/cpmech/gosteel/inp"
	"github.com/spf13/cobra"
)

var anchorFile string

var anchorCmd = &cobra.Command{
	Use:   "anchor",
	Short: "Check the concrete breakout strength of an anchor group",
	Long: `Compute the concrete breakout strength in tension of an anchor
group defined in a JSON job file, accounting for overlapping
breakout cones.

Examples:
  gosteel anchor --file base.anchor`,
	Run: runAnchor,
}

func init() {
	rootCmd.AddCommand(anchorCmd)
	anchorCmd.Flags().StringVarP(&anchorFile, "file", "f", "", "Path to anchor job JSON file [required]")
	anchorCmd.MarkFlagRequired("file")
}

func runAnchor(cmd *cobra.Command, args []string) {
	dir, fn := filepath.Split(anchorFile)
	job, err := inp.ReadAnchorJob(dir, fn)
	if err != nil {
		fmt.Printf("Error loading anchor job: %v\n", err)
		return
	}

	Ncb, err := job.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	union, err := job.Group.GetConcreteBreakoutConePolygon(job.Hef)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "job\t%s\n", job.Name)
	fmt.Fprintf(w, "anchors\t%d\n", job.Group.GetNumBolts())
	fmt.Fprintf(w, "embedment depth\t%.0f mm\n", job.Hef*1e3)
	fmt.Fprintf(w, "breakout area\t%.4f m2\n", anchor.PolygonArea(union))
	fmt.Fprintf(w, "breakout strength\t%.2f kN\n", Ncb/1e3)
	if job.Tension > 0 {
		fmt.Fprintf(w, "tension demand\t%.2f kN\n", job.Tension/1e3)
		fmt.Fprintf(w, "efficiency\t%.4f\n", job.Tension/Ncb)
	}
	w.Flush()

	if job.Tension > Ncb {
		fmt.Println("\nStatus: NOT OK")
	} else {
		fmt.Println("\nStatus: OK")
	}
}

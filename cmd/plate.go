// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/out"
	"github.com/spf13/cobra"
)

var (
	plateFile string
	plateXlsx string
)

var plateCmd = &cobra.Command{
	Use:   "plate",
	Short: "Check a bolted plate defined in a JSON file",
	Long: `Check the bolt spacing and the thickness of a bolted plate defined
in a JSON job file.

Examples:
  gosteel plate --file gusset.plate
  gosteel plate -f gusset.plate --xlsx schedule.xlsx`,
	Run: runPlate,
}

func init() {
	rootCmd.AddCommand(plateCmd)
	plateCmd.Flags().StringVarP(&plateFile, "file", "f", "", "Path to plate job JSON file [required]")
	plateCmd.MarkFlagRequired("file")
	plateCmd.Flags().StringVar(&plateXlsx, "xlsx", "", "Write an XLSX schedule with this plate")
}

func runPlate(cmd *cobra.Command, args []string) {
	dir, fn := filepath.Split(plateFile)
	job, err := inp.ReadPlateJob(dir, fn)
	if err != nil {
		fmt.Printf("Error loading plate job: %v\n", err)
		return
	}

	plate := job.Plate
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "job\t%s\n", job.Name)
	fmt.Fprintf(w, "bolt\t%s x%d\n", plate.Array.Bolt.GetName(), plate.Array.GetNumBolts())
	fmt.Fprintf(w, "width\t%.1f mm\n", plate.GetWidth()*1e3)
	fmt.Fprintf(w, "length\t%.1f mm\n", plate.GetLength()*1e3)
	fmt.Fprintf(w, "net width\t%.1f mm\n", plate.GetNetWidth()*1e3)
	fmt.Fprintf(w, "gross area\t%.2f mm2\n", plate.GetGrossArea()*1e6)
	fmt.Fprintf(w, "net area\t%.2f mm2\n", plate.GetNetArea()*1e6)
	fmt.Fprintf(w, "min thickness\t%.2f mm\n", plate.GetMinThickness(job.Load)*1e3)
	fmt.Fprintf(w, "thickness\t%.2f mm\n", plate.T*1e3)
	w.Flush()

	if err := job.Check(); err != nil {
		fmt.Printf("\nStatus: NOT OK: %v\n", err)
	} else {
		fmt.Println("\nStatus: OK")
	}

	if plateXlsx != "" {
		if err := out.SaveBoltSchedule(plateXlsx, []*inp.PlateJob{job}); err != nil {
			fmt.Printf("Error writing schedule: %v\n", err)
			return
		}
		fmt.Printf("Schedule written to %s\n", plateXlsx)
	}
}

// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cpmech/gosteel/bolt"
	"github.com/cpmech/gosteel/stl"
	"github.com/spf13/cobra"
)

var (
	boltDiameter        float64
	boltSteelName       string
	boltThreadsExcluded bool
	boltOversized       bool
)

var boltCmd = &cobra.Command{
	Use:   "bolt",
	Short: "Print the properties and strengths of a standard bolt",
	Long: `Print the geometric properties and the design strengths of a
standard metric bolt.

Examples:
  gosteel bolt --diameter 16
  gosteel bolt -d 20 --steel A325 --threads-excluded`,
	Run: runBolt,
}

func init() {
	rootCmd.AddCommand(boltCmd)
	boltCmd.Flags().Float64VarP(&boltDiameter, "diameter", "d", 16, "Bolt diameter in mm")
	boltCmd.Flags().StringVarP(&boltSteelName, "steel", "s", "A307", "Bolt steel grade")
	boltCmd.Flags().BoolVar(&boltThreadsExcluded, "threads-excluded", false, "Threads excluded from the shear planes")
	boltCmd.Flags().BoolVar(&boltOversized, "oversized", false, "Use oversized holes")
}

func runBolt(cmd *cobra.Command, args []string) {
	d := boltDiameter * 1e-3
	if err := bolt.CheckStandardDiameter(d); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	steel, err := stl.Get(boltSteelName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	b := bolt.New(d, steel)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "designation\t%s\n", b.GetName())
	fmt.Fprintf(w, "steel group\t%s\n", b.GetGroup())
	fmt.Fprintf(w, "area\t%.2f mm2\n", b.GetArea()*1e6)
	fmt.Fprintf(w, "hole diameter\t%.1f mm\n", b.GetNominalHoleDiameter(boltOversized)*1e3)
	fmt.Fprintf(w, "min spacing\t%.1f mm\n", b.GetMinDistanceBetweenCenters()*1e3)
	fmt.Fprintf(w, "recommended spacing\t%.1f mm\n", b.GetRecommendedDistanceBetweenCenters()*1e3)
	fmt.Fprintf(w, "min edge distance\t%.1f mm\n", b.GetMinimumEdgeDistanceJ34M()*1e3)
	fmt.Fprintf(w, "design tensile strength\t%.2f kN\n", b.GetDesignTensileStrength()/1e3)
	fmt.Fprintf(w, "design shear strength\t%.2f kN\n", b.GetDesignShearStrength(boltThreadsExcluded)/1e3)
	w.Flush()
}

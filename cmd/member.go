// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/out"
	"github.com/spf13/cobra"
)

var (
	memberFile    string
	memberDiagram bool
	memberExport  string
	memberPdf     string
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Check the capacity of a connected member",
	Long: `Compute the combined capacity factor of a connected member defined
in a JSON job file, using the H1 interaction rule of AISC 360-16.

Examples:
  gosteel member --file column.member
  gosteel member -f column.member --diagram
  gosteel member -f column.member --output diagram.png --pdf report.pdf`,
	Run: runMember,
}

func init() {
	rootCmd.AddCommand(memberCmd)
	memberCmd.Flags().StringVarP(&memberFile, "file", "f", "", "Path to member job JSON file [required]")
	memberCmd.MarkFlagRequired("file")
	memberCmd.Flags().BoolVar(&memberDiagram, "diagram", false, "Show ASCII interaction diagram")
	memberCmd.Flags().StringVarP(&memberExport, "output", "o", "", "Export interaction diagram to file (png, svg, pdf)")
	memberCmd.Flags().StringVar(&memberPdf, "pdf", "", "Write a PDF report to file")
}

func runMember(cmd *cobra.Command, args []string) {
	dir, fn := filepath.Split(memberFile)
	job, err := inp.ReadMemberJob(dir, fn)
	if err != nil {
		fmt.Printf("Error loading member job: %v\n", err)
		return
	}

	res, err := job.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Print(out.TextReport(job, res))

	if memberDiagram {
		fmt.Println(out.DrawASCIIInteractionDiagram(res.NcRd, res.MbRdz))
	}
	if memberExport != "" {
		if err := out.ExportInteractionDiagram(res.NcRd, res.MbRdz, job.Nd, job.Mzd, memberExport); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("Diagram written to %s\n", memberExport)
	}
	if memberPdf != "" {
		if err := out.SavePDFReport(memberPdf, job, res); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
			return
		}
		fmt.Printf("Report written to %s\n", memberPdf)
	}
}

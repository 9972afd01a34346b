// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/shp"
	"github.com/phpdave11/gofpdf"
)

// SavePDFReport writes a PDF report of a member check
func SavePDFReport(filename string, job *inp.MemberJob, res shp.BiaxialResults) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, io.Sf("Member Check: %s", job.Name))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, io.Sf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		io.Sf("Shape: %s (%s)", job.Shape, job.Kind),
		io.Sf("Steel: %s", job.Steel),
		io.Sf("Length: %g m   Unbraced length: %g m", job.L, job.Lb),
		io.Sf("End fixities: %s/%s - %s/%s", job.RotI, job.TransI, job.RotJ, job.TransJ),
		io.Sf("Nd: %.3f kN   Myd: %.3f kN.m   Mzd: %.3f kN.m", job.Nd/1e3, job.Myd/1e3, job.Mzd/1e3),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		io.Sf("NcRd: %.3f kN", res.NcRd/1e3),
		io.Sf("McRdy: %.3f kN.m", res.McRdy/1e3),
		io.Sf("MbRdz: %.3f kN.m", res.MbRdz/1e3),
		io.Sf("Capacity factor: %.4f", res.CF),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	if res.CF > 1.0 {
		pdf.SetTextColor(200, 0, 0)
		pdf.Cell(0, 8, "Status: NOT OK")
	} else {
		pdf.SetTextColor(0, 120, 0)
		pdf.Cell(0, 8, "Status: OK")
	}
	return pdf.OutputFileAndClose(filename)
}

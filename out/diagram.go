// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// InteractionCurve returns the axial force versus major axis moment envelope
// of the H1 interaction rule of AISC 360-16: points on the curve have a
// capacity factor of exactly 1. NcRd is the available axial strength and
// MbRdz the available major axis flexural strength. npts must be at least 2
func InteractionCurve(NcRd, MbRdz float64, npts int) (mm, nn []float64) {
	mm = make([]float64, npts)
	nn = make([]float64, npts)
	for i := 0; i < npts; i++ {
		ratioN := 1.0 - float64(i)/float64(npts-1)
		var ratioM float64
		if ratioN >= 0.2 {
			ratioM = 9.0 / 8.0 * (1.0 - ratioN) // from H1-1a
		} else {
			ratioM = 1.0 - ratioN/2.0 // from H1-1b
		}
		mm[i] = ratioM * MbRdz
		nn[i] = ratioN * NcRd
	}
	return
}

// DrawASCIIInteractionDiagram renders the H1 interaction envelope as an ASCII
// plot of axial force (kN) over increasing moment
func DrawASCIIInteractionDiagram(NcRd, MbRdz float64) string {
	_, nn := InteractionCurve(NcRd, MbRdz, 60)
	data := make([]float64, len(nn))
	for i, n := range nn {
		data[i] = n / 1e3
	}
	return asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption(io.Sf("N (kN) vs Mz up to %.1f kN.m", MbRdz/1e3)),
	)
}

// ExportInteractionDiagram writes the H1 interaction envelope to an image
// file; the format follows the file extension (png, pdf, svg)
func ExportInteractionDiagram(NcRd, MbRdz float64, Nd, Mzd float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Interaction Diagram"
	p.X.Label.Text = "Mz (kN.m)"
	p.Y.Label.Text = "N (kN)"

	mm, nn := InteractionCurve(NcRd, MbRdz, 100)
	curve := make(plotter.XYs, len(mm))
	for i := range mm {
		curve[i] = plotter.XY{X: mm[i] / 1e3, Y: nn[i] / 1e3}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{B: 180, A: 255}
	p.Add(line)

	// demand point
	pt := plotter.XYs{{X: Mzd / 1e3, Y: Nd / 1e3}}
	scatter, err := plotter.NewScatter(pt)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)
	p.Legend.Add("envelope", line)
	p.Legend.Add("demand", scatter)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchor implements ASTM anchor rods and anchor groups according to
// the AISC design guide "Base Plate and Anchor Rod Design" (2nd edition) and
// the ACI 318 Appendix D provisions. All quantities are in SI units
// (Pa, m, N); the breakout power law converts internally to imperial units.
package anchor

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosteel/stl"
	polyclip "github.com/ctessum/polyclip-go"
)

// resistance factors
const (
	PhiTension  = 0.75 // anchor steel in tension
	PhiShear    = 0.55 // anchor steel in shear
	PhiPullout  = 0.70 // concrete pullout
	PhiBreakout = 0.70 // concrete breakout
)

// Pos is a planar position on the base plate
type Pos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Anchor represents one anchor rod
type Anchor struct {
	Name  string     // rod identifier within a group
	D     float64    // rod diameter
	Steel *stl.Steel // rod steel grade
	Pos   *Pos       // planar position (nil if unset)
}

// tables from the design guide
var (
	// table 3.2: bearing areas of the rod head or nut
	abDiams = []float64{0.015875, 0.01905, 0.022225, 0.0254, 0.028575, 0.03175, 0.0381, 0.04445,
		0.0508, 0.05715, 0.0635, 0.06985, 0.0762, 0.08255, 0.0889, 0.09525, 0.1016}
	abAreas = []float64{0.00044451524, 0.00058451496, 0.0007870952, 0.00096774, 0.0011677396,
		0.0014451584, 0.0020193508, 0.0026903172, 0.003451606, 0.0043161204, 0.0052709572,
		0.006322568, 0.007354824, 0.008580628, 0.009870948, 0.0112903, 0.012838684}

	// table 2.3: hole diameters in the base plate
	rodDiams  = []float64{0.01905, 0.022225, 0.0254, 0.03175, 0.0381, 0.04445, 0.0508, 0.0635}
	holeDiams = []float64{0.0333375, 0.0396875, 0.0460375, 0.0523875, 0.0587375, 0.06985, 0.08255, 0.08255}

	iBearingArea  *fun.DataInterp
	iHoleDiameter *fun.DataInterp
)

func init() {
	iBearingArea = fun.NewDataInterp("lin", 1, abDiams, abAreas)
	iHoleDiameter = fun.NewDataInterp("lin", 1, rodDiams, holeDiams)
}

// New returns a new anchor rod
func New(name string, steel *stl.Steel, diameter float64, pos *Pos) *Anchor {
	return &Anchor{Name: name, D: diameter, Steel: steel, Pos: pos}
}

// GetArea returns the gross cross-sectional area of the rod
func (o *Anchor) GetArea() float64 {
	return math.Pi * o.D * o.D / 4.0
}

// GetTensileStrength returns the tensile strength fu·Ag of the rod
func (o *Anchor) GetTensileStrength() float64 {
	return o.Steel.Fu * o.GetArea()
}

// GetNominalTensileStrength returns the nominal tensile strength of the rod
func (o *Anchor) GetNominalTensileStrength() float64 {
	return 0.75 * o.GetTensileStrength()
}

// GetNominalShearStrength returns the nominal shear strength of the rod.
// threadCond is "N" for threads included in the shear plane or "X" for
// threads excluded
func (o *Anchor) GetNominalShearStrength(threadCond string) float64 {
	factor := 0.4
	if threadCond == "X" {
		factor = 0.5
	}
	return factor * o.GetTensileStrength()
}

// GetDesignTensileStrength returns the design tensile strength of the rod
func (o *Anchor) GetDesignTensileStrength(phi float64) float64 {
	return phi * o.GetNominalTensileStrength()
}

// GetDesignShearStrength returns the design shear strength of the rod
func (o *Anchor) GetDesignShearStrength(threadCond string, phi float64) float64 {
	return phi * o.GetNominalShearStrength(threadCond)
}

// GetBearingArea returns the bearing area of the rod head or nut according to
// table 3.2 of the design guide
func (o *Anchor) GetBearingArea() float64 {
	return iBearingArea.P(o.D)
}

// GetNominalHoleDiameter returns the base plate hole diameter for the rod
// according to table 2.3 of the design guide
func (o *Anchor) GetNominalHoleDiameter() float64 {
	return iHoleDiameter.P(o.D)
}

// GetNominalPulloutStrength returns the nominal pullout strength of the rod
// based on section D5.3 of ACI 318 Appendix D. psi4 is 1.4 if the anchor is
// located in a region where analysis indicates no cracking at service levels,
// otherwise 1.0
func (o *Anchor) GetNominalPulloutStrength(fc, psi4 float64) float64 {
	return psi4 * o.GetBearingArea() * 8.0 * fc
}

// GetDesignPulloutStrength returns the design pullout strength of the rod
// based on section D5.3 of ACI 318 Appendix D
func (o *Anchor) GetDesignPulloutStrength(fc, psi4, phi float64) float64 {
	return phi * o.GetNominalPulloutStrength(fc, psi4)
}

// GetConcreteBreakoutConePolygon returns the full breakout cone in tension as
// per ACI 318-02: a square of half-width 1.5·hef centered at the rod position.
// An unset position is an error
func (o *Anchor) GetConcreteBreakoutConePolygon(hef float64) (polyclip.Polygon, error) {
	if o.Pos == nil {
		return nil, chk.Err("anchor %q position not specified", o.Name)
	}
	delta := 1.5 * hef
	contour := polyclip.Contour{
		{X: o.Pos.X + delta, Y: o.Pos.Y + delta},
		{X: o.Pos.X - delta, Y: o.Pos.Y + delta},
		{X: o.Pos.X - delta, Y: o.Pos.Y - delta},
		{X: o.Pos.X + delta, Y: o.Pos.Y - delta},
	}
	return polyclip.Polygon{contour}, nil
}

// anchorData is the serialization form of Anchor
type anchorData struct {
	Name  string  `json:"name"`
	D     float64 `json:"d"`
	Steel string  `json:"steel"`
	Pos   *Pos    `json:"pos,omitempty"`
}

// MarshalJSON encodes the anchor
func (o *Anchor) MarshalJSON() ([]byte, error) {
	return json.Marshal(anchorData{Name: o.Name, D: o.D, Steel: o.Steel.Name, Pos: o.Pos})
}

// UnmarshalJSON decodes the anchor, resolving the steel grade by name
func (o *Anchor) UnmarshalJSON(b []byte) (err error) {
	var data anchorData
	if err = json.Unmarshal(b, &data); err != nil {
		return
	}
	grade, err := stl.Get(data.Steel)
	if err != nil {
		return
	}
	o.Name, o.D, o.Steel, o.Pos = data.Name, data.D, grade, data.Pos
	return
}

// PolygonArea returns the area enclosed by a polygon, holes deducted
func PolygonArea(p polyclip.Polygon) float64 {
	total := 0.0
	for _, contour := range p {
		n := len(contour)
		if n < 3 {
			continue
		}
		sum := 0.0
		for i := 0; i < n; i++ {
			a, b := contour[i], contour[(i+1)%n]
			sum += a.X*b.Y - b.X*a.Y
		}
		total += sum / 2.0 // signed; hole contours carry opposite orientation
	}
	return math.Abs(total)
}

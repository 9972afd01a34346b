// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bolt implements ASTM bolt fasteners according to chapter J of
// AISC 360-16, including bolt arrays and bolted plates. All quantities are
// in SI units (Pa, m, N).
package bolt

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/stl"
)

// Bolt represents one ASTM bolt fastener
type Bolt struct {
	D     float64   // nominal diameter
	Steel *stl.Steel // bolt steel grade
}

// tables from AISC 360-16; diameters M16 to M36
var (
	bfDiams  = []float64{16e-3, 20e-3, 22e-3, 24e-3, 27e-3, 30e-3, 36e-3}
	tabJ34M  = []float64{22e-3, 26e-3, 28e-3, 30e-3, 34e-3, 38e-3, 46e-3} // table J3.4M: minimum edge distances
	tabStd   = []float64{18e-3, 22e-3, 24e-3, 27e-3, 30e-3, 33e-3}        // table J3.3M: standard hole diameters
	tabOvs   = []float64{20e-3, 24e-3, 28e-3, 30e-3, 35e-3, 38e-3}        // table J3.3M: oversized hole diameters
	iTabJ34M *fun.DataInterp
	iTabStd  *fun.DataInterp
	iTabOvs  *fun.DataInterp
)

func init() {
	iTabJ34M = fun.NewDataInterp("lin", 1, bfDiams, tabJ34M)
	iTabStd = fun.NewDataInterp("lin", 1, bfDiams[:6], tabStd)
	iTabOvs = fun.NewDataInterp("lin", 1, bfDiams[:6], tabOvs)
}

// bolt material strength groups; see section J3.1 of AISC 360-16
var (
	groupA = map[string]bool{"A325": true, "A325M": true, "A354BC": true}
	groupB = map[string]bool{"A490": true, "A490M": true, "A354BD": true}
	groupC = map[string]bool{"F3043": true, "F3111": true}
)

// New returns a new bolt fastener
func New(diameter float64, steel *stl.Steel) *Bolt {
	return &Bolt{D: diameter, Steel: steel}
}

// GetName returns the metric designation of the bolt; e.g. "M16"
func (o *Bolt) GetName() string {
	return io.Sf("M%.0f", o.D*1000.0)
}

// GetArea returns the nominal cross-sectional area of the bolt
func (o *Bolt) GetArea() float64 {
	return math.Pi * o.D * o.D / 4.0
}

// GetGroup returns the bolt material strength group ("A", "B" or "C")
// according to section J3.1 of AISC 360-16, or "" for ungrouped steels
func (o *Bolt) GetGroup() string {
	switch {
	case groupA[o.Steel.Name]:
		return "A"
	case groupB[o.Steel.Name]:
		return "B"
	case groupC[o.Steel.Name]:
		return "C"
	}
	return ""
}

// GetMinDistanceBetweenCenters returns the minimum distance between centers
// of standard, oversized or slotted holes according to section J3.3 of
// AISC 360-16
func (o *Bolt) GetMinDistanceBetweenCenters() float64 {
	return (2.0 + 2.0/3.0) * o.D
}

// GetRecommendedDistanceBetweenCenters returns the preferred distance between
// centers of holes according to section J3.3 of AISC 360-16
func (o *Bolt) GetRecommendedDistanceBetweenCenters() float64 {
	return 3.0 * o.D
}

// GetMinimumEdgeDistanceJ34M returns the minimum distance from the center of
// a standard hole to the edge of the connected part according to table J3.4M
// of AISC 360-16
func (o *Bolt) GetMinimumEdgeDistanceJ34M() float64 {
	if o.D <= 36e-3 {
		return iTabJ34M.P(o.D)
	}
	return 1.25 * o.D
}

// GetNominalHoleDiameter returns the nominal hole diameter according to table
// J3.3M of AISC 360-16
func (o *Bolt) GetNominalHoleDiameter(oversized bool) float64 {
	if oversized {
		if o.D >= 36e-3 {
			return o.D + 8e-3
		}
		return iTabOvs.P(o.D)
	}
	if o.D >= 36e-3 {
		return o.D + 3e-3
	}
	return iTabStd.P(o.D)
}

// GetNominalTensileStrength returns the nominal tensile strength of the
// fastener according to table J3.2 of AISC 360-16
func (o *Bolt) GetNominalTensileStrength() float64 {
	area := o.GetArea()
	switch o.GetGroup() {
	case "A":
		return area * 620e6
	case "B":
		return area * 780e6
	case "C":
		return area * 1040e6
	}
	if o.Steel.Name == "A307" {
		return area * 310e6
	}
	return area * 0.75 * o.Steel.Fu
}

// GetDesignTensileStrength returns the design tensile strength of the bolt
// according to section J3.6 of AISC 360-16
func (o *Bolt) GetDesignTensileStrength() float64 {
	return 0.75 * o.GetNominalTensileStrength()
}

// GetNominalShearStrength returns the nominal shear strength of the fastener
// according to table J3.2 of AISC 360-16. threadsExcluded indicates that
// threads and the transition area of the shank are excluded from the shear
// plane
func (o *Bolt) GetNominalShearStrength(threadsExcluded bool) float64 {
	area := o.GetArea()
	switch o.GetGroup() {
	case "A":
		if threadsExcluded {
			return area * 469e6
		}
		return area * 372e6
	case "B":
		if threadsExcluded {
			return area * 579e6
		}
		return area * 469e6
	case "C":
		if threadsExcluded {
			return area * 779e6
		}
		return area * 620e6
	}
	if o.Steel.Name == "A307" {
		return area * 186e6
	}
	if threadsExcluded {
		return area * 0.563 * o.Steel.Fu
	}
	return area * 0.45 * o.Steel.Fu
}

// GetDesignShearStrength returns the design shear strength of the bolt
// according to section J3.6 of AISC 360-16
func (o *Bolt) GetDesignShearStrength(threadsExcluded bool) float64 {
	return 0.75 * o.GetNominalShearStrength(threadsExcluded)
}

// boltData is the serialization form of Bolt; the steel grade is stored by
// name and resolved through the stl registry
type boltData struct {
	D     float64 `json:"d"`
	Steel string  `json:"steel"`
}

// MarshalJSON encodes the bolt
func (o *Bolt) MarshalJSON() ([]byte, error) {
	return json.Marshal(boltData{D: o.D, Steel: o.Steel.Name})
}

// UnmarshalJSON decodes the bolt, resolving the steel grade by name
func (o *Bolt) UnmarshalJSON(b []byte) (err error) {
	var data boltData
	if err = json.Unmarshal(b, &data); err != nil {
		return
	}
	grade, err := stl.Get(data.Steel)
	if err != nil {
		return
	}
	o.D, o.Steel = data.D, grade
	return
}

// standard metric bolts, smallest to largest
var (
	M16 = New(16e-3, stl.A307)
	M20 = New(20e-3, stl.A307)
	M22 = New(22e-3, stl.A307)
	M24 = New(24e-3, stl.A307)
	M27 = New(27e-3, stl.A307)
	M30 = New(30e-3, stl.A307)
	M36 = New(36e-3, stl.A307)

	// StandardBolts holds the standard metric bolt sizes
	StandardBolts = []*Bolt{M16, M20, M22, M24, M27, M30, M36}
)

// GetBoltForHole returns the largest standard bolt whose nominal (standard)
// hole diameter is below holeDiameter+tol, or nil if no standard bolt fits
func GetBoltForHole(holeDiameter, tol float64) *Bolt {
	threshold := holeDiameter + tol
	for i := len(StandardBolts) - 1; i >= 0; i-- {
		b := StandardBolts[i]
		if b.GetNominalHoleDiameter(false) < threshold {
			return b
		}
	}
	return nil
}

// CheckStandardDiameter returns an error if the diameter is not one of the
// standard metric sizes for which the J3 tables are tabulated
func CheckStandardDiameter(d float64) error {
	for _, v := range bfDiams {
		if math.Abs(v-d) < 1e-10 {
			return nil
		}
	}
	return chk.Err("bolt diameter %g m is not a standard metric size", d)
}

// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bolt

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteel/stl"
)

// holeDiameterIncrement is the hole diameter increment used when computing
// net widths according to clause B4.3b of AISC 360-16
const holeDiameterIncrement = 2e-3

// Array represents a rectangular bolt array with nRows x nCols bolts at a
// uniform spacing. Rows run along the plate length; columns across the plate
// width. The edge margin on each side equals half the spacing, hence the
// gross width is (nCols+1)*dist and the gross length is (nRows+1)*dist
type Array struct {
	Bolt  *Bolt   `json:"bolt"`  // bolt type
	NRows int     `json:"nRows"` // number of rows
	NCols int     `json:"nCols"` // number of columns
	Dist  float64 `json:"dist"`  // spacing between rows and columns
}

// NewArray returns a bolt array. A non-positive dist defaults to the
// recommended three diameters
func NewArray(b *Bolt, nRows, nCols int, dist float64) *Array {
	if dist <= 0 {
		dist = b.GetRecommendedDistanceBetweenCenters()
	}
	return &Array{Bolt: b, NRows: nRows, NCols: nCols, Dist: dist}
}

// GetNumBolts returns the number of bolts in the array
func (o *Array) GetNumBolts() int {
	return o.NRows * o.NCols
}

// GetWidth returns the gross width taken up by the array
func (o *Array) GetWidth() float64 {
	return float64(o.NCols+1) * o.Dist
}

// GetLength returns the gross length taken up by the array
func (o *Array) GetLength() float64 {
	return float64(o.NRows+1) * o.Dist
}

// GetNetWidth returns the net width after deducting one hole per column from
// the gross width; the hole diameter is increased by diameterIncrement
func (o *Array) GetNetWidth(diameterIncrement float64) float64 {
	holeDia := o.Bolt.GetNominalHoleDiameter(false)
	return o.GetWidth() - float64(o.NCols)*(holeDia+diameterIncrement)
}

// CheckSpacing returns an error if the spacing violates the minimum distance
// between centers of section J3.3 of AISC 360-16
func (o *Array) CheckSpacing() error {
	dmin := o.Bolt.GetMinDistanceBetweenCenters()
	if o.Dist < dmin {
		return chk.Err("bolt spacing %g m is smaller than the minimum %g m", o.Dist, dmin)
	}
	return nil
}

// Plate represents a bolted plate
type Plate struct {
	Array *Array     // bolt array
	T     float64    // plate thickness
	Steel *stl.Steel // plate steel grade
}

// NewPlate returns a new bolted plate
func NewPlate(array *Array, thickness float64, steel *stl.Steel) *Plate {
	return &Plate{Array: array, T: thickness, Steel: steel}
}

// GetWidth returns the plate gross width
func (o *Plate) GetWidth() float64 {
	return o.Array.GetWidth()
}

// GetLength returns the plate length
func (o *Plate) GetLength() float64 {
	return o.Array.GetLength()
}

// GetGrossArea returns the gross cross-sectional area of the plate
func (o *Plate) GetGrossArea() float64 {
	return o.GetWidth() * o.T
}

// GetNetWidth returns the net width of the plate according to clause B4.3b
// of AISC 360-16
func (o *Plate) GetNetWidth() float64 {
	return o.Array.GetNetWidth(holeDiameterIncrement)
}

// GetNetArea returns the net cross-sectional area of the plate
func (o *Plate) GetNetArea() float64 {
	return o.GetNetWidth() * o.T
}

// GetFilletMinimumLeg returns the minimum leg size for a fillet bead welding
// this plate to a part of thickness otherThickness; table J2.4 of AISC 360
func (o *Plate) GetFilletMinimumLeg(otherThickness float64) float64 {
	return stl.FilletWeldMinimumLegSheets(o.T, otherThickness)
}

// GetFilletMaximumLeg returns the maximum leg size for a fillet bead welding
// this plate to a part of thickness otherThickness; section J2.2b of AISC 360
func (o *Plate) GetFilletMaximumLeg(otherThickness float64) float64 {
	return stl.FilletWeldMaximumLegSheets(o.T, otherThickness)
}

// GetMinThickness returns the minimum plate thickness required to resist the
// design force Pd, considering yielding in the gross section and tension
// fracture in the net section
func (o *Plate) GetMinThickness(Pd float64) float64 {
	tA := Pd / 0.9 / o.Steel.Fy / o.GetWidth()     // yielding in the gross section
	tB := Pd / 0.75 / o.Steel.Fu / o.GetNetWidth() // tension fracture in the net section
	if tA > tB {
		return tA
	}
	return tB
}

// plateData is the serialization form of Plate
type plateData struct {
	Array *Array  `json:"array"`
	T     float64 `json:"thickness"`
	Steel string  `json:"steel"`
}

// MarshalJSON encodes the plate
func (o *Plate) MarshalJSON() ([]byte, error) {
	return json.Marshal(plateData{Array: o.Array, T: o.T, Steel: o.Steel.Name})
}

// UnmarshalJSON decodes the plate, resolving the steel grade by name
func (o *Plate) UnmarshalJSON(b []byte) (err error) {
	var data plateData
	if err = json.Unmarshal(b, &data); err != nil {
		return
	}
	grade, err := stl.Get(data.Steel)
	if err != nil {
		return
	}
	o.Array, o.T, o.Steel = data.Array, data.T, grade
	return
}

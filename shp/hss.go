// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteel/stl"
)

// HSS is a rectangular hollow structural section from the AISC metric tables.
// Wall thickness is the design one (0.93·nominal)
type HSS struct {
	Name string  // designation
	A    float64 // gross area
	H    float64 // overall height
	B    float64 // overall width
	T    float64 // design wall thickness
	Iz   float64 // major axis second moment of area
	Iy   float64 // minor axis second moment of area
	Rz   float64 // major axis radius of gyration
	Ry   float64 // minor axis radius of gyration
	Sz   float64 // major axis elastic section modulus
	Sy   float64 // minor axis elastic section modulus
	Zz   float64 // major axis plastic section modulus
	Zy   float64 // minor axis plastic section modulus
	J    float64 // torsional constant
}

// hssTable holds a subset of the AISC metric rectangular HSS shapes
var hssTable = map[string]*HSS{
	"HSS152X152X6.4": {"HSS152X152X6.4", 3420e-6, 152.4e-3, 152.4e-3, 5.92e-3, 12.1e-6, 12.1e-6, 59.4e-3, 59.4e-3, 158e-6, 158e-6, 185e-6, 185e-6, 19.8e-6},
	"HSS254X254X9.5": {"HSS254X254X9.5", 8710e-6, 254e-3, 254e-3, 8.86e-3, 87.3e-6, 87.3e-6, 100e-3, 100e-3, 687e-6, 687e-6, 806e-6, 806e-6, 139e-6},
}

// FindHSS returns a rectangular HSS profile from the table
func FindHSS(name string) (*HSS, error) {
	prof, ok := hssTable[name]
	if !ok {
		return nil, chk.Err("HSS shape %q is not available in 'shp' database", name)
	}
	return prof, nil
}

// GetName returns the designation
func (o *HSS) GetName() string { return o.Name }

// GetKind returns the profile family
func (o *HSS) GetKind() string { return "HSS" }

// GetA returns the gross area
func (o *HSS) GetA() float64 { return o.A }

// GetIy returns the minor axis second moment of area
func (o *HSS) GetIy() float64 { return o.Iy }

// GetIz returns the major axis second moment of area
func (o *HSS) GetIz() float64 { return o.Iz }

// GetRy returns the minor axis radius of gyration
func (o *HSS) GetRy() float64 { return o.Ry }

// GetRz returns the major axis radius of gyration
func (o *HSS) GetRz() float64 { return o.Rz }

// GetSy returns the minor axis elastic section modulus
func (o *HSS) GetSy() float64 { return o.Sy }

// GetSz returns the major axis elastic section modulus
func (o *HSS) GetSz() float64 { return o.Sz }

// GetZy returns the minor axis plastic section modulus
func (o *HSS) GetZy() float64 { return o.Zy }

// GetZz returns the major axis plastic section modulus
func (o *HSS) GetZz() float64 { return o.Zz }

// GetFlangeWidth returns the overall width
func (o *HSS) GetFlangeWidth() float64 { return o.B }

// GetEffectiveArea returns the effective area
func (o *HSS) GetEffectiveArea() float64 { return o.A }

// SlendernessCheck returns the worst λ/λr ratio of the walls
func (o *HSS) SlendernessCheck(steel *stl.Steel) float64 {
	sqEFy := math.Sqrt(steel.E / steel.Fy)
	lambda := (math.Max(o.B, o.H) - 3.0*o.T) / o.T
	return lambda / (1.40 * sqEFy) // case 6 of table B4.1a
}

// GetClassification returns the section classification in compression
func (o *HSS) GetClassification(steel *stl.Steel) Classif {
	sqEFy := math.Sqrt(steel.E / steel.Fy)
	lambda := (math.Max(o.B, o.H) - 3.0*o.T) / o.T
	return classify(lambda, 1.12*sqEFy, 1.40*sqEFy)
}

// GetTorsionalElasticBucklingStress returns the torsional elastic buckling
// stress of the member according to equation E4-2 of AISC 360-16 with a
// vanishing warping constant
func (o *HSS) GetTorsionalElasticBucklingStress(steel *stl.Steel, effectiveLengthX float64) (float64, error) {
	G := shearModulus(steel)
	return G * o.J / (o.Iz + o.Iy), nil
}

// GetPlasticMoment returns the plastic moment Fy·Z
func (o *HSS) GetPlasticMoment(steel *stl.Steel, majorAxis bool) float64 {
	if majorAxis {
		return steel.Fy * o.Zz
	}
	return steel.Fy * o.Zy
}

// GetLateralTorsionalBucklingLimit returns the flexural strength;
// lateral-torsional buckling does not govern compact HSS (section F7)
func (o *HSS) GetLateralTorsionalBucklingLimit(steel *stl.Steel, Lb, Cb float64, majorAxis bool) float64 {
	return o.GetNominalFlexuralStrength(steel, Lb, Cb, majorAxis)
}

// GetNominalFlexuralStrength returns the nominal flexural strength of a
// compact section according to section F7 of AISC 360-16
func (o *HSS) GetNominalFlexuralStrength(steel *stl.Steel, lateralUnbracedLength, Cb float64, majorAxis bool) float64 {
	return o.GetPlasticMoment(steel, majorAxis)
}

// GetDesignShearStrength returns the design shear strength according to
// section G4 of AISC 360-16
func (o *HSS) GetDesignShearStrength(steel *stl.Steel, majorAxis bool) float64 {
	var Aw float64
	if majorAxis {
		Aw = 2.0 * (o.H - 3.0*o.T) * o.T
	} else {
		Aw = 2.0 * (o.B - 3.0*o.T) * o.T
	}
	return 0.9 * 0.6 * steel.Fy * Aw
}

// CHSS is a circular hollow structural section from the AISC metric tables
type CHSS struct {
	Name string  // designation
	A    float64 // gross area
	D    float64 // outer diameter
	T    float64 // design wall thickness
	I    float64 // second moment of area (both axes)
	R    float64 // radius of gyration
	S    float64 // elastic section modulus
	Z    float64 // plastic section modulus
}

// chssTable holds a subset of the AISC metric round HSS shapes
var chssTable = map[string]*CHSS{
	"HSS141X6.6": {"HSS141X6.6", 2790e-6, 141.3e-3, 6.15e-3, 6.33e-6, 47.9e-3, 89.6e-6, 120e-6},
	"HSS406X12.7": {"HSS406X12.7", 14600e-6, 406.4e-3, 11.8e-3, 28.5e-6, 140e-3, 1400e-6, 1830e-6},
}

// FindCHSS returns a round HSS profile from the table
func FindCHSS(name string) (*CHSS, error) {
	prof, ok := chssTable[name]
	if !ok {
		return nil, chk.Err("CHSS shape %q is not available in 'shp' database", name)
	}
	return prof, nil
}

// GetName returns the designation
func (o *CHSS) GetName() string { return o.Name }

// GetKind returns the profile family
func (o *CHSS) GetKind() string { return "CHSS" }

// GetA returns the gross area
func (o *CHSS) GetA() float64 { return o.A }

// GetIy returns the second moment of area
func (o *CHSS) GetIy() float64 { return o.I }

// GetIz returns the second moment of area
func (o *CHSS) GetIz() float64 { return o.I }

// GetRy returns the radius of gyration
func (o *CHSS) GetRy() float64 { return o.R }

// GetRz returns the radius of gyration
func (o *CHSS) GetRz() float64 { return o.R }

// GetSy returns the elastic section modulus
func (o *CHSS) GetSy() float64 { return o.S }

// GetSz returns the elastic section modulus
func (o *CHSS) GetSz() float64 { return o.S }

// GetZy returns the plastic section modulus
func (o *CHSS) GetZy() float64 { return o.Z }

// GetZz returns the plastic section modulus
func (o *CHSS) GetZz() float64 { return o.Z }

// GetFlangeWidth returns the outer diameter
func (o *CHSS) GetFlangeWidth() float64 { return o.D }

// GetEffectiveArea returns the effective area
func (o *CHSS) GetEffectiveArea() float64 { return o.A }

// SlendernessCheck returns the λ/λr ratio of the wall
func (o *CHSS) SlendernessCheck(steel *stl.Steel) float64 {
	return (o.D / o.T) / (0.11 * steel.E / steel.Fy) // case 9 of table B4.1a
}

// GetClassification returns the section classification in compression
func (o *CHSS) GetClassification(steel *stl.Steel) Classif {
	EFy := steel.E / steel.Fy
	return classify(o.D/o.T, 0.07*EFy, 0.11*EFy)
}

// GetTorsionalElasticBucklingStress returns an unbounded stress: torsional
// buckling does not govern round sections
func (o *CHSS) GetTorsionalElasticBucklingStress(steel *stl.Steel, effectiveLengthX float64) (float64, error) {
	return math.Inf(1), nil
}

// GetPlasticMoment returns the plastic moment Fy·Z
func (o *CHSS) GetPlasticMoment(steel *stl.Steel, majorAxis bool) float64 {
	return steel.Fy * o.Z
}

// GetLateralTorsionalBucklingLimit returns the flexural strength;
// lateral-torsional buckling does not apply to round sections (section F8)
func (o *CHSS) GetLateralTorsionalBucklingLimit(steel *stl.Steel, Lb, Cb float64, majorAxis bool) float64 {
	return o.GetNominalFlexuralStrength(steel, Lb, Cb, majorAxis)
}

// GetNominalFlexuralStrength returns the nominal flexural strength of a
// compact section according to section F8 of AISC 360-16
func (o *CHSS) GetNominalFlexuralStrength(steel *stl.Steel, lateralUnbracedLength, Cb float64, majorAxis bool) float64 {
	return o.GetPlasticMoment(steel, majorAxis)
}

// GetDesignShearStrength returns the design shear strength according to
// section G5 of AISC 360-16 with Fcr = 0.6·Fy
func (o *CHSS) GetDesignShearStrength(steel *stl.Steel, majorAxis bool) float64 {
	return 0.9 * 0.6 * steel.Fy * o.A / 2.0
}

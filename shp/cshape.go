// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteel/stl"
)

// C is a channel profile from the AISC metric tables
type C struct {
	Name string  // designation
	A    float64 // gross area
	D    float64 // depth
	Bf   float64 // flange width
	Tf   float64 // flange thickness
	Tw   float64 // web thickness
	Iz   float64 // major axis second moment of area
	Iy   float64 // minor axis second moment of area
	Rz   float64 // major axis radius of gyration
	Ry   float64 // minor axis radius of gyration
	Sz   float64 // major axis elastic section modulus
	Sy   float64 // minor axis elastic section modulus
	Zz   float64 // major axis plastic section modulus
	Zy   float64 // minor axis plastic section modulus
}

// cTable holds a subset of the AISC metric C shapes
var cTable = map[string]*C{
	"C250X30":  {"C250X30", 3790e-6, 254e-3, 69e-3, 11.1e-3, 9.6e-3, 32.8e-6, 1.17e-6, 93e-3, 17.6e-3, 258e-6, 24.3e-6, 310e-6, 46.4e-6},
	"C380X74":  {"C380X74", 9480e-6, 381e-3, 94e-3, 16.5e-3, 18.2e-3, 168e-6, 4.58e-6, 133e-3, 22e-3, 882e-6, 61.8e-6, 1060e-6, 120e-6},
}

// FindC returns a C profile from the table
func FindC(name string) (*C, error) {
	prof, ok := cTable[name]
	if !ok {
		return nil, chk.Err("C shape %q is not available in 'shp' database", name)
	}
	return prof, nil
}

// GetName returns the designation
func (o *C) GetName() string { return o.Name }

// GetKind returns the profile family
func (o *C) GetKind() string { return "C" }

// GetA returns the gross area
func (o *C) GetA() float64 { return o.A }

// GetIy returns the minor axis second moment of area
func (o *C) GetIy() float64 { return o.Iy }

// GetIz returns the major axis second moment of area
func (o *C) GetIz() float64 { return o.Iz }

// GetRy returns the minor axis radius of gyration
func (o *C) GetRy() float64 { return o.Ry }

// GetRz returns the major axis radius of gyration
func (o *C) GetRz() float64 { return o.Rz }

// GetSy returns the minor axis elastic section modulus
func (o *C) GetSy() float64 { return o.Sy }

// GetSz returns the major axis elastic section modulus
func (o *C) GetSz() float64 { return o.Sz }

// GetZy returns the minor axis plastic section modulus
func (o *C) GetZy() float64 { return o.Zy }

// GetZz returns the major axis plastic section modulus
func (o *C) GetZz() float64 { return o.Zz }

// GetFlangeWidth returns the flange width
func (o *C) GetFlangeWidth() float64 { return o.Bf }

// GetEffectiveArea returns the effective area
func (o *C) GetEffectiveArea() float64 { return o.A }

// SlendernessCheck returns the worst λ/λr ratio among flange and web
func (o *C) SlendernessCheck(steel *stl.Steel) float64 {
	sqEFy := math.Sqrt(steel.E / steel.Fy)
	flange := o.Bf / o.Tf / (0.56 * sqEFy)          // unstiffened element
	web := (o.D - 2.0*o.Tf) / o.Tw / (1.49 * sqEFy) // stiffened element
	return math.Max(flange, web)
}

// GetClassification returns the section classification in compression
func (o *C) GetClassification(steel *stl.Steel) Classif {
	sqEFy := math.Sqrt(steel.E / steel.Fy)
	flange := classify(o.Bf/o.Tf, 0.38*sqEFy, 0.56*sqEFy)
	web := classify((o.D-2.0*o.Tf)/o.Tw, 1.49*sqEFy, 1.49*sqEFy)
	return worst(flange, web)
}

// GetTorsionalElasticBucklingStress is not implemented for singly symmetric
// channels (flexural-torsional buckling per equation E4-3 of AISC 360-16
// requires the shear center position, which is not tabulated here)
func (o *C) GetTorsionalElasticBucklingStress(steel *stl.Steel, effectiveLengthX float64) (float64, error) {
	return 0, chk.Err("torsional elastic buckling stress of C shapes is not implemented")
}

// GetPlasticMoment returns the plastic moment Fy·Z
func (o *C) GetPlasticMoment(steel *stl.Steel, majorAxis bool) float64 {
	if majorAxis {
		return steel.Fy * o.Zz
	}
	return steel.Fy * o.Zy
}

// GetLateralTorsionalBucklingLimit returns the major axis flexural strength
// limited by lateral-torsional buckling; the conservative elastic limit
// Cb·π²·E/(Lb/ry)²·Sz capped at the plastic moment is used for channels
func (o *C) GetLateralTorsionalBucklingLimit(steel *stl.Steel, Lb, Cb float64, majorAxis bool) float64 {
	return o.GetNominalFlexuralStrength(steel, Lb, Cb, majorAxis)
}

// GetNominalFlexuralStrength returns the nominal flexural strength of the
// channel. Major axis: plastic moment with a conservative elastic
// lateral-torsional buckling cap; minor axis: section F6 of AISC 360-16
func (o *C) GetNominalFlexuralStrength(steel *stl.Steel, lateralUnbracedLength, Cb float64, majorAxis bool) float64 {
	Fy, E := steel.Fy, steel.E
	if !majorAxis {
		Mp := Fy * o.Zy
		if limit := 1.6 * Fy * o.Sy; Mp > limit {
			Mp = limit
		}
		return Mp
	}
	Mp := Fy * o.Zz
	Lp := 1.76 * o.Ry * math.Sqrt(E/Fy)
	Lb := lateralUnbracedLength
	if Lb <= Lp {
		return Mp
	}
	sr := Lb / o.Ry
	Mn := Cb * math.Pi * math.Pi * E / (sr * sr) * o.Sz
	if Mn > Mp {
		Mn = Mp
	}
	return Mn
}

// GetDesignShearStrength returns the design shear strength according to
// section G of AISC 360-16
func (o *C) GetDesignShearStrength(steel *stl.Steel, majorAxis bool) float64 {
	if majorAxis {
		Aw := o.D * o.Tw
		return 1.0 * 0.6 * steel.Fy * Aw
	}
	Af := 2.0 * o.Bf * o.Tf
	return 0.9 * 0.6 * steel.Fy * Af
}

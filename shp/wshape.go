// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteel/stl"
)

// classify selects the classification of a plate element with slenderness λ
// from the compact and noncompact limits λp and λr
func classify(lambda, lambdaP, lambdaR float64) Classif {
	switch {
	case lambda <= lambdaP:
		return Compact
	case lambda <= lambdaR:
		return Noncompact
	case lambda <= 2.0*lambdaR:
		return Slender
	}
	return TooSlender
}

// worst returns the worst of two classifications
func worst(a, b Classif) Classif {
	if b > a {
		return b
	}
	return a
}

// shearModulus returns G from the elastic constants of the grade
func shearModulus(steel *stl.Steel) float64 {
	return steel.E / (2.0 * (1.0 + steel.Nu))
}

// W is a wide-flange (I) profile from the AISC metric tables
type W struct {
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
	J    float64 // torsional constant
	Cw   float64 // warping constant
}

// wTable holds a subset of the AISC metric W shapes
var wTable = map[string]*W{
	"W200X46.1": {"W200X46.1", 5890e-6, 203e-3, 203e-3, 11e-3, 7.2e-3, 45.8e-6, 15.4e-6, 88.1e-3, 51.1e-3, 451e-6, 152e-6, 497e-6, 231e-6, 0.175e-6, 143e-9},
	"W310X97":   {"W310X97", 12300e-6, 308e-3, 305e-3, 15.4e-3, 9.9e-3, 222e-6, 72.9e-6, 134e-3, 77e-3, 1440e-6, 478e-6, 1590e-6, 725e-6, 0.92e-6, 1560e-9},
	"W360X134":  {"W360X134", 17100e-6, 356e-3, 369e-3, 18e-3, 11.2e-3, 415e-6, 151e-6, 156e-3, 94e-3, 2330e-6, 817e-6, 2560e-6, 1240e-6, 1.51e-6, 4960e-9},
	"W460X74":   {"W460X74", 9450e-6, 457e-3, 190e-3, 14.5e-3, 9e-3, 333e-6, 16.6e-6, 188e-3, 41.9e-3, 1460e-6, 175e-6, 1650e-6, 271e-6, 0.518e-6, 811e-9},
}

// FindW returns a W profile from the table
func FindW(name string) (*W, error) {
	prof, ok := wTable[name]
	if !ok {
		return nil, chk.Err("W shape %q is not available in 'shp' database", name)
	}
	return prof, nil
}

// WNames returns the designations of the tabulated W profiles
func WNames() (names []string) {
	for name := range wTable {
		names = append(names, name)
	}
	return
}

// GetName returns the designation
func (o *W) GetName() string { return o.Name }

// GetKind returns the profile family
func (o *W) GetKind() string { return "W" }

// GetA returns the gross area
func (o *W) GetA() float64 { return o.A }

// GetIy returns the minor axis second moment of area
func (o *W) GetIy() float64 { return o.Iy }

// GetIz returns the major axis second moment of area
func (o *W) GetIz() float64 { return o.Iz }

// GetRy returns the minor axis radius of gyration
func (o *W) GetRy() float64 { return o.Ry }

// GetRz returns the major axis radius of gyration
func (o *W) GetRz() float64 { return o.Rz }

// GetSy returns the minor axis elastic section modulus
func (o *W) GetSy() float64 { return o.Sy }

// GetSz returns the major axis elastic section modulus
func (o *W) GetSz() float64 { return o.Sz }

// GetZy returns the minor axis plastic section modulus
func (o *W) GetZy() float64 { return o.Zy }

// GetZz returns the major axis plastic section modulus
func (o *W) GetZz() float64 { return o.Zz }

// GetFlangeWidth returns the flange width
func (o *W) GetFlangeWidth() float64 { return o.Bf }

// GetEffectiveArea returns the effective area
func (o *W) GetEffectiveArea() float64 { return o.A }

// SlendernessCheck returns the worst λ/λr ratio among flange and web
func (o *W) SlendernessCheck(steel *stl.Steel) float64 {
	sqEFy := math.Sqrt(steel.E / steel.Fy)
	flange := o.Bf / 2.0 / o.Tf / (0.56 * sqEFy) // case 1 of table B4.1a
	web := (o.D - 2.0*o.Tf) / o.Tw / (1.49 * sqEFy) // case 5 of table B4.1a
	return math.Max(flange, web)
}

// GetClassification returns the section classification in compression
func (o *W) GetClassification(steel *stl.Steel) Classif {
	sqEFy := math.Sqrt(steel.E / steel.Fy)
	flange := classify(o.Bf/2.0/o.Tf, 0.38*sqEFy, 0.56*sqEFy)
	// webs in uniform compression are either nonslender or slender
	web := classify((o.D-2.0*o.Tf)/o.Tw, 1.49*sqEFy, 1.49*sqEFy)
	return worst(flange, web)
}

// GetTorsionalElasticBucklingStress returns the torsional elastic buckling
// stress of the member according to equation E4-2 of AISC 360-16 (doubly
// symmetric profile)
func (o *W) GetTorsionalElasticBucklingStress(steel *stl.Steel, effectiveLengthX float64) (float64, error) {
	G := shearModulus(steel)
	Lcz := effectiveLengthX
	return (math.Pi*math.Pi*steel.E*o.Cw/(Lcz*Lcz) + G*o.J) / (o.Iz + o.Iy), nil
}

// GetPlasticMoment returns the plastic moment Fy·Z
func (o *W) GetPlasticMoment(steel *stl.Steel, majorAxis bool) float64 {
	if majorAxis {
		return steel.Fy * o.Zz
	}
	return steel.Fy * o.Zy
}

// GetLateralTorsionalBucklingLimit returns the major axis flexural strength
// limited by lateral-torsional buckling according to equations F2-2 and F2-3
// of AISC 360-16
func (o *W) GetLateralTorsionalBucklingLimit(steel *stl.Steel, Lb, Cb float64, majorAxis bool) float64 {
	return o.GetNominalFlexuralStrength(steel, Lb, Cb, majorAxis)
}

// GetNominalFlexuralStrength returns the nominal flexural strength according
// to sections F2 (major axis) and F6 (minor axis) of AISC 360-16
func (o *W) GetNominalFlexuralStrength(steel *stl.Steel, lateralUnbracedLength, Cb float64, majorAxis bool) float64 {
	Fy, E := steel.Fy, steel.E
	if !majorAxis {
		Mp := Fy * o.Zy // F6-1
		if limit := 1.6 * Fy * o.Sy; Mp > limit {
			Mp = limit
		}
		return Mp
	}
	Mp := Fy * o.Zz // F2-1
	Lb := lateralUnbracedLength
	Lp := 1.76 * o.Ry * math.Sqrt(E/Fy) // F2-5
	if Lb <= Lp {
		return Mp
	}
	ho := o.D - o.Tf                              // distance between flange centroids
	rts := math.Sqrt(math.Sqrt(o.Iy*o.Cw) / o.Sz) // F2-7
	c := 1.0
	jc := o.J * c / (o.Sz * ho)
	Lr := 1.95 * rts * E / (0.7 * Fy) * math.Sqrt(jc+math.Sqrt(jc*jc+6.76*math.Pow(0.7*Fy/E, 2))) // F2-6
	if Lb <= Lr {
		Mn := Cb * (Mp - (Mp-0.7*Fy*o.Sz)*(Lb-Lp)/(Lr-Lp)) // F2-2
		if Mn > Mp {
			Mn = Mp
		}
		return Mn
	}
	sr := Lb / rts
	Fcr := Cb * math.Pi * math.Pi * E / (sr * sr) * math.Sqrt(1.0+0.078*jc*sr*sr) // F2-4
	Mn := Fcr * o.Sz                                                              // F2-3
	if Mn > Mp {
		Mn = Mp
	}
	return Mn
}

// GetDesignShearStrength returns the design shear strength according to
// section G of AISC 360-16. The major axis strength comes from the web
// (G2.1 with Cv1=1 and φv=1); the minor axis one from the flanges (G6)
func (o *W) GetDesignShearStrength(steel *stl.Steel, majorAxis bool) float64 {
	if majorAxis {
		Aw := o.D * o.Tw
		return 1.0 * 0.6 * steel.Fy * Aw
	}
	Af := 2.0 * o.Bf * o.Tf
	return 0.9 * 0.6 * steel.Fy * Af
}

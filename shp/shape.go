// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp implements structural steel section profiles and the ASTM/AISC
// 360-16 capacity checks over them. The z axis is the major bending axis and
// the y axis the minor one. All quantities are in SI units (Pa, m, N).
package shp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/stl"
)

// Classif defines the section classification regarding local buckling
type Classif int

// section classifications, ordered by increasing slenderness
const (
	Compact Classif = iota
	Noncompact
	Slender
	TooSlender
)

// String returns the classification name
func (o Classif) String() string {
	switch o {
	case Compact:
		return "compact"
	case Noncompact:
		return "noncompact"
	case Slender:
		return "slender"
	case TooSlender:
		return "too-slender"
	}
	return io.Sf("invalid(%d)", int(o))
}

// Profile defines the geometry-provider capability of a section profile.
// Implementations are table-backed W, C, HSS and CHSS profiles
type Profile interface {
	GetName() string                   // shape designation; e.g. "W460X74"
	GetKind() string                   // family: "W", "C", "HSS" or "CHSS"
	GetA() float64                     // gross area
	GetIy() float64                    // minor axis second moment of area
	GetIz() float64                    // major axis second moment of area
	GetRy() float64                    // minor axis radius of gyration
	GetRz() float64                    // major axis radius of gyration
	GetSy() float64                    // minor axis elastic section modulus
	GetSz() float64                    // major axis elastic section modulus
	GetZy() float64                    // minor axis plastic section modulus
	GetZz() float64                    // major axis plastic section modulus
	GetFlangeWidth() float64           // flange width (outer width for tubes)
	GetEffectiveArea() float64         // effective area Ae
	SlendernessCheck(steel *stl.Steel) float64 // worst λ/λr ratio of the plate elements
	GetClassification(steel *stl.Steel) Classif

	// code-specified member functions
	GetTorsionalElasticBucklingStress(steel *stl.Steel, effectiveLengthX float64) (float64, error)
	GetNominalFlexuralStrength(steel *stl.Steel, lateralUnbracedLength, Cb float64, majorAxis bool) float64
	GetLateralTorsionalBucklingLimit(steel *stl.Steel, Lb, Cb float64, majorAxis bool) float64
	GetDesignShearStrength(steel *stl.Steel, majorAxis bool) float64
	GetPlasticMoment(steel *stl.Steel, majorAxis bool) float64
}

// Shape combines a section profile with a steel grade and implements the
// ASTM/AISC 360-16 verification routines
type Shape struct {
	Prof  Profile    // geometry provider
	Steel *stl.Steel // steel grade
}

// NewShape returns a shape with ASTM/AISC verification routines
func NewShape(prof Profile, steel *stl.Steel) *Shape {
	return &Shape{Prof: prof, Steel: steel}
}

// GetName returns the profile designation
func (o *Shape) GetName() string {
	return o.Prof.GetName()
}

// GetDesignTensileStrength returns the design tensile strength of the section
// according to section D2 of AISC 360-16. Ae is the effective net area of
// section D3; a non-positive Ae means the gross area
func (o *Shape) GetDesignTensileStrength(Ae float64) float64 {
	Ag := o.Prof.GetA()
	if Ae <= 0 {
		Ae = Ag
	}
	yielding := 0.9 * o.Steel.Fy * Ag
	fracture := 0.75 * o.Steel.Fu * Ae
	if fracture < yielding {
		return fracture
	}
	return yielding
}

// GetFlexuralSlendernessRatio returns the flexural buckling slenderness ratio
// of the member; the worst of both axes. A slender section produces a printed
// warning since the results are then not valid
func (o *Shape) GetFlexuralSlendernessRatio(effectiveLengthY, effectiveLengthZ float64) float64 {
	if o.Prof.SlendernessCheck(o.Steel) > 1.01 {
		io.Pfred("shape %q has slender elements; results are not valid\n", o.GetName())
	}
	sr := effectiveLengthZ / o.Prof.GetRz()
	if srY := effectiveLengthY / o.Prof.GetRy(); srY > sr {
		sr = srY
	}
	return sr
}

// GetFlexuralCriticalSlendernessRatio returns the critical value of the
// flexural buckling slenderness ratio of the member
func (o *Shape) GetFlexuralCriticalSlendernessRatio(effectiveLengthY, effectiveLengthZ float64) float64 {
	sr := o.GetFlexuralSlendernessRatio(effectiveLengthY, effectiveLengthZ)
	return sr / math.Pi * math.Sqrt(o.Steel.Fy/o.Steel.E)
}

// GetFlexuralElasticBucklingStress returns the flexural elastic buckling
// stress of the member according to equation E3-4 of AISC 360-16
func (o *Shape) GetFlexuralElasticBucklingStress(effectiveLengthY, effectiveLengthZ float64) float64 {
	sr := o.GetFlexuralSlendernessRatio(effectiveLengthY, effectiveLengthZ)
	return math.Pi * math.Pi * o.Steel.E / (sr * sr)
}

// GetCriticalStressE returns the critical stress of the member according to
// equations E3-2 and E3-3 of AISC 360-16. Fe is the flexural or torsional
// elastic buckling stress. Slender and too-slender sections are not
// implemented and produce an error
func (o *Shape) GetCriticalStressE(effectiveLengthY, effectiveLengthZ float64, sectionClassif Classif, Fe float64) (float64, error) {
	if sectionClassif >= Slender {
		return 0, chk.Err("critical stress of %v members is not implemented", sectionClassif)
	}
	sr := o.GetFlexuralSlendernessRatio(effectiveLengthY, effectiveLengthZ)
	Fy := o.Steel.Fy
	Fratio := Fy / Fe
	threshold := 4.71 * math.Sqrt(o.Steel.E/Fy)
	if sr <= threshold || Fratio <= 2.25 {
		return math.Pow(0.658, Fratio) * Fy, nil // E3-2
	}
	return 0.877 * Fe, nil // E3-3
}

// GetFlexuralCriticalStress returns the flexural critical stress of the
// member according to equations E3-2 and E3-3 of AISC 360-16
func (o *Shape) GetFlexuralCriticalStress(effectiveLengthY, effectiveLengthZ float64, sectionClassif Classif) (float64, error) {
	Fe := o.GetFlexuralElasticBucklingStress(effectiveLengthY, effectiveLengthZ)
	return o.GetCriticalStressE(effectiveLengthY, effectiveLengthZ, sectionClassif, Fe)
}

// GetTorsionalCriticalStress returns the torsional critical stress of the
// member according to equations E4-2, E4-3 and E4-4 of AISC 360-16
func (o *Shape) GetTorsionalCriticalStress(effectiveLengthX, effectiveLengthY, effectiveLengthZ float64, sectionClassif Classif) (float64, error) {
	Fe, err := o.Prof.GetTorsionalElasticBucklingStress(o.Steel, effectiveLengthX)
	if err != nil {
		return 0, err
	}
	return o.GetCriticalStressE(effectiveLengthY, effectiveLengthZ, sectionClassif, Fe)
}

// GetNominalCompressiveStrength returns the nominal compressive strength of
// the member according to equation E3-1 of AISC 360-16. The flexural path is
// taken when the torsional effective length does not exceed the flexural ones
func (o *Shape) GetNominalCompressiveStrength(effectiveLengthX, effectiveLengthY, effectiveLengthZ float64, sectionClassif Classif) (float64, error) {
	Ag := o.Prof.GetA()
	var Fcr float64
	var err error
	if effectiveLengthX <= math.Max(effectiveLengthY, effectiveLengthZ) {
		Fcr, err = o.GetFlexuralCriticalStress(effectiveLengthY, effectiveLengthZ, sectionClassif)
	} else {
		Fcr, err = o.GetTorsionalCriticalStress(effectiveLengthX, effectiveLengthY, effectiveLengthZ, sectionClassif)
	}
	if err != nil {
		return 0, err
	}
	return Fcr * Ag, nil
}

// GetDesignCompressiveStrength returns the design compressive strength of the
// member according to section E1 of AISC 360-16
func (o *Shape) GetDesignCompressiveStrength(effectiveLengthX, effectiveLengthY, effectiveLengthZ float64, sectionClassif Classif) (float64, error) {
	Pn, err := o.GetNominalCompressiveStrength(effectiveLengthX, effectiveLengthY, effectiveLengthZ, sectionClassif)
	if err != nil {
		return 0, err
	}
	return 0.9 * Pn, nil
}

// GetReferenceCompressiveStrength returns the compressive strength of the
// section without buckling effects (vanishing effective lengths)
func (o *Shape) GetReferenceCompressiveStrength(sectionClassif Classif) (float64, error) {
	return o.GetDesignCompressiveStrength(0.1, 0.1, 0.1, sectionClassif)
}

// GetDesignFlexuralStrength returns the design flexural strength of the
// section according to section F1 of AISC 360-16
func (o *Shape) GetDesignFlexuralStrength(lateralUnbracedLength, Cb float64, majorAxis bool) float64 {
	return 0.9 * o.Prof.GetNominalFlexuralStrength(o.Steel, lateralUnbracedLength, Cb, majorAxis)
}

// GetReferenceFlexuralStrength returns the major axis flexural strength of
// the section without lateral buckling effects
func (o *Shape) GetReferenceFlexuralStrength() float64 {
	return o.GetDesignFlexuralStrength(0.1, 1.0, true)
}

// GetYShearEfficiency returns the efficiency for shear along the y axis,
// resisted by the web (major axis shear)
func (o *Shape) GetYShearEfficiency(Vy float64) float64 {
	return math.Abs(Vy) / o.Prof.GetDesignShearStrength(o.Steel, true)
}

// GetZShearEfficiency returns the efficiency for shear along the z axis,
// resisted by the flanges (minor axis shear)
func (o *Shape) GetZShearEfficiency(Vz float64) float64 {
	return math.Abs(Vz) / o.Prof.GetDesignShearStrength(o.Steel, false)
}

// BiaxialResults holds the intermediate strengths of a biaxial bending
// interaction check
type BiaxialResults struct {
	CF    float64 // capacity factor
	NcRd  float64 // available axial strength
	McRdy float64 // available flexural strength, minor axis
	McRdz float64 // reference flexural strength, major axis
	MvRdz float64 // major axis flexural strength reduced by shear interaction
	MbRdz float64 // available flexural strength, major axis
}

// GetBiaxialBendingEfficiency returns the biaxial bending efficiency
// according to section H1 of AISC 360-16. Nd is negative in compression.
// chiN and chiLT are the axial and lateral buckling reduction factors
func (o *Shape) GetBiaxialBendingEfficiency(sectionClassif Classif, Nd, Myd, Mzd, Vyd, chiN, chiLT float64) (res BiaxialResults, err error) {
	if Nd < 0 { // compression
		NcRd0, err := o.GetReferenceCompressiveStrength(sectionClassif)
		if err != nil {
			return res, err
		}
		res.NcRd = chiN * NcRd0
	} else {
		res.NcRd = o.GetDesignTensileStrength(0)
	}
	ratioN := math.Abs(Nd) / res.NcRd
	res.McRdy = o.GetDesignFlexuralStrength(0, 1.0, false)
	res.McRdz = o.GetReferenceFlexuralStrength()
	res.MvRdz = res.McRdz // shear interaction reduction not considered
	res.MbRdz = chiLT * res.MvRdz
	ratioMz := math.Abs(Mzd) / res.MbRdz
	ratioMy := math.Abs(Myd) / res.McRdy
	if ratioN >= 0.2 {
		res.CF = ratioN + 8.0/9.0*(ratioMz+ratioMy) // H1-1a
	} else {
		res.CF = ratioN/2.0 + (ratioMz + ratioMy) // H1-1b
	}
	return
}

// GetProbableMaxMomentAtPlasticHinge returns the probable maximum moment at
// the plastic hinge according to clause 2.4.3 of AISC 358
func (o *Shape) GetProbableMaxMomentAtPlasticHinge(majorAxis bool) float64 {
	Mp := o.Prof.GetPlasticMoment(o.Steel, majorAxis)
	Cpr := o.Steel.GetPeakConnectionStrengthFactor()
	return Cpr * o.Steel.Ry * Mp
}

// GetFlangeMaximumBoltDiameter returns the maximum bolt diameter preventing
// beam flange tensile rupture according to equation 7.6-2M of AISC 358-16
func (o *Shape) GetFlangeMaximumBoltDiameter() float64 {
	bf2 := o.Prof.GetFlangeWidth() / 2.0
	return bf2*(1.0-o.Steel.Ry*o.Steel.Fy/(o.Steel.Rt*o.Steel.Fu)) - 3e-3
}

// shapeData is the serialization form of Shape; the profile is stored by
// family and designation and the steel grade by name
type shapeData struct {
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Steel string `json:"steel"`
}

// MarshalJSON encodes the shape
func (o *Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(shapeData{Kind: o.Prof.GetKind(), Name: o.Prof.GetName(), Steel: o.Steel.Name})
}

// UnmarshalJSON decodes the shape, resolving profile and steel grade through
// the registries
func (o *Shape) UnmarshalJSON(b []byte) (err error) {
	var data shapeData
	if err = json.Unmarshal(b, &data); err != nil {
		return
	}
	prof, err := Find(data.Kind, data.Name)
	if err != nil {
		return
	}
	grade, err := stl.Get(data.Steel)
	if err != nil {
		return
	}
	o.Prof, o.Steel = prof, grade
	return
}

// Find returns a profile from the family tables
func Find(kind, name string) (Profile, error) {
	switch kind {
	case "W":
		return FindW(name)
	case "C":
		return FindC(name)
	case "HSS":
		return FindHSS(name)
	case "CHSS":
		return FindCHSS(name)
	}
	return nil, chk.Err("profile family %q is not available in 'shp' database", kind)
}

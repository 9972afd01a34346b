// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package member combines a structural shape with end-connection data and
// computes length-dependent member capacities
package member

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteel/shp"
)

// Connection holds the member length and the end fixities. The fixity
// strings are "free" or "fixed"; end i is the near end and end j the far one
type Connection struct {
	L      float64 // member length
	Lb     float64 // lateral unbraced length
	RotI   string  // rotation fixity at end i
	TransI string  // translation fixity at end i
	RotJ   string  // rotation fixity at end j
	TransJ string  // translation fixity at end j
}

// NewConnection returns a connection with the given length and fixities
func NewConnection(L, Lb float64, rotI, transI, rotJ, transJ string) *Connection {
	return &Connection{L: L, Lb: Lb, RotI: rotI, TransI: transI, RotJ: rotJ, TransJ: transJ}
}

// GetEffectiveBucklingLengthCoefficientRecommended returns the effective
// buckling length coefficient K with the recommended design values of table
// C-A-7.1 of the AISC 360-16 commentary. A member free in rotation and
// translation at both ends is a mechanism and produces an error
func (o *Connection) GetEffectiveBucklingLengthCoefficientRecommended() (float64, error) {
	if o.RotI == "fixed" {
		if o.RotJ == "fixed" {
			if o.TransJ == "fixed" {
				return 0.65, nil // theoretical 0.5
			}
			return 1.2, nil // theoretical 1.0
		}
		if o.TransJ == "fixed" {
			return 0.80, nil // theoretical 0.7
		}
		return 2.1, nil // theoretical 2.0
	}
	if o.RotJ == "fixed" {
		if o.TransJ == "fixed" {
			return 0.80, nil
		}
		return 2.0, nil
	}
	if o.TransJ == "fixed" {
		return 1.0, nil
	}
	return 0, chk.Err("member free at both ends is a mechanism")
}

// IsCantilever tells whether the far end is free in both rotation and
// translation
func (o *Connection) IsCantilever() bool {
	return o.RotJ == "free" && o.TransJ == "free"
}

// BendingState holds the absolute moments at the quarter points of a lateral
// unbraced segment
type BendingState struct {
	Mmax float64 // maximum moment in the segment
	Ma   float64 // moment at the quarter point
	Mb   float64 // moment at the centerline
	Mc   float64 // moment at the three-quarter point
}

// GetLateralTorsionalBucklingModificationFactor returns the moment gradient
// factor Cb according to equation F1-1 of AISC 360-16
func (o *BendingState) GetLateralTorsionalBucklingModificationFactor() float64 {
	Mmax := math.Abs(o.Mmax)
	Ma := math.Abs(o.Ma)
	Mb := math.Abs(o.Mb)
	Mc := math.Abs(o.Mc)
	den := 2.5*Mmax + 3.0*Ma + 4.0*Mb + 3.0*Mc
	if den == 0 {
		return 1.0 // zero moment diagram is uniform
	}
	return 12.5 * Mmax / den
}

// ConnectedMember is a shape together with its end connection data. Member
// capacities depend on the effective length and on the moment gradient,
// unlike the reference capacities of the bare section
type ConnectedMember struct {
	Shape *shp.Shape  // cross section and steel grade
	Conn  *Connection // length and end fixities
}

// NewConnectedMember returns a connected member
func NewConnectedMember(shape *shp.Shape, conn *Connection) *ConnectedMember {
	return &ConnectedMember{Shape: shape, Conn: conn}
}

// GetCb returns the moment gradient factor of the member. Cantilevers take
// Cb = 1 as required by section F1 of AISC 360-16
func (o *ConnectedMember) GetCb(bending *BendingState) float64 {
	if o.Conn.IsCantilever() {
		return 1.0
	}
	return bending.GetLateralTorsionalBucklingModificationFactor()
}

// GetEffectiveLength returns the effective buckling length K·L
func (o *ConnectedMember) GetEffectiveLength() (float64, error) {
	k, err := o.Conn.GetEffectiveBucklingLengthCoefficientRecommended()
	if err != nil {
		return 0, err
	}
	return k * o.Conn.L, nil
}

// GetSlendernessRatio returns the compressive slenderness ratio using the
// minimum radius of gyration of the section
func (o *ConnectedMember) GetSlendernessRatio() (float64, error) {
	Lc, err := o.GetEffectiveLength()
	if err != nil {
		return 0, err
	}
	r := math.Min(o.Shape.Prof.GetRy(), o.Shape.Prof.GetRz())
	return Lc / r, nil
}

// GetElasticBucklingStress returns the flexural elastic buckling stress of
// the member according to equation E3-4 of AISC 360-16
func (o *ConnectedMember) GetElasticBucklingStress() (float64, error) {
	sr, err := o.GetSlendernessRatio()
	if err != nil {
		return 0, err
	}
	return math.Pi * math.Pi * o.Shape.Steel.E / (sr * sr), nil
}

// GetCriticalStress returns the critical compressive stress of the member
// according to equations E3-2 and E3-3 of AISC 360-16
func (o *ConnectedMember) GetCriticalStress() (float64, error) {
	sr, err := o.GetSlendernessRatio()
	if err != nil {
		return 0, err
	}
	Fe, err := o.GetElasticBucklingStress()
	if err != nil {
		return 0, err
	}
	Fy, E := o.Shape.Steel.Fy, o.Shape.Steel.E
	threshold := 4.71 * math.Sqrt(E/Fy)
	if sr <= threshold || Fy/Fe <= 2.25 {
		return math.Pow(0.658, Fy/Fe) * Fy, nil // E3-2
	}
	return 0.877 * Fe, nil // E3-3
}

// GetNominalCompressiveStrength returns the nominal compressive strength of
// the member according to equation E3-1 of AISC 360-16
func (o *ConnectedMember) GetNominalCompressiveStrength() (float64, error) {
	Fcr, err := o.GetCriticalStress()
	if err != nil {
		return 0, err
	}
	return Fcr * o.Shape.Prof.GetEffectiveArea(), nil
}

// GetZLateralTorsionalBucklingFlexuralStrength returns the major axis
// flexural strength limited by lateral-torsional buckling over the unbraced
// length of the member
func (o *ConnectedMember) GetZLateralTorsionalBucklingFlexuralStrength(bending *BendingState) float64 {
	Cb := o.GetCb(bending)
	return o.Shape.Prof.GetLateralTorsionalBucklingLimit(o.Shape.Steel, o.Conn.Lb, Cb, true)
}

// GetYLateralTorsionalBucklingFlexuralStrength returns the minor axis
// flexural strength of the member over the unbraced length; minor axis
// bending of the implemented profiles is not limited by lateral-torsional
// buckling, so Lb and Cb do not change the result
func (o *ConnectedMember) GetYLateralTorsionalBucklingFlexuralStrength(bending *BendingState) float64 {
	Cb := o.GetCb(bending)
	return o.Shape.Prof.GetLateralTorsionalBucklingLimit(o.Shape.Steel, o.Conn.Lb, Cb, false)
}

// GetZNominalFlexuralStrength returns the major axis nominal flexural
// strength of the member, reduced for holes in the tension flange according
// to section F13.1 of AISC 360-16. afgAfnRatio is the ratio of gross to net
// area of the tension flange; 1 means no holes
func (o *ConnectedMember) GetZNominalFlexuralStrength(bending *BendingState, afgAfnRatio float64) float64 {
	Mn := o.GetZLateralTorsionalBucklingFlexuralStrength(bending)
	st := o.Shape.Steel
	if afgAfnRatio > 1.0 && st.Fu < st.GetYt()*st.Fy*afgAfnRatio {
		if cap := st.Fu / afgAfnRatio * o.Shape.Prof.GetSz(); cap < Mn { // F13-1
			Mn = cap
		}
	}
	return Mn
}

// GetYNominalFlexuralStrength returns the minor axis nominal flexural
// strength of the member
func (o *ConnectedMember) GetYNominalFlexuralStrength(bending *BendingState) float64 {
	Cb := o.GetCb(bending)
	return o.Shape.Prof.GetNominalFlexuralStrength(o.Shape.Steel, o.Conn.Lb, Cb, false)
}

// GetCapacityFactor returns the combined capacity factor of the member
// according to section H1 of AISC 360-16, using the length-dependent member
// strengths. Nd is negative in compression; tensile axial loads are not
// implemented. gammaC is the partial factor dividing all three nominal
// member strengths; no resistance factor is applied here. afgAfnRatio is
// the gross to net tension flange area ratio for the F13.1 reduction of
// the major axis strength; 1 means no holes
func (o *ConnectedMember) GetCapacityFactor(Nd, Myd, Mzd, gammaC, afgAfnRatio float64, bendingY, bendingZ *BendingState) (res shp.BiaxialResults, err error) {
	if Nd > 0 {
		return res, chk.Err("capacity factor of members in tension is not implemented")
	}
	Pn, err := o.GetNominalCompressiveStrength()
	if err != nil {
		return res, err
	}
	res.NcRd = Pn / gammaC
	res.McRdy = o.GetYNominalFlexuralStrength(bendingY) / gammaC
	res.McRdz = o.GetZNominalFlexuralStrength(bendingZ, afgAfnRatio) / gammaC
	res.MvRdz = res.McRdz
	res.MbRdz = res.MvRdz
	ratioN := math.Abs(Nd) / res.NcRd
	ratioMy := math.Abs(Myd) / res.McRdy
	ratioMz := math.Abs(Mzd) / res.MbRdz
	if ratioN >= 0.2 {
		res.CF = ratioN + 8.0/9.0*(ratioMz+ratioMy) // H1-1a
	} else {
		res.CF = ratioN/2.0 + (ratioMz + ratioMy) // H1-1b
	}
	return
}

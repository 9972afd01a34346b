// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/stl"
)

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. tensile strength")

	prof, err := FindW("W310X97")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	shape := NewShape(prof, stl.A36)

	Ag := prof.GetA()
	chk.Float64(tst, "Ag", 1e-15, Ag, 12300e-6)

	// gross yielding governs: 0.9·fy·Ag = 2.7675 MN vs 0.75·fu·Ag = 3.69 MN
	chk.Float64(tst, "Nt (gross)", 1e-8, shape.GetDesignTensileStrength(0), 0.9*250e6*Ag)

	// small net area: fracture governs
	Ae := 0.5 * Ag
	chk.Float64(tst, "Nt (net)  ", 1e-8, shape.GetDesignTensileStrength(Ae), 0.75*400e6*Ae)
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. E3 critical stress: two regimes and continuity")

	prof, _ := FindW("W310X97")
	shape := NewShape(prof, stl.A36)
	E, Fy := stl.A36.E, stl.A36.Fy
	classif := prof.GetClassification(stl.A36)
	io.Pf("classification: %v\n", classif)

	// inelastic regime: short member
	L := 3.0
	sr := shape.GetFlexuralSlendernessRatio(L, L)
	chk.Float64(tst, "λ", 1e-12, sr, L/prof.GetRy())
	Fe := shape.GetFlexuralElasticBucklingStress(L, L)
	chk.Float64(tst, "Fe", 1e-6, Fe, math.Pi*math.Pi*E/(sr*sr))
	Fcr, err := shape.GetFlexuralCriticalStress(L, L, classif)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Fcr (E3-2)", 1e-6, Fcr, math.Pow(0.658, Fy/Fe)*Fy)

	// elastic regime: long member
	L = 12.0
	sr = shape.GetFlexuralSlendernessRatio(L, L)
	threshold := 4.71 * math.Sqrt(E/Fy)
	io.Pf("λ=%g threshold=%g\n", sr, threshold)
	if sr <= threshold {
		tst.Errorf("member must be in the elastic regime for this test\n")
		return
	}
	Fe = shape.GetFlexuralElasticBucklingStress(L, L)
	Fcr, err = shape.GetFlexuralCriticalStress(L, L, classif)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Fcr (E3-3)", 1e-6, Fcr, 0.877*Fe)

	// continuity at the regime boundary
	Lboundary := threshold * prof.GetRy()
	FeB := shape.GetFlexuralElasticBucklingStress(Lboundary, Lboundary)
	FcrA := math.Pow(0.658, Fy/FeB) * Fy
	FcrB := 0.877 * FeB
	io.Pf("boundary: FcrA=%g FcrB=%g\n", FcrA, FcrB)
	if math.Abs(FcrA-FcrB)/Fy > 5e-4 {
		tst.Errorf("branches disagree at the regime boundary: %g vs %g\n", FcrA, FcrB)
		return
	}
	Fcr, err = shape.GetFlexuralCriticalStress(Lboundary, Lboundary, classif)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Fcr (boundary)", 1e-6, Fcr, FcrA)

	// critical slenderness ratio
	crit := shape.GetFlexuralCriticalSlendernessRatio(Lboundary, Lboundary)
	chk.Float64(tst, "λc", 1e-12, crit, threshold/math.Pi*math.Sqrt(Fy/E))
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. compressive strength paths")

	prof, _ := FindW("W310X97")
	shape := NewShape(prof, stl.A36)
	classif := prof.GetClassification(stl.A36)

	// flexural path: torsional length does not dominate
	L := 4.0
	Pn, err := shape.GetNominalCompressiveStrength(L, L, L, classif)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	Fcr, _ := shape.GetFlexuralCriticalStress(L, L, classif)
	chk.Float64(tst, "Pn (flexural)", 1e-8, Pn, Fcr*prof.GetA())
	Pd, err := shape.GetDesignCompressiveStrength(L, L, L, classif)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "φPn", 1e-8, Pd, 0.9*Pn)

	// torsional path: dominant torsional length
	PnT, err := shape.GetNominalCompressiveStrength(2.0*L, L, L, classif)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	FeT, _ := prof.GetTorsionalElasticBucklingStress(stl.A36, 2.0*L)
	FcrT, err := shape.GetCriticalStressE(L, L, classif, FeT)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pn (torsional)", 1e-8, PnT, FcrT*prof.GetA())

	// reference strength approaches the squash load
	Pref, err := shape.GetReferenceCompressiveStrength(classif)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pref/φFyAg", 1e-3, Pref/(0.9*stl.A36.Fy*prof.GetA()), 1.0)

	// slender sections are rejected
	if _, err := shape.GetCriticalStressE(L, L, Slender, 200e6); err == nil {
		tst.Errorf("slender classification must fail\n")
		return
	}

	// round sections never buckle torsionally
	chss, _ := FindCHSS("HSS406X12.7")
	tube := NewShape(chss, stl.A500)
	PnC, err := tube.GetNominalCompressiveStrength(10.0, 1.0, 1.0, chss.GetClassification(stl.A500))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pn (CHSS torsional)", 1e-8, PnC, stl.A500.Fy*chss.GetA())

	// channel torsional buckling is not implemented
	cprof, _ := FindC("C380X74")
	channel := NewShape(cprof, stl.A36)
	if _, err := channel.GetNominalCompressiveStrength(10.0, 1.0, 1.0, cprof.GetClassification(stl.A36)); err == nil {
		tst.Errorf("channel torsional path must fail\n")
		return
	}
}

func Test_shape04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape04. H1 biaxial bending interaction")

	prof, _ := FindW("W310X97")
	shape := NewShape(prof, stl.A36)
	classif := prof.GetClassification(stl.A36)

	// tension with large axial ratio: H1-1a
	res, err := shape.GetBiaxialBendingEfficiency(classif, 1000e3, 20e3, 100e3, 0, 1.0, 1.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "NcRd", 1e-8, res.NcRd, shape.GetDesignTensileStrength(0))
	ratioN := 1000e3 / res.NcRd
	if ratioN < 0.2 {
		tst.Errorf("axial ratio must exceed 0.2 for this test\n")
		return
	}
	expected := ratioN + 8.0/9.0*(100e3/res.MbRdz+20e3/res.McRdy)
	chk.Float64(tst, "CF (H1-1a)", 1e-12, res.CF, expected)

	// small axial ratio: H1-1b
	res, err = shape.GetBiaxialBendingEfficiency(classif, 100e3, 20e3, 100e3, 0, 1.0, 1.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ratioN = 100e3 / res.NcRd
	if ratioN >= 0.2 {
		tst.Errorf("axial ratio must be below 0.2 for this test\n")
		return
	}
	expected = ratioN/2.0 + 100e3/res.MbRdz + 20e3/res.McRdy
	chk.Float64(tst, "CF (H1-1b)", 1e-12, res.CF, expected)

	// compression uses the reference compressive strength
	res, err = shape.GetBiaxialBendingEfficiency(classif, -1000e3, 0, 0, 0, 1.0, 1.0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	Pref, _ := shape.GetReferenceCompressiveStrength(classif)
	chk.Float64(tst, "NcRd (compression)", 1e-8, res.NcRd, Pref)
}

func Test_shape05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape05. connection design guards")

	prof, _ := FindW("W460X74")
	shape := NewShape(prof, stl.A992)

	// equation 7.6-2M
	bf2 := prof.GetFlangeWidth() / 2.0
	expected := bf2*(1.0-1.1*345e6/(1.1*450e6)) - 3e-3
	chk.Float64(tst, "dmax", 1e-12, shape.GetFlangeMaximumBoltDiameter(), expected)
	chk.Float64(tst, "dmax", 1e-6, shape.GetFlangeMaximumBoltDiameter(), 0.0191666667)

	// probable maximum moment at plastic hinge
	Mp := stl.A992.Fy * prof.GetZz()
	Cpr := (345e6 + 450e6) / (2.0 * 345e6)
	chk.Float64(tst, "Mpr", 1e-6, shape.GetProbableMaxMomentAtPlasticHinge(true), Cpr*1.1*Mp)
}

func Test_shape06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape06. flexural strength and shear efficiency")

	prof, _ := FindW("W460X74")
	shape := NewShape(prof, stl.A992)
	Fy := stl.A992.Fy

	// short unbraced length: plastic moment
	Mp := Fy * prof.GetZz()
	chk.Float64(tst, "Mn(Lb=0.1) ", 1e-8, prof.GetNominalFlexuralStrength(stl.A992, 0.1, 1.0, true), Mp)
	chk.Float64(tst, "φMn        ", 1e-8, shape.GetReferenceFlexuralStrength(), 0.9*Mp)

	// minor axis: F6 cap
	MpY := math.Min(Fy*prof.GetZy(), 1.6*Fy*prof.GetSy())
	chk.Float64(tst, "Mn minor   ", 1e-8, prof.GetNominalFlexuralStrength(stl.A992, 0, 1.0, false), MpY)

	// long unbraced length reduces the strength
	MnLong := prof.GetNominalFlexuralStrength(stl.A992, 8.0, 1.0, true)
	io.Pf("Mn(Lb=8m)=%g Mp=%g\n", MnLong, Mp)
	if MnLong >= Mp {
		tst.Errorf("lateral-torsional buckling must reduce the strength\n")
		return
	}

	// a larger Cb cannot exceed the plastic moment
	MnCb := prof.GetNominalFlexuralStrength(stl.A992, 8.0, 10.0, true)
	if MnCb > Mp+1e-9 {
		tst.Errorf("Mn must be capped at Mp\n")
		return
	}

	// shear efficiencies
	Vd := prof.GetDesignShearStrength(stl.A992, true)
	chk.Float64(tst, "Vd web", 1e-8, Vd, 0.6*Fy*prof.D*prof.Tw)
	chk.Float64(tst, "ηy", 1e-12, shape.GetYShearEfficiency(-0.5*Vd), 0.5)
	chk.Float64(tst, "ηz", 1e-12, shape.GetZShearEfficiency(0.25*shape.Prof.GetDesignShearStrength(stl.A992, false)), 0.25)
}

func Test_shape07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape07. JSON round trip for all families")

	for _, pair := range []struct {
		kind, name string
		steel      *stl.Steel
	}{
		{"W", "W460X74", stl.A992},
		{"C", "C380X74", stl.A36},
		{"HSS", "HSS254X254X9.5", stl.A500},
		{"CHSS", "HSS406X12.7", stl.A500},
	} {
		prof, err := Find(pair.kind, pair.name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		shape := NewShape(prof, pair.steel)
		blob, err := json.Marshal(shape)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		io.Pforan("%s\n", blob)
		var clone Shape
		if err := json.Unmarshal(blob, &clone); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.String(tst, clone.Prof.GetName(), pair.name)
		chk.String(tst, clone.Prof.GetKind(), pair.kind)
		chk.String(tst, clone.Steel.Name, pair.steel.Name)
		chk.Float64(tst, "A", 1e-15, clone.Prof.GetA(), prof.GetA())
	}

	// unknown shapes must fail
	if _, err := Find("W", "W999X999"); err == nil {
		tst.Errorf("lookup of unknown shape must fail\n")
		return
	}
	if _, err := Find("X", "W460X74"); err == nil {
		tst.Errorf("lookup of unknown family must fail\n")
		return
	}
}

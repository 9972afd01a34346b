// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/stl"
)

func Test_anchor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anchor01. rod strengths")

	// 1 in F1554 grade 36 rod
	rod := New("0", stl.F1554gr36, 0.0254, nil)
	Ag := rod.GetArea()
	chk.Float64(tst, "Ag", 1e-12, Ag, math.Pi*0.0254*0.0254/4.0)

	chk.Float64(tst, "Rt       ", 1e-8, rod.GetTensileStrength(), 400e6*Ag)
	chk.Float64(tst, "Rn       ", 1e-8, rod.GetNominalTensileStrength(), 0.75*400e6*Ag)
	chk.Float64(tst, "Rn shr N ", 1e-8, rod.GetNominalShearStrength("N"), 0.4*400e6*Ag)
	chk.Float64(tst, "Rn shr X ", 1e-8, rod.GetNominalShearStrength("X"), 0.5*400e6*Ag)
	chk.Float64(tst, "Rd       ", 1e-8, rod.GetDesignTensileStrength(PhiTension), 0.75*0.75*400e6*Ag)
	chk.Float64(tst, "Rd shr N ", 1e-8, rod.GetDesignShearStrength("N", PhiShear), 0.55*0.4*400e6*Ag)

	// tables
	chk.Float64(tst, "Abrg(1in)  ", 1e-15, rod.GetBearingArea(), 0.00096774)
	chk.Float64(tst, "dhole(1in) ", 1e-15, rod.GetNominalHoleDiameter(), 0.0460375)

	// pullout: ψ4·Abrg·8·fc
	fc := 25e6
	chk.Float64(tst, "pullout    ", 1e-8, rod.GetNominalPulloutStrength(fc, 1.0), 0.00096774*8.0*fc)
	chk.Float64(tst, "pullout ψ4 ", 1e-8, rod.GetNominalPulloutStrength(fc, 1.4), 1.4*0.00096774*8.0*fc)
	chk.Float64(tst, "pullout des", 1e-8, rod.GetDesignPulloutStrength(fc, 1.0, PhiPullout), 0.7*0.00096774*8.0*fc)
}

func Test_anchor02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anchor02. breakout cone polygon")

	// no position: must fail
	rod := New("0", stl.F1554gr36, 0.0254, nil)
	_, err := rod.GetConcreteBreakoutConePolygon(0.1)
	if err == nil {
		tst.Errorf("cone of an anchor with no position must fail\n")
		return
	}
	io.Pf("expected error: %v\n", err)

	// square of half-width 1.5·hef
	rod.Pos = &Pos{X: 1.0, Y: 2.0}
	cone, err := rod.GetConcreteBreakoutConePolygon(0.1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "ncontours", len(cone), 1)
	chk.Int(tst, "nvertices", len(cone[0]), 4)
	chk.Float64(tst, "area", 1e-14, PolygonArea(cone), 0.09)
}

func Test_group01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("group01. cone unions do not double count area")

	hef := 0.1

	// overlapping squares: [-0.15,0.15]² and [0,0.3]x[-0.15,0.15]
	grp := NewGroup(stl.F1554gr36, 0.0254, []Pos{{0, 0}, {0.15, 0}})
	union, err := grp.GetConcreteBreakoutConePolygon(hef)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "union area (overlap)", 1e-12, PolygonArea(union), 0.135)

	// middle cone fully covered by the union of its neighbours
	grp = NewGroup(stl.F1554gr36, 0.0254, []Pos{{0, 0}, {0.05, 0}, {0.1, 0}})
	union, err = grp.GetConcreteBreakoutConePolygon(hef)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "union area (contained)", 1e-12, PolygonArea(union), 0.12)

	// disjoint rods: areas add up
	grp = NewGroup(stl.F1554gr36, 0.0254, []Pos{{0, 0}, {1, 0}})
	union, err = grp.GetConcreteBreakoutConePolygon(hef)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "union area (disjoint)", 1e-12, PolygonArea(union), 0.18)
}

func Test_group02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("group02. breakout strength")

	fc := 25e6
	psi3 := 1.25
	phi := 0.7

	// single-rod group: area ratio is one and only the depth power law remains
	grp := NewGroup(stl.F1554gr36, 0.0254, []Pos{{0, 0}})
	chk.Int(tst, "nbolts", grp.GetNumBolts(), 1)

	for _, hef := range []float64{0.1, 0.3} { // 3.94 in and 11.8 in: both law branches
		N, err := grp.GetConcreteBreakoutStrength(hef, fc, psi3, phi)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		hefIn := hef / 0.0254
		law := 24.0 * math.Pow(hefIn, 1.5)
		if hefIn >= 11 {
			law = 16.0 * math.Pow(hefIn, 5.0/3.0)
		}
		expected := phi * psi3 * math.Sqrt(fc*145.038e-6) * law * 4.4482216
		io.Pf("hef=%g: N=%g\n", hef, N)
		chk.Float64(tst, io.Sf("Ncb(hef=%g)", hef), 1e-8, N, expected)
	}

	// reference value for hef=0.1 m
	N, err := grp.GetConcreteBreakoutStrength(0.1, fc, psi3, phi)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Ncb(hef=0.1)", 1.0, N, 43940.0)

	// two rods side by side: strength scales with the union area ratio
	grp = NewGroup(stl.F1554gr36, 0.0254, []Pos{{0, 0}, {0.15, 0}})
	N2, err := grp.GetConcreteBreakoutStrength(0.1, fc, psi3, phi)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Ncb ratio", 1e-12, N2/N, 0.135/0.09)
}

func Test_group03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("group03. naming, positions and JSON round trip")

	grp := NewGroup(stl.F1554gr55, 0.01905, []Pos{{0, 0}, {0.2, 0}, {0.2, 0.3}})
	chk.String(tst, grp.Anchors[0].Name, "0")
	chk.String(tst, grp.Anchors[2].Name, "2")

	if err := grp.SetPositions([]Pos{{1, 1}}); err == nil {
		tst.Errorf("wrong number of positions must fail\n")
		return
	}
	if err := grp.SetPositions([]Pos{{1, 1}, {1, 2}, {2, 2}}); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "pos2.x", 1e-17, grp.Anchors[2].Pos.X, 2.0)

	blob, err := json.Marshal(grp)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("group: %s\n", blob)
	var clone Group
	if err := json.Unmarshal(blob, &clone); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "nbolts", clone.GetNumBolts(), 3)
	chk.String(tst, clone.Anchors[1].Name, "1")
	chk.Float64(tst, "d", 1e-17, clone.Anchors[1].D, 0.01905)
	if clone.Anchors[1].Steel != stl.F1554gr55 {
		tst.Errorf("steel grade must resolve to the registered value\n")
		return
	}
	chk.Float64(tst, "pos1.y", 1e-17, clone.Anchors[1].Pos.Y, 2.0)
}

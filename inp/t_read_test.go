// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/anchor"
	"github.com/cpmech/gosteel/member"
	"github.com/cpmech/gosteel/shp"
	"github.com/cpmech/gosteel/stl"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. bolted plate job")

	job, err := ReadPlateJob("data", "gusset.plate")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("job = %v\n", job)

	chk.String(tst, job.Name, "gusset")
	chk.String(tst, job.Plate.Steel.Name, "A36")
	chk.String(tst, job.Plate.Array.Bolt.GetName(), "M16")
	chk.Int(tst, "nbolts", job.Plate.Array.GetNumBolts(), 4)
	chk.Float64(tst, "width", 1e-15, job.Plate.GetWidth(), 0.144)
	chk.Float64(tst, "load ", 1e-15, job.Load, 150e3)

	// spacing and thickness are fine for this job
	if err := job.Check(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// an excessive load makes the thickness check fail
	job.Load = 2000e3
	if err := job.Check(); err == nil {
		tst.Errorf("overloaded plate must fail\n")
		return
	}
	job.Load = 150e3

	// write and read back
	if err := job.Save("/tmp/gosteel/inp", "gusset.plate"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	clone, err := ReadPlateJob("/tmp/gosteel/inp", "gusset.plate")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "thickness", 1e-15, clone.Plate.T, job.Plate.T)
	chk.Float64(tst, "net width", 1e-15, clone.Plate.GetNetWidth(), job.Plate.GetNetWidth())

	// missing files are reported
	if _, err := ReadPlateJob("data", "nonexistent.plate"); err == nil {
		tst.Errorf("missing file must fail\n")
		return
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. member check job")

	job, err := ReadMemberJob("data", "column.member")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("job = %v\n", job)

	chk.String(tst, job.Name, "column")
	chk.String(tst, job.Member.Shape.Prof.GetName(), "W310X97")
	chk.String(tst, job.Member.Shape.Steel.Name, "A36")
	chk.Float64(tst, "gammaC (default)", 1e-15, job.GammaC, 1.0)
	chk.Float64(tst, "Afg/Afn (default)", 1e-15, job.AfgAfn, 1.0)
	chk.Float64(tst, "Cb (uniform default)", 1e-15, job.Member.GetCb(job.Bending), 1.0)

	res, err := job.Run()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// the job must agree with a member assembled by hand
	prof, _ := shp.FindW("W310X97")
	conn := member.NewConnection(4.0, 1.0, "free", "fixed", "free", "fixed")
	m := member.NewConnectedMember(shp.NewShape(prof, stl.A36), conn)
	bending := &member.BendingState{Mmax: 100e3, Ma: 100e3, Mb: 100e3, Mc: 100e3}
	bendingY := &member.BendingState{Mmax: 10e3, Ma: 10e3, Mb: 10e3, Mc: 10e3}
	ref, err := m.GetCapacityFactor(-1500e3, 10e3, 100e3, 1.0, 1.0, bendingY, bending)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "CF", 1e-14, res.CF, ref.CF)
	chk.Float64(tst, "NcRd", 1e-8, res.NcRd, ref.NcRd)

	// pure compression without moments: the default zero diagram is
	// uniform and the capacity factor stays finite
	io.WriteFileSD("/tmp/gosteel/inp", "strut.member", `{
		"name":"strut", "kind":"W", "shape":"W310X97", "steel":"A36",
		"L":4, "Lb":4,
		"rotI":"free", "transI":"fixed", "rotJ":"free", "transJ":"fixed",
		"Nd":-1500e3
	}`)
	strut, err := ReadMemberJob("/tmp/gosteel/inp", "strut.member")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Cb (zero diagram)", 1e-15, strut.Member.GetCb(strut.Bending), 1.0)
	resS, err := strut.Run()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if math.IsNaN(resS.CF) || math.IsInf(resS.CF, 0) {
		tst.Errorf("capacity factor must be finite: %v\n", resS.CF)
		return
	}
	chk.Float64(tst, "CF (pure compression)", 1e-14, resS.CF, 1500e3/resS.NcRd)

	// unknown shapes are reported
	io.WriteFileSD("/tmp/gosteel/inp", "bad.member", `{"kind":"W","shape":"W1X1","steel":"A36"}`)
	if _, err := ReadMemberJob("/tmp/gosteel/inp", "bad.member"); err == nil {
		tst.Errorf("unknown shape must fail\n")
		return
	}
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. anchor group job")

	job, err := ReadAnchorJob("data", "base.anchor")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("job = %v\n", job)

	chk.String(tst, job.Name, "base")
	chk.Int(tst, "nbolts", job.Group.GetNumBolts(), 2)
	chk.Float64(tst, "phi (default)", 1e-15, job.Phi, anchor.PhiBreakout)

	Ncb, err := job.Run()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("Ncb = %g\n", Ncb)

	// the cones at 0.25 m spacing do not overlap for hef = 0.1 m, so the
	// group strength is twice the single anchor one
	single, err := job.Group.Anchors[0].GetConcreteBreakoutConePolygon(job.Hef)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "single cone area", 1e-15, anchor.PolygonArea(single), 0.09)
	if _, err := anchor.NewGroup(job.Group.Anchors[0].Steel, job.Group.Anchors[0].D, nil).GetConcreteBreakoutStrength(job.Hef, job.Fc, job.Psi3, job.Phi); err == nil {
		tst.Errorf("group without positions must fail\n")
		return
	}

	Ncb1, err := job.Group.GetConcreteBreakoutStrength(job.Hef, job.Fc, job.Psi3, job.Phi)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Ncb", 1e-10, Ncb, Ncb1)
}

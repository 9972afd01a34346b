// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stl implements a registry of ASTM structural steel grades and the
// associated AISC 360/358 material factors. All quantities are in SI units
// (Pa, m, N).
package stl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Steel holds the properties of an ASTM structural steel grade
type Steel struct {
	Name   string  `json:"name"`   // grade identifier; e.g. "A36"
	E      float64 `json:"E"`      // elastic modulus
	Nu     float64 `json:"nu"`     // Poisson's ratio
	Fy     float64 `json:"fy"`     // yield stress
	Fu     float64 `json:"fu"`     // ultimate tensile strength
	GammaM float64 `json:"gammaM"` // partial factor
	Rt     float64 `json:"Rt"`     // expected/specified tensile strength ratio; AISC 341 table A3.1 (0 if undefined)
	Ry     float64 `json:"Ry"`     // expected/specified yield stress ratio; AISC 341 table A3.1 (0 if undefined)
}

// GetPeakConnectionStrengthFactor returns the Cpr factor accounting for peak
// connection strength (strain hardening, local restraint, additional
// reinforcement) according to clause 2.4.3 (equation 2.4-2) of AISC 358-16
func (o *Steel) GetPeakConnectionStrengthFactor() float64 {
	cpr := (o.Fy + o.Fu) / (2.0 * o.Fy)
	if cpr > 1.2 {
		cpr = 1.2
	}
	return cpr
}

// GetYt returns the Yt factor of clause F13.1 of AISC 360-16 used to obtain
// the strength reduction for members with holes in the tension flange
func (o *Steel) GetYt() float64 {
	if o.Fy/o.Fu >= 0.8 {
		return 1.1
	}
	return 1.0
}

// String returns a one-line description of the grade
func (o *Steel) String() string {
	return io.Sf("%s: fy=%g fu=%g γM=%g", o.Name, o.Fy, o.Fu, o.GammaM)
}

// ksi converts kip/in² to Pa
const ksi = 6.89475908677537e6

// registered grades; see AISC 341 table A3.1 for Rt and Ry
var (
	A36        = &Steel{"A36", 200e9, 0.3, 250e6, 400e6, 1.0, 1.2, 1.5}
	A529       = &Steel{"A529", 200e9, 0.3, 290e6, 414e6, 1.0, 1.2, 1.2}
	A572       = &Steel{"A572", 200e9, 0.3, 345e6, 450e6, 1.0, 1.1, 1.1}
	A53        = &Steel{"A53", 200e9, 0.3, 240e6, 414e6, 1.0, 1.2, 1.5}
	A992       = &Steel{"A992", 200e9, 0.3, 345e6, 450e6, 1.0, 1.1, 1.1}
	A500       = &Steel{"A500", 200e9, 0.3, 315e6, 400e6, 1.0, 1.3, 1.4}
	A307       = &Steel{"A307", 200e9, 0.3, 245e6, 390e6, 1.0, 0, 0}
	A325       = &Steel{"A325", 200e9, 0.3, 660e6, 830e6, 1.0, 0, 0}
	A354BC     = &Steel{"A354BC", 200e9, 0.3, 109 * ksi, 125 * ksi, 1.0, 0, 0}
	A354BD     = &Steel{"A354BD", 200e9, 0.3, 115 * ksi, 140 * ksi, 1.0, 0, 0} // bolts under 2.5 in
	A490       = &Steel{"A490", 200e9, 0.3, 940e6, 1040e6, 1.0, 0, 0}
	F1554gr36  = &Steel{"F1554gr36", 200e9, 0.3, 248e6, 400e6, 1.0, 0, 0}  // anchor rods
	F1554gr55  = &Steel{"F1554gr55", 200e9, 0.3, 380e6, 517e6, 1.0, 0, 0}  // anchor rods
	F1554gr105 = &Steel{"F1554gr105", 200e9, 0.3, 724e6, 862e6, 1.0, 0, 0} // anchor rods
)

// registry holds all grades; gradename => grade
var registry = map[string]*Steel{
	"A36":        A36,
	"A529":       A529,
	"A572":       A572,
	"A53":        A53,
	"A992":       A992,
	"A500":       A500,
	"A307":       A307,
	"A325":       A325,
	"A354BC":     A354BC,
	"A354BD":     A354BD,
	"A490":       A490,
	"F1554gr36":  F1554gr36,
	"F1554gr55":  F1554gr55,
	"F1554gr105": F1554gr105,
}

// Get returns a registered steel grade. Grades are shared immutable values;
// callers must not modify the returned structure
func Get(name string) (grade *Steel, err error) {
	grade, ok := registry[name]
	if !ok {
		return nil, chk.Err("steel grade %q is not available in 'stl' database", name)
	}
	return
}

// GradeNames returns the names of all registered grades
func GradeNames() (names []string) {
	for name := range registry {
		names = append(names, name)
	}
	return
}

// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stl

// FilletWeldMinimumLeg returns the minimum leg size of a fillet bead welding
// a sheet of thickness t according to table J2.4 of AISC 360
func FilletWeldMinimumLeg(t float64) float64 {
	switch {
	case t <= 6e-3:
		return 3e-3
	case t <= 13e-3:
		return 5e-3
	case t <= 19e-3:
		return 6e-3
	}
	return 8e-3
}

// FilletWeldMaximumLeg returns the maximum leg size of a fillet bead welding
// a sheet of thickness t according to section J2.2b of AISC 360
func FilletWeldMaximumLeg(t float64) float64 {
	if t <= 6e-3 {
		return t
	}
	return t - 2e-3
}

// FilletWeldMinimumLegSheets returns the minimum leg size which can be used
// to weld two sheets according to table J2.4 of AISC 360
func FilletWeldMinimumLegSheets(t1, t2 float64) float64 {
	amin1 := FilletWeldMinimumLeg(t1)
	amin2 := FilletWeldMinimumLeg(t2)
	if amin1 > amin2 {
		return amin1
	}
	return amin2
}

// FilletWeldMaximumLegSheets returns the maximum leg size which can be used
// to weld two sheets according to section J2.2b of AISC 360
func FilletWeldMaximumLegSheets(t1, t2 float64) float64 {
	amax1 := FilletWeldMaximumLeg(t1)
	amax2 := FilletWeldMaximumLeg(t2)
	if amax1 < amax2 {
		return amax1
	}
	return amax2
}

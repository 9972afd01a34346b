// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anchor

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/stl"
	polyclip "github.com/ctessum/polyclip-go"
)

// Group represents a group of anchor rods on a base plate
type Group struct {
	Anchors []*Anchor // rods, named by insertion index
}

// NewGroup creates an anchor group with one rod per position. Rod names are
// assigned from the insertion index
func NewGroup(steel *stl.Steel, diameter float64, positions []Pos) *Group {
	o := new(Group)
	for i, p := range positions {
		pos := p
		o.Anchors = append(o.Anchors, New(io.Sf("%d", i), steel, diameter, &pos))
	}
	return o
}

// GetNumBolts returns the number of rods in the group
func (o *Group) GetNumBolts() int {
	return len(o.Anchors)
}

// SetPositions resets the rod positions
func (o *Group) SetPositions(positions []Pos) error {
	if len(positions) != len(o.Anchors) {
		return chk.Err("got %d positions for %d anchors", len(positions), len(o.Anchors))
	}
	for i := range o.Anchors {
		pos := positions[i]
		o.Anchors[i].Pos = &pos
	}
	return nil
}

// GetConcreteBreakoutConePolygon returns the breakout cone in tension for the
// group as the geometric union of the individual cones. Overlapping cones do
// not double count area
func (o *Group) GetConcreteBreakoutConePolygon(hef float64) (res polyclip.Polygon, err error) {
	if len(o.Anchors) == 0 {
		return nil, chk.Err("anchor group is empty")
	}
	for i, a := range o.Anchors {
		cone, err := a.GetConcreteBreakoutConePolygon(hef)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			res = cone
			continue
		}
		res = res.Construct(polyclip.UNION, cone)
	}
	return
}

// GetConcreteBreakoutStrength returns the concrete breakout strength for the
// anchor group as per ACI 318-02 Appendix D: a single-rod capacity scaled by
// the ratio of the union area to the single-cone area, with the
// embedment-depth power law evaluated in imperial units. psi3 is 1.25 if the
// anchor is located in a region where analysis indicates no cracking at
// service levels, otherwise 1.0
func (o *Group) GetConcreteBreakoutStrength(hef, fc, psi3, phi float64) (float64, error) {
	union, err := o.GetConcreteBreakoutConePolygon(hef)
	if err != nil {
		return 0, err
	}
	single, err := o.Anchors[0].GetConcreteBreakoutConePolygon(hef)
	if err != nil {
		return 0, err
	}
	AN := PolygonArea(union)
	ANo := PolygonArea(single)
	fcPsi := fc * 145.038e-6
	res := phi * psi3 * math.Sqrt(fcPsi) * AN / ANo
	hefIn := hef / 0.0254
	if hefIn < 11 {
		res *= 24.0 * math.Pow(hefIn, 1.5)
	} else {
		res *= 16.0 * math.Pow(hefIn, 5.0/3.0)
	}
	res *= 4.4482216 // pound-force to newtons
	return res, nil
}

// MarshalJSON encodes the group
func (o *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Anchors)
}

// UnmarshalJSON decodes the group
func (o *Group) UnmarshalJSON(b []byte) error {
	o.Anchors = nil
	return json.Unmarshal(b, &o.Anchors)
}

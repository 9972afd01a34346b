// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/member"
	"github.com/cpmech/gosteel/shp"
	"github.com/cpmech/gosteel/stl"
)

// MemberJob holds the definition of a connected member capacity check
type MemberJob struct {

	// input
	Name     string               `json:"name"`        // job identifier
	Kind     string               `json:"kind"`        // profile family; e.g. "W"
	Shape    string               `json:"shape"`       // profile designation; e.g. "W310X97"
	Steel    string               `json:"steel"`       // steel grade name; e.g. "A36"
	L        float64              `json:"L"`           // member length
	Lb       float64              `json:"Lb"`          // lateral unbraced length
	RotI     string               `json:"rotI"`        // rotation fixity at end i
	TransI   string               `json:"transI"`      // translation fixity at end i
	RotJ     string               `json:"rotJ"`        // rotation fixity at end j
	TransJ   string               `json:"transJ"`      // translation fixity at end j
	Nd       float64              `json:"Nd"`          // design axial load; negative in compression
	Myd      float64              `json:"Myd"`         // design minor axis bending moment
	Mzd      float64              `json:"Mzd"`         // design major axis bending moment
	GammaC   float64              `json:"gammaC"`      // partial factor on the member strengths; 0 means 1
	AfgAfn   float64              `json:"afgAfnRatio"` // gross to net tension flange area ratio; 0 means 1 (no holes)
	Bending  *member.BendingState `json:"bending"`     // major axis quarter point moments; nil means uniform
	BendingY *member.BendingState `json:"bendingY"`    // minor axis quarter point moments; nil means uniform

	// derived
	Member *member.ConnectedMember `json:"-"` // assembled member
}

// ReadMemberJob reads a member check job from a JSON file and resolves the
// profile and the steel grade through the registries
func ReadMemberJob(dir, fn string) (job *MemberJob, err error) {
	job = new(MemberJob)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(b, job); err != nil {
		return nil, chk.Err("cannot parse member job %q: %v", fn, err)
	}

	// derived data
	prof, err := shp.Find(job.Kind, job.Shape)
	if err != nil {
		return nil, err
	}
	steel, err := stl.Get(job.Steel)
	if err != nil {
		return nil, err
	}
	if job.GammaC == 0 {
		job.GammaC = 1.0
	}
	if job.AfgAfn == 0 {
		job.AfgAfn = 1.0
	}
	if job.Bending == nil {
		job.Bending = &member.BendingState{Mmax: job.Mzd, Ma: job.Mzd, Mb: job.Mzd, Mc: job.Mzd}
	}
	if job.BendingY == nil {
		job.BendingY = &member.BendingState{Mmax: job.Myd, Ma: job.Myd, Mb: job.Myd, Mc: job.Myd}
	}
	conn := member.NewConnection(job.L, job.Lb, job.RotI, job.TransI, job.RotJ, job.TransJ)
	job.Member = member.NewConnectedMember(shp.NewShape(prof, steel), conn)
	return
}

// Run computes the capacity factor of the member. Jobs assembled in code
// rather than read from a file may leave AfgAfn and BendingY unset
func (o *MemberJob) Run() (shp.BiaxialResults, error) {
	afgAfn := o.AfgAfn
	if afgAfn == 0 {
		afgAfn = 1.0
	}
	bendingY := o.BendingY
	if bendingY == nil {
		bendingY = &member.BendingState{Mmax: o.Myd, Ma: o.Myd, Mb: o.Myd, Mc: o.Myd}
	}
	return o.Member.GetCapacityFactor(o.Nd, o.Myd, o.Mzd, o.GammaC, afgAfn, bendingY, o.Bending)
}

// String returns a JSON representation of the job
func (o *MemberJob) String() string {
	b, _ := json.Marshal(o)
	return string(b)
}

// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/anchor"
)

// AnchorJob holds the definition of an anchor group concrete breakout check
type AnchorJob struct {

	// input
	Name    string        `json:"name"`    // job identifier
	Group   *anchor.Group `json:"group"`   // anchors with their positions
	Hef     float64       `json:"hef"`     // effective embedment depth
	Fc      float64       `json:"fc"`      // concrete compressive strength
	Psi3    float64       `json:"psi3"`    // cracking modification factor
	Phi     float64       `json:"phi"`     // strength reduction factor; 0 means the default
	Tension float64       `json:"tension"` // design tensile load on the group
}

// ReadAnchorJob reads an anchor group job from a JSON file
func ReadAnchorJob(dir, fn string) (job *AnchorJob, err error) {
	job = new(AnchorJob)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(b, job); err != nil {
		return nil, chk.Err("cannot parse anchor job %q: %v", fn, err)
	}
	if job.Group == nil || job.Group.GetNumBolts() < 1 {
		return nil, chk.Err("anchor job %q has no anchors", fn)
	}
	if job.Phi == 0 {
		job.Phi = anchor.PhiBreakout
	}
	return
}

// Run computes the concrete breakout strength of the group
func (o *AnchorJob) Run() (float64, error) {
	return o.Group.GetConcreteBreakoutStrength(o.Hef, o.Fc, o.Psi3, o.Phi)
}

// String returns a JSON representation of the job
func (o *AnchorJob) String() string {
	b, _ := json.Marshal(o)
	return string(b)
}

// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input-file layer: JSON job definitions for
// bolted plates, anchor groups and member checks
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/bolt"
)

// PlateJob holds the definition of a bolted plate check
type PlateJob struct {
	Name  string      `json:"name"`  // job identifier
	Plate *bolt.Plate `json:"plate"` // plate with bolt array and steel grade
	Load  float64     `json:"load"`  // design axial load
}

// ReadPlateJob reads a bolted plate job from a JSON file
func ReadPlateJob(dir, fn string) (job *PlateJob, err error) {
	job = new(PlateJob)
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(b, job); err != nil {
		return nil, chk.Err("cannot parse plate job %q: %v", fn, err)
	}
	if job.Plate == nil {
		return nil, chk.Err("plate job %q has no plate definition", fn)
	}
	return
}

// Check verifies the bolt spacing and the plate thickness against the design
// load
func (o *PlateJob) Check() error {
	if err := o.Plate.Array.CheckSpacing(); err != nil {
		return err
	}
	if tmin := o.Plate.GetMinThickness(o.Load); o.Plate.T < tmin {
		return chk.Err("plate thickness %g is smaller than the minimum %g required by the load %g", o.Plate.T, tmin, o.Load)
	}
	return nil
}

// Save writes the job to a JSON file
func (o *PlateJob) Save(dir, fn string) error {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	io.WriteFileSD(dir, fn, io.Sf("%s\n", b))
	return nil
}

// String returns a JSON representation of the job
func (o *PlateJob) String() string {
	b, _ := json.Marshal(o)
	return string(b)
}

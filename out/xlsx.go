// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"fmt"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosteel/bolt"
	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/stl"
	"github.com/xuri/excelize/v2"
)

// scheduleHeader lists the columns of a bolted plate schedule sheet
var scheduleHeader = []string{
	"name", "bolt", "boltSteel", "nRows", "nCols", "dist", "thickness", "plateSteel", "load",
}

// SaveBoltSchedule writes the bolted plate jobs to an XLSX schedule with one
// row per plate
func SaveBoltSchedule(filename string, jobs []*inp.PlateJob) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for j, h := range scheduleHeader {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
	}
	for i, job := range jobs {
		arr := job.Plate.Array
		values := []interface{}{
			job.Name,
			arr.Bolt.GetName(),
			arr.Bolt.Steel.Name,
			arr.NRows,
			arr.NCols,
			arr.Dist,
			job.Plate.T,
			job.Plate.Steel.Name,
			job.Load,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f.SaveAs(filename)
}

// ReadBoltSchedule reads an XLSX schedule back into plate jobs, resolving the
// steel grades through the registry and the bolts from their diameters
func ReadBoltSchedule(filename string) (jobs []*inp.PlateJob, err error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, chk.Err("schedule %q has no data rows", filename)
	}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < len(scheduleHeader) {
			return nil, chk.Err("schedule %q: row %d has %d columns; need %d", filename, i+1, len(row), len(scheduleHeader))
		}
		job, err := parseScheduleRow(row)
		if err != nil {
			return nil, chk.Err("schedule %q: row %d: %v", filename, i+1, err)
		}
		jobs = append(jobs, job)
	}
	return
}

func parseScheduleRow(row []string) (*inp.PlateJob, error) {
	boltSteel, err := stl.Get(row[2])
	if err != nil {
		return nil, err
	}
	plateSteel, err := stl.Get(row[7])
	if err != nil {
		return nil, err
	}
	var d float64
	if _, err := fmt.Sscanf(row[1], "M%f", &d); err != nil {
		return nil, chk.Err("cannot parse bolt designation %q", row[1])
	}
	d *= 1e-3
	if err := bolt.CheckStandardDiameter(d); err != nil {
		return nil, err
	}
	nRows, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, err
	}
	nCols, err := strconv.Atoi(row[4])
	if err != nil {
		return nil, err
	}
	dist, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return nil, err
	}
	thickness, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return nil, err
	}
	load, err := strconv.ParseFloat(row[8], 64)
	if err != nil {
		return nil, err
	}
	arr := bolt.NewArray(bolt.New(d, boltSteel), nRows, nCols, dist)
	return &inp.PlateJob{
		Name:  row[0],
		Plate: bolt.NewPlate(arr, thickness, plateSteel),
		Load:  load,
	}, nil
}

// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out renders check results as text, PDF, XLSX and diagrams
package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/shp"
)

// TextReport returns a plain text report of a member check
func TextReport(job *inp.MemberJob, res shp.BiaxialResults) string {
	var sb strings.Builder
	k, _ := job.Member.Conn.GetEffectiveBucklingLengthCoefficientRecommended()
	sr, _ := job.Member.GetSlendernessRatio()
	sb.WriteString(io.Sf("member check: %s\n", job.Name))
	sb.WriteString(io.Sf("%s\n", strings.Repeat("=", 40)))
	sb.WriteString(io.Sf("shape              = %s (%s)\n", job.Shape, job.Kind))
	sb.WriteString(io.Sf("steel              = %s\n", job.Steel))
	sb.WriteString(io.Sf("length             = %g m\n", job.L))
	sb.WriteString(io.Sf("unbraced length    = %g m\n", job.Lb))
	sb.WriteString(io.Sf("K                  = %g\n", k))
	sb.WriteString(io.Sf("slenderness ratio  = %.2f\n", sr))
	sb.WriteString(io.Sf("Cb                 = %.4f\n", job.Member.GetCb(job.Bending)))
	sb.WriteString(io.Sf("%s\n", strings.Repeat("-", 40)))
	sb.WriteString(io.Sf("Nd                 = %.3f kN\n", job.Nd/1e3))
	sb.WriteString(io.Sf("Myd                = %.3f kN·m\n", job.Myd/1e3))
	sb.WriteString(io.Sf("Mzd                = %.3f kN·m\n", job.Mzd/1e3))
	sb.WriteString(io.Sf("NcRd               = %.3f kN\n", res.NcRd/1e3))
	sb.WriteString(io.Sf("McRdy              = %.3f kN·m\n", res.McRdy/1e3))
	sb.WriteString(io.Sf("MbRdz              = %.3f kN·m\n", res.MbRdz/1e3))
	sb.WriteString(io.Sf("capacity factor    = %.4f\n", res.CF))
	if res.CF > 1.0 {
		sb.WriteString("status             = NOT OK\n")
	} else {
		sb.WriteString("status             = OK\n")
	}
	return sb.String()
}

// SaveTextReport writes a plain text report of a member check to a file
func SaveTextReport(dir, fn string, job *inp.MemberJob, res shp.BiaxialResults) {
	io.WriteFileSD(dir, fn, TextReport(job, res))
}

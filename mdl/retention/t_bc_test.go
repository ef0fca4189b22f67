// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01. Brooks-Corey model")

	mdl, err := New("bc")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// direct evaluation: θ = θs below air-entry, power law above
	nr := mdl.(Nonrate)
	chk.Float64(tst, "θ(5)  ", 1e-17, nr.Th(5), 0.4)
	chk.Float64(tst, "θ(10) ", 1e-17, nr.Th(10), 0.4)
	chk.Float64(tst, "θ(100)", 1e-15, nr.Th(100), 0.25035617008818173)
	cc, err := mdl.Cc(100, nr.Th(100), false)
	if err != nil {
		tst.Errorf("Cc failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Cc(100)", 1e-17, cc, -0.00045106851026454513)

	// check derivatives away from the air-entry kink
	pc0 := 11.0
	th0 := nr.Th(pc0)
	pcf := 80.0
	npts := 11
	tolCc := 1e-10
	tolD1a, tolD1b := 1e-10, 1e-17
	tolD2a, tolD2b := 1e-9, 1e-17
	Check(tst, mdl, pc0, th0, pcf, npts, tolCc, tolD1a, tolD1b, tolD2a, tolD2b, chk.Verbose, []float64{}, 1e-7)

	if chk.Verbose {
		plt.Reset(false, nil)
		Plot(mdl, 0, mdl.ThMax(), 200, 41, false, &plt.A{C: "b", M: ".", Ls: "-"}, &plt.A{C: "r", M: "+", Ls: "-"}, "bc")
		PlotEnd(0.5, false, true)
	}
}

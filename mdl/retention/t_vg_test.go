// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/plt"
)

func verbose() {
	chk.Verbose = true
}

func Test_vg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg01. van Genuchten model. loam")

	// loam: Carsel and Parrish (1988)
	mdl, err := New("vg")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "thr", V: 0.078},
		&dbf.P{N: "ths", V: 0.43},
		&dbf.P{N: "alp", V: 0.036},
		&dbf.P{N: "n", V: 1.56},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// check bounds
	chk.Float64(tst, "θr", 1e-17, mdl.ThMin(), 0.078)
	chk.Float64(tst, "θs", 1e-17, mdl.ThMax(), 0.43)

	// check direct evaluation (pc in cm of water)
	nr := mdl.(Nonrate)
	chk.Float64(tst, "θ(10)   ", 1e-15, nr.Th(10), 0.4073889379118229)
	chk.Float64(tst, "θ(100)  ", 1e-15, nr.Th(100), 0.2421317847181521)
	chk.Float64(tst, "θ(1000) ", 1e-15, nr.Th(1000), 0.1252533086227396)
	chk.Float64(tst, "θ(15000)", 1e-15, nr.Th(15000), 0.08838469248730187)
	cc, err := mdl.Cc(100, nr.Th(100), false)
	if err != nil {
		tst.Errorf("Cc failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Cc(100) ", 1e-17, cc, -0.0008094057228763072)

	// saturated limit
	chk.Float64(tst, "θ(0)", 1e-17, nr.Th(0), 0.43)
	chk.Float64(tst, "Se(0)", 1e-17, nr.Se(0), 1.0)

	// check derivatives
	pc0 := -5.0
	th0 := mdl.ThMax()
	pcf := 20.0
	npts := 11
	tolCc := 1e-10
	tolD1a, tolD1b := 1e-10, 1e-17
	tolD2a, tolD2b := 1e-10, 1e-17
	Check(tst, mdl, pc0, th0, pcf, npts, tolCc, tolD1a, tolD1b, tolD2a, tolD2b, chk.Verbose, []float64{}, 1e-7)

	if chk.Verbose {
		plt.Reset(false, nil)
		Plot(mdl, 0, th0, 1000, 41, true, &plt.A{C: "b", M: ".", Ls: "-"}, &plt.A{C: "r", M: "+", Ls: "-"}, "vg")
		PlotEnd(0.5, true, true)
	}
}

func Test_vg03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg03. truncated curve at high suction")

	mdl := new(VanGen)
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "thr", V: 0.078},
		&dbf.P{N: "ths", V: 0.43},
		&dbf.P{N: "alp", V: 0.036},
		&dbf.P{N: "n", V: 1.56},
		&dbf.P{N: "pclim", V: 1e4},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// residual state beyond pclim
	chk.Float64(tst, "θ(pclim)  ", 1e-17, mdl.Th(1e4), 0.078)
	chk.Float64(tst, "θ(2⋅pclim)", 1e-17, mdl.Th(2e4), 0.078)
	chk.Float64(tst, "Se(2⋅pclim)", 1e-17, mdl.Se(2e4), 0)
	cc, err := mdl.Cc(2e4, 0.078, false)
	if err != nil {
		tst.Errorf("Cc failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Cc(2⋅pclim)", 1e-17, cc, 0)
	L, Lx, J, _, _, err := mdl.Derivs(2e4, 0.078, false)
	if err != nil {
		tst.Errorf("Derivs failed: %v\n", err)
		return
	}
	chk.Float64(tst, "L(2⋅pclim) ", 1e-17, L, 0)
	chk.Float64(tst, "Lx(2⋅pclim)", 1e-17, Lx, 0)
	chk.Float64(tst, "J(2⋅pclim) ", 1e-17, J, 0)

	// curve is unchanged below pclim
	chk.Float64(tst, "θ(100)", 1e-15, mdl.Th(100), 0.2421317847181521)

	// pclim must exceed pcmin
	err = new(VanGen).Init(dbf.Params{
		&dbf.P{N: "thr", V: 0.078},
		&dbf.P{N: "ths", V: 0.43},
		&dbf.P{N: "alp", V: 0.036},
		&dbf.P{N: "n", V: 1.56},
		&dbf.P{N: "pclim", V: 1e-4},
	})
	if err == nil {
		tst.Errorf("Init must fail with pclim ≤ pcmin\n")
		return
	}
}

func Test_vg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg02. van Genuchten model. explicit m")

	mdl := new(VanGen)
	prms := mdl.GetPrms(true)
	prms = append(prms, &dbf.P{N: "m", V: 0.5})
	err := mdl.Init(prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// m overrides Mualem's restriction
	chk.Float64(tst, "m", 1e-17, mdl.m, 0.5)

	// invalid parameters must be caught
	err = new(VanGen).Init(dbf.Params{&dbf.P{N: "gamma", V: 1}})
	if err == nil {
		tst.Errorf("Init must fail with unknown parameter\n")
		return
	}
	err = new(VanGen).Init(dbf.Params{
		&dbf.P{N: "thr", V: 0.4},
		&dbf.P{N: "ths", V: 0.1},
		&dbf.P{N: "alp", V: 0.036},
		&dbf.P{N: "n", V: 1.56},
	})
	if err == nil {
		tst.Errorf("Init must fail with ths < thr\n")
		return
	}
	err = new(VanGen).Init(dbf.Params{
		&dbf.P{N: "thr", V: 0.078},
		&dbf.P{N: "ths", V: 0.43},
		&dbf.P{N: "alp", V: 0.036},
		&dbf.P{N: "n", V: 0.9},
	})
	if err == nil {
		tst.Errorf("Init must fail with n ≤ 1\n")
		return
	}
}

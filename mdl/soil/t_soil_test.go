// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func verbose() {
	chk.Verbose = true
}

// sandPrms returns the Carsel and Parrish (1988) parameters of sand
// (α in 1/cm, Ksat in cm/day)
func sandPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "thr", V: 0.045},
		&dbf.P{N: "ths", V: 0.43},
		&dbf.P{N: "alp", V: 0.145},
		&dbf.P{N: "n", V: 2.68},
		&dbf.P{N: "ksat", V: 712.8},
	}
}

func Test_soil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("soil01. van Genuchten-Mualem coupling. sand")

	mdl, err := NewVGM("sand", sandPrms())
	if err != nil {
		tst.Errorf("NewVGM failed: %v\n", err)
		return
	}

	// retention curve
	chk.Float64(tst, "θ(0)  ", 1e-17, mdl.Theta(0), 0.43)
	chk.Float64(tst, "θ(10) ", 1e-15, mdl.Theta(10), 0.21434410344213856)
	chk.Float64(tst, "θ(100)", 1e-15, mdl.Theta(100), 0.0493067774914912)

	// conductivity function
	chk.Float64(tst, "K(0)  ", 1e-12, mdl.Kval(0), 712.8)
	chk.Float64(tst, "Se(10)", 1e-15, mdl.Se(10), 0.43985481413542477)
	chk.Float64(tst, "K(10) ", 1e-12, mdl.Kval(10), 15.126452819794235)
	chk.Float64(tst, "K(100)", 1e-15, mdl.Kval(100), 1.7627262878079713e-05)

	// moisture capacity against numerical slope
	for _, pc := range []float64{5, 50, 500} {
		cc, err := mdl.Cc(pc)
		if err != nil {
			tst.Errorf("Cc failed: %v\n", err)
			return
		}
		chk.DerivScaSca(tst, "Cc = dθ/dpc", 1e-9, cc, pc, 1e-3, chk.Verbose, func(x float64) float64 {
			return mdl.Theta(x)
		})
	}
}

func Test_soil02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("soil02. driver over decade-log grid")

	mdl, err := NewVGM("sand", sandPrms())
	if err != nil {
		tst.Errorf("NewVGM failed: %v\n", err)
		return
	}

	var drv Driver
	if err = drv.Init(mdl); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	Pc, err := LogGrid(0.1, 1e6, 61)
	if err != nil {
		tst.Errorf("LogGrid failed: %v\n", err)
		return
	}
	if err = drv.Run(Pc); err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// grid endpoints
	res := drv.Res
	chk.Float64(tst, "pc[0] ", 1e-15, res.Pc[0], 0.1)
	chk.Float64(tst, "pc[60]", 1e-6, res.Pc[60], 1e6)

	// both curves must decrease monotonically with suction
	for i := 1; i < len(res.Pc); i++ {
		if res.Th[i] > res.Th[i-1] {
			tst.Errorf("θ must be non-increasing: θ(%g)=%g > θ(%g)=%g\n", res.Pc[i], res.Th[i], res.Pc[i-1], res.Th[i-1])
			return
		}
		if res.Kval[i] > res.Kval[i-1] {
			tst.Errorf("K must be non-increasing: K(%g)=%g > K(%g)=%g\n", res.Pc[i], res.Kval[i], res.Pc[i-1], res.Kval[i-1])
			return
		}
	}

	// limits
	chk.Float64(tst, "θ → θr", 1e-3, res.Th[60], 0.045)
	chk.Float64(tst, "Se[0] ", 1e-4, res.Se[0], 1.0)

	// bad grids
	if _, err = LogGrid(0, 100, 11); err == nil {
		tst.Errorf("LogGrid must fail with pcmin=0\n")
		return
	}
	if _, err = LogGrid(10, 1, 11); err == nil {
		tst.Errorf("LogGrid must fail with pcmax < pcmin\n")
		return
	}
	if err = drv.Run([]float64{1}); err == nil {
		tst.Errorf("Run must fail with a single-point grid\n")
		return
	}
	if err = drv.Run([]float64{-1, 1}); err == nil {
		tst.Errorf("Run must fail with negative suction\n")
		return
	}
}

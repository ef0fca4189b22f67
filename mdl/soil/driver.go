// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Curves holds the characteristic curves of one soil evaluated over a
// suction grid
type Curves struct {
	Name string    // name of soil
	Pc   []float64 // suction grid
	Th   []float64 // volumetric water content θ(pc)
	Se   []float64 // effective saturation
	Klr  []float64 // relative conductivity kr(pc)
	Kval []float64 // hydraulic conductivity K(pc) = Ksat * kr
}

// Driver evaluates the characteristic curves of one soil over a grid
type Driver struct {

	// input
	Mdl *Model // soil model

	// results
	Res *Curves // evaluated curves
}

// Init initialises driver
func (o *Driver) Init(mdl *Model) (err error) {
	if mdl == nil {
		return chk.Err("driver requires a non-nil soil model")
	}
	o.Mdl = mdl
	return
}

// Run evaluates the curves over the given suction grid
func (o *Driver) Run(Pc []float64) (err error) {
	np := len(Pc)
	if np < 2 {
		return chk.Err("at least two suction values are required. np=%d is incorrect", np)
	}
	o.Res = &Curves{
		Name: o.Mdl.Name,
		Pc:   Pc,
		Th:   make([]float64, np),
		Se:   make([]float64, np),
		Klr:  make([]float64, np),
		Kval: make([]float64, np),
	}
	for i, pc := range Pc {
		if pc < 0 {
			return chk.Err("suction grid must be non-negative. pc=%g is incorrect", pc)
		}
		o.Res.Th[i] = o.Mdl.Theta(pc)
		o.Res.Se[i] = o.Mdl.Se(pc)
		o.Res.Klr[i] = o.Mdl.Krel(pc)
		o.Res.Kval[i] = o.Mdl.Kval(pc)
	}
	return
}

// LinGrid generates a linearly spaced suction grid
func LinGrid(pcmin, pcmax float64, np int) []float64 {
	return utl.LinSpace(pcmin, pcmax, np)
}

// LogGrid generates a decade-log spaced suction grid; pcmin must be positive
func LogGrid(pcmin, pcmax float64, np int) ([]float64, error) {
	if pcmin <= 0 {
		return nil, chk.Err("log grid requires positive pcmin. pcmin=%g is incorrect", pcmin)
	}
	if pcmax <= pcmin {
		return nil, chk.Err("log grid requires pcmax > pcmin. pcmin=%g, pcmax=%g is incorrect", pcmin, pcmax)
	}
	X := utl.LinSpace(math.Log10(pcmin), math.Log10(pcmax), np)
	Pc := make([]float64, np)
	for i, x := range X {
		Pc[i] = math.Pow(10, x)
	}
	return Pc, nil
}

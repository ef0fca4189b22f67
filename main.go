// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command soil-physics evaluates the water retention curve θ(ψ) and the
// hydraulic conductivity function K(ψ) of named soils using the van
// Genuchten-Mualem model and plots both over a grid of suction values.
package main

import (
	"path/filepath"

	"github.com/ToshiyukiBandai/soil-physics/inp"
	"github.com/ToshiyukiBandai/soil-physics/mdl/soil"
	"github.com/ToshiyukiBandai/soil-physics/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, _ := io.ArgToFilename(0, "curves", ".sim", true)
	show := io.ArgToBool(1, false)

	// print input table
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"scenario filename", "simfn", simfn,
		"show figure instead of saving", "show", show,
	))

	// load scenario and materials database
	sim, err := inp.ReadSim(filepath.Dir(simfn), filepath.Base(simfn))
	if err != nil {
		chk.Panic("cannot load scenario:\n%v", err)
	}

	// suction grid
	var Pc []float64
	if sim.Grid.Lin {
		Pc = soil.LinGrid(sim.Grid.PcMin, sim.Grid.PcMax, sim.Grid.Npts)
	} else {
		Pc, err = soil.LogGrid(sim.Grid.PcMin, sim.Grid.PcMax, sim.Grid.Npts)
		if err != nil {
			chk.Panic("cannot generate suction grid:\n%v", err)
		}
	}

	// evaluate curves
	all := make([]*soil.Curves, len(sim.Soils))
	for i, name := range sim.Soils {
		mdl, err := sim.Mdb.GetSoil(name)
		if err != nil {
			chk.Panic("cannot get soil:\n%v", err)
		}
		var drv soil.Driver
		if err = drv.Init(mdl); err != nil {
			chk.Panic("cannot initialise driver:\n%v", err)
		}
		if err = drv.Run(Pc); err != nil {
			chk.Panic("cannot evaluate curves of %q:\n%v", name, err)
		}
		all[i] = drv.Res
	}

	// write results
	resfn, err := out.WriteResults(sim.Data.DirOut, sim.Data.FnKey, all)
	if err != nil {
		chk.Panic("cannot write results:\n%v", err)
	}
	io.Pf("file <%s> written\n", resfn)

	// draw figure
	ext := ".eps"
	if sim.Plot.Png {
		ext = ".png"
		plt.Reset(true, &plt.A{Prop: sim.Plot.Prop, WidthPt: sim.Plot.Wid, Dpi: 150})
	} else {
		plt.Reset(true, &plt.A{Eps: true, Prop: sim.Plot.Prop, WidthPt: sim.Plot.Wid})
	}
	figfn := sim.Data.FnKey
	if show {
		figfn = ""
	}
	out.DrawCurves(all, sim.Data.DirOut, figfn, !sim.Grid.Lin, sim.Plot.ThMax)
	if figfn != "" {
		io.Pf("file <%s> written\n", filepath.Join(sim.Data.DirOut, figfn+ext))
	}
}

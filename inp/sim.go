// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat)
// JSON files: the evaluation scenario and the soil parameter database
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global scenario data
type Data struct {
	Desc    string `json:"desc"`    // description of scenario
	Matfile string `json:"matfile"` // materials file path; "" means built-in catalog
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/soil-physics
	FnKey   string `json:"fnkey"`   // filename key for output files
}

// GridData holds the suction grid definition
type GridData struct {
	PcMin float64 `json:"pcmin"` // minimum suction
	PcMax float64 `json:"pcmax"` // maximum suction
	Npts  int     `json:"npts"`  // number of points
	Lin   bool    `json:"lin"`   // use linear grid instead of decade-log
}

// PlotData holds figure options
type PlotData struct {
	Png   bool    `json:"png"`   // save png instead of eps
	Prop  float64 `json:"prop"`  // proportion (height/width) of figure
	Wid   float64 `json:"wid"`   // width of figure
	ThMax float64 `json:"thmax"` // upper θ-axis limit; 0 means largest θs
}

// Sim holds the evaluation scenario
type Sim struct {

	// input
	Data  Data     `json:"data"`
	Grid  GridData `json:"grid"`
	Plot  PlotData `json:"plot"`
	Soils []string `json:"soils"` // names of soils; empty means all in database

	// derived
	Mdb *MatDb // materials database
}

// SetDefaults sets default values for unset scenario data
func (o *Sim) SetDefaults() {
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/soil-physics"
	}
	if o.Data.FnKey == "" {
		o.Data.FnKey = "curves"
	}
	if o.Grid.PcMin == 0 {
		o.Grid.PcMin = 0.1
	}
	if o.Grid.PcMax == 0 {
		o.Grid.PcMax = 1e6
	}
	if o.Grid.Npts < 2 {
		o.Grid.Npts = 121
	}
	if o.Plot.Prop == 0 {
		o.Plot.Prop = 0.75
	}
	if o.Plot.Wid == 0 {
		o.Plot.Wid = 400
	}
}

// ReadSim reads scenario from a .sim JSON file and loads the materials
// database (built-in catalog if no matfile is given)
func ReadSim(dir, fn string) (o *Sim, err error) {

	// new scenario
	o = new(Sim)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return
	}
	o.SetDefaults()

	// materials database
	if o.Data.Matfile == "" {
		o.Mdb, err = DefaultSoils()
	} else {
		o.Mdb, err = ReadMat(dir, o.Data.Matfile)
	}
	if err != nil {
		return
	}

	// select all soils if none given
	if len(o.Soils) == 0 {
		o.Soils = o.Mdb.SoilNames()
	}
	if len(o.Soils) == 0 {
		return nil, chk.Err("scenario has no soils to evaluate")
	}

	// check selection
	for _, name := range o.Soils {
		if _, ok := o.Mdb.Soils[name]; !ok {
			return nil, chk.Err("soil %q is not available in materials database", name)
		}
	}
	return
}

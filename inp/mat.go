// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/ToshiyukiBandai/soil-physics/mdl/conduct"
	"github.com/ToshiyukiBandai/soil-physics/mdl/retention"
	"github.com/ToshiyukiBandai/soil-physics/mdl/soil"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material: "reten", "conduct" or "soil"
	Model string     `json:"model"` // name of model; e.g. "vg", "mualem", "vgm"
	Desc  string     `json:"desc"`  // extra information; e.g. texture class
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Reten   retention.Model // pointer to actual retention model
	Conduct conduct.Model   // pointer to actual conductivity model
	Soil    *soil.Model     // pointer to actual coupled soil model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Retens   map[string]*Material // subset with materials/models: retention models
	Conducts map[string]*Material // subset with materials/models: conductivities
	Soils    map[string]*Material // subset with materials/models: coupled soils
}

// couplings maps coupled-soil model names to their retention and
// conductivity components
var couplings = map[string][2]string{
	"vgm": {"vg", "mualem"},  // van Genuchten-Mualem
	"bcb": {"bc", "burdine"}, // Brooks-Corey-Burdine
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// allocate and initialise models
	err = mdb.init()
	return
}

// GetSoil returns an initialised coupled soil model
func (o *MatDb) GetSoil(name string) (*soil.Model, error) {
	m, ok := o.Soils[name]
	if !ok {
		return nil, chk.Err("soil %q is not available in materials database", name)
	}
	return m.Soil, nil
}

// SoilNames returns the names of all coupled soils, in input order
func (o *MatDb) SoilNames() (names []string) {
	for _, m := range o.Materials {
		if m.Type == "soil" {
			names = append(names, m.Name)
		}
	}
	return
}

// init builds the subsets and allocates the models
func (o *MatDb) init() (err error) {

	// subsets
	o.Retens = make(map[string]*Material)
	o.Conducts = make(map[string]*Material)
	o.Soils = make(map[string]*Material)
	for _, m := range o.Materials {
		switch strings.ToLower(m.Type) {
		case "reten":
			o.Retens[m.Name] = m
		case "conduct":
			o.Conducts[m.Name] = m
		case "soil":
			o.Soils[m.Name] = m
		default:
			return chk.Err("material type %q is incorrect; options are \"reten\", \"conduct\" and \"soil\"", m.Type)
		}
	}

	// alloc/init: retention models
	for _, m := range o.Retens {
		m.Reten, err = retention.New(m.Model)
		if err != nil {
			return
		}
		err = m.Reten.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// alloc/init: conductivities
	for _, m := range o.Conducts {
		m.Conduct, err = conduct.New(m.Model)
		if err != nil {
			return
		}
		err = m.Conduct.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// alloc/init: coupled soils
	for _, m := range o.Soils {
		pair, ok := couplings[m.Model]
		if !ok {
			return chk.Err("coupled-soil model %q is incorrect; options are \"vgm\" and \"bcb\"", m.Model)
		}
		m.Reten, err = retention.New(pair[0])
		if err != nil {
			return
		}
		err = m.Reten.Init(m.Prms)
		if err != nil {
			return
		}
		m.Conduct, err = conduct.New(pair[1])
		if err != nil {
			return
		}
		err = m.Conduct.Init(m.Prms)
		if err != nil {
			return
		}
		m.Soil = new(soil.Model)
		err = m.Soil.Init(m.Name, m.Prms, m.Reten, m.Conduct)
		if err != nil {
			return
		}
	}
	return
}

// prm is a shorthand to build one parameter
func prm(n string, v float64) *dbf.P {
	return &dbf.P{N: n, V: v}
}

// vgmSoil builds one van Genuchten-Mualem catalog entry
func vgmSoil(name, desc string, thr, ths, alp, n, ksat float64) *Material {
	return &Material{
		Name:  name,
		Type:  "soil",
		Model: "vgm",
		Desc:  desc,
		Prms: dbf.Params{
			prm("thr", thr),
			prm("ths", ths),
			prm("alp", alp),
			prm("n", n),
			prm("ksat", ksat),
		},
	}
}

// DefaultSoils returns the built-in catalog with the fitted van Genuchten
// parameters of the twelve USDA texture classes after Carsel and Parrish
// (1988). Units: α in 1/cm, Ksat in cm/day.
func DefaultSoils() (mdb *MatDb, err error) {
	mdb = &MatDb{
		Materials: MatsData{
			vgmSoil("sand", "USDA sand", 0.045, 0.43, 0.145, 2.68, 712.8),
			vgmSoil("loamy-sand", "USDA loamy sand", 0.057, 0.41, 0.124, 2.28, 350.2),
			vgmSoil("sandy-loam", "USDA sandy loam", 0.065, 0.41, 0.075, 1.89, 106.1),
			vgmSoil("loam", "USDA loam", 0.078, 0.43, 0.036, 1.56, 24.96),
			vgmSoil("silt", "USDA silt", 0.034, 0.46, 0.016, 1.37, 6.0),
			vgmSoil("silt-loam", "USDA silt loam", 0.067, 0.45, 0.02, 1.41, 10.8),
			vgmSoil("sandy-clay-loam", "USDA sandy clay loam", 0.1, 0.39, 0.059, 1.48, 31.44),
			vgmSoil("clay-loam", "USDA clay loam", 0.095, 0.41, 0.019, 1.31, 6.24),
			vgmSoil("silty-clay-loam", "USDA silty clay loam", 0.089, 0.43, 0.01, 1.23, 1.68),
			vgmSoil("sandy-clay", "USDA sandy clay", 0.1, 0.38, 0.027, 1.23, 2.88),
			vgmSoil("silty-clay", "USDA silty clay", 0.07, 0.36, 0.005, 1.09, 0.48),
			vgmSoil("clay", "USDA clay", 0.068, 0.38, 0.008, 1.09, 4.8),
		},
	}
	err = mdb.init()
	return
}

// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soil couples a water retention model with a relative
// conductivity model and the saturated conductivity of one soil,
// giving the two characteristic curves
//      θ(pc)              water retention curve
//      K(pc) = Ksat * kr  hydraulic conductivity function
// where pc = -ψ ≥ 0 is the suction.
package soil

import (
	"github.com/ToshiyukiBandai/soil-physics/mdl/conduct"
	"github.com/ToshiyukiBandai/soil-physics/mdl/retention"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the characteristic-curve models of one soil
type Model struct {

	// parameters
	Name string  // name of soil
	Ksat float64 // saturated hydraulic conductivity

	// auxiliary models
	Lrm retention.Model // water retention model
	Cnd conduct.Model   // relative conductivity model

	// auxiliary
	nonrate retention.Nonrate // retention model is of non-rate type
}

// Init initialises this structure
func (o *Model) Init(name string, prms dbf.Params, lrm retention.Model, cnd conduct.Model) (err error) {
	o.Name = name
	o.Lrm = lrm
	o.Cnd = cnd
	if p := prms.Find("ksat"); p != nil {
		o.Ksat = p.V
	}
	if o.Ksat <= 0 {
		return chk.Err("soil %q: 'ksat' must be given and positive. ksat=%g is incorrect", name, o.Ksat)
	}
	var ok bool
	if o.nonrate, ok = lrm.(retention.Nonrate); !ok {
		return chk.Err("soil %q: retention model must implement direct θ(pc) evaluation", name)
	}
	return
}

// NewVGM builds the van Genuchten-Mualem coupling from a single
// parameter set (thr, ths, alp, n, ksat and, optionally, m, ell, pcmin)
func NewVGM(name string, prms dbf.Params) (o *Model, err error) {
	lrm, err := retention.New("vg")
	if err != nil {
		return
	}
	if err = lrm.Init(prms); err != nil {
		return
	}
	cnd, err := conduct.New("mualem")
	if err != nil {
		return
	}
	if err = cnd.Init(prms); err != nil {
		return
	}
	o = new(Model)
	err = o.Init(name, prms, lrm, cnd)
	return
}

// Theta computes the volumetric water content θ(pc)
func (o *Model) Theta(pc float64) float64 {
	return o.nonrate.Th(pc)
}

// Se computes the effective saturation Se(pc)
func (o *Model) Se(pc float64) float64 {
	return o.nonrate.Se(pc)
}

// Krel computes the relative conductivity kr(Se(pc))
func (o *Model) Krel(pc float64) float64 {
	return o.Cnd.Klr(o.Se(pc))
}

// Kval computes the hydraulic conductivity K(pc) = Ksat * kr
func (o *Model) Kval(pc float64) float64 {
	return o.Ksat * o.Krel(pc)
}

// Cc computes the specific moisture capacity dθ/dpc
func (o *Model) Cc(pc float64) (float64, error) {
	return o.Lrm.Cc(pc, o.Theta(pc), false)
}

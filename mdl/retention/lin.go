// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear retention model: θ(pc) := θs - λ*(pc-pcae)
type Lin struct {

	// parameters
	λ    float64 // slope coefficient
	pcae float64 // air-entry suction
	thr  float64 // residual water content
	ths  float64 // saturated water content

	// derived
	pcres float64 // residual pc corresponding to θr
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.ths = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "thr":
			o.thr = p.V
		case "ths":
			o.ths = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ < 1e-13 {
		o.λ = 0
		o.pcres = math.MaxFloat64
	} else {
		o.pcres = o.pcae + (o.ths-o.thr)/o.λ
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "lam", V: 0.01},
		&dbf.P{N: "pcae", V: 5},
		&dbf.P{N: "thr", V: 0.1},
		&dbf.P{N: "ths", V: 0.4},
	}
}

// ThMin returns θr
func (o Lin) ThMin() float64 {
	return o.thr
}

// ThMax returns θs
func (o Lin) ThMax() float64 {
	return o.ths
}

// Se computes the effective saturation directly from pc
func (o Lin) Se(pc float64) float64 {
	return (o.Th(pc) - o.thr) / (o.ths - o.thr)
}

// Th computes θ directly from pc
func (o Lin) Th(pc float64) float64 {
	if pc <= o.pcae {
		return o.ths
	}
	if pc >= o.pcres {
		return o.thr
	}
	return o.ths - o.λ*(pc-o.pcae)
}

// Cc computes Cc(pc) := dθ/dpc
func (o Lin) Cc(pc, th float64, wet bool) (float64, error) {
	if pc <= o.pcae || pc >= o.pcres {
		return 0, nil
	}
	return -o.λ, nil
}

// L computes L = ∂Cc/∂pc
func (o Lin) L(pc, th float64, wet bool) (float64, error) {
	return 0, nil
}

// J computes J = ∂Cc/∂θ
func (o Lin) J(pc, th float64, wet bool) (float64, error) {
	return 0, nil
}

// Derivs compute ∂Cc/∂pc and ∂²Cc/∂pc²
func (o Lin) Derivs(pc, th float64, wet bool) (L, Lx, J, Jx, Jy float64, err error) {
	return
}

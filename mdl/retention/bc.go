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

// BrooksCorey implements Brooks and Corey's model
//  θ(pc) = θs                                for pc ≤ pcae
//  θ(pc) = θr + (θs - θr) * (pcae/pc)^λ      for pc > pcae
type BrooksCorey struct {

	// parameters
	λ    float64 // pore-size distribution index
	pcae float64 // air-entry suction
	thr  float64 // residual water content
	ths  float64 // saturated water content
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
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
		case "ksat", "ell":
			// conductivity parameters; ignored here
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ <= 0 {
		return chk.Err("bc: 'lam' must be positive. lam=%g is incorrect\n", o.λ)
	}
	if o.pcae <= 0 {
		return chk.Err("bc: 'pcae' must be positive. pcae=%g is incorrect\n", o.pcae)
	}
	if o.ths <= o.thr {
		return chk.Err("bc: 'ths' must be greater than 'thr'. thr=%g, ths=%g is incorrect\n", o.thr, o.ths)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "lam", V: 0.3},
		&dbf.P{N: "pcae", V: 10},
		&dbf.P{N: "thr", V: 0.1},
		&dbf.P{N: "ths", V: 0.4},
	}
}

// ThMin returns θr
func (o BrooksCorey) ThMin() float64 {
	return o.thr
}

// ThMax returns θs
func (o BrooksCorey) ThMax() float64 {
	return o.ths
}

// Se computes the effective saturation directly from pc
func (o BrooksCorey) Se(pc float64) float64 {
	if pc <= o.pcae {
		return 1.0
	}
	return math.Pow(o.pcae/pc, o.λ)
}

// Th computes θ directly from pc
func (o BrooksCorey) Th(pc float64) float64 {
	return o.thr + (o.ths-o.thr)*o.Se(pc)
}

// Cc computes Cc(pc) := dθ/dpc
func (o BrooksCorey) Cc(pc, th float64, wet bool) (float64, error) {
	if pc <= o.pcae {
		return 0, nil
	}
	return -(o.ths - o.thr) * o.λ * math.Pow(o.pcae/pc, o.λ) / pc, nil
}

// L computes L = ∂Cc/∂pc
func (o BrooksCorey) L(pc, th float64, wet bool) (float64, error) {
	if pc <= o.pcae {
		return 0, nil
	}
	return (o.ths - o.thr) * o.λ * (o.λ + 1.0) * math.Pow(o.pcae/pc, o.λ) / (pc * pc), nil
}

// J computes J = ∂Cc/∂θ
func (o BrooksCorey) J(pc, th float64, wet bool) (float64, error) {
	return 0, nil
}

// Derivs compute ∂Cc/∂pc and ∂²Cc/∂pc²
func (o BrooksCorey) Derivs(pc, th float64, wet bool) (L, Lx, J, Jx, Jy float64, err error) {
	if pc <= o.pcae {
		return
	}
	fac := o.ths - o.thr
	L = fac * o.λ * (o.λ + 1.0) * math.Pow(o.pcae/pc, o.λ) / (pc * pc)
	Lx = -fac * o.λ * (o.λ + 1.0) * (o.λ + 2.0) * math.Pow(o.pcae/pc, o.λ) / (pc * pc * pc)
	return
}

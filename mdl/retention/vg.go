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

// VanGen implements van Genuchten's model
//  θ(pc) = θr + (θs - θr) * [1 + (α*pc)^n]^(-m)
//  By default m is tied to n by Mualem's restriction m = 1 - 1/n;
//  an explicit "m" parameter overrides the restriction.
//  An optional "pclim" parameter truncates the curve at high suction:
//  θ = θr and Cc = 0 for pc ≥ pclim.
type VanGen struct {

	// parameters
	α, m, n float64 // shape parameters
	thr     float64 // residual water content
	ths     float64 // saturated water content
	pcmin   float64 // pc limit to consider zero slope
	pclim   float64 // pc limit to consider the residual state reached

	// derived
	mset bool // m was given explicitly
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.pcmin, o.ths, o.pclim = 1e-3, 1.0, 1e+30
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
			o.mset = true
		case "n":
			o.n = p.V
		case "thr":
			o.thr = p.V
		case "ths":
			o.ths = p.V
		case "pcmin":
			o.pcmin = p.V
		case "pclim":
			o.pclim = p.V
		case "ksat", "ell":
			// conductivity parameters; ignored here
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α <= 0 {
		return chk.Err("vg: 'alp' must be positive. alp=%g is incorrect\n", o.α)
	}
	if o.ths <= o.thr {
		return chk.Err("vg: 'ths' must be greater than 'thr'. thr=%g, ths=%g is incorrect\n", o.thr, o.ths)
	}
	if o.pclim <= o.pcmin {
		return chk.Err("vg: 'pclim' must be greater than 'pcmin'. pcmin=%g, pclim=%g is incorrect\n", o.pcmin, o.pclim)
	}
	if !o.mset {
		if o.n <= 1 {
			return chk.Err("vg: 'n' must be greater than 1 when 'm' is not given. n=%g is incorrect\n", o.n)
		}
		o.m = 1.0 - 1.0/o.n
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "thr", V: 0.078},
		&dbf.P{N: "ths", V: 0.43},
		&dbf.P{N: "alp", V: 0.036},
		&dbf.P{N: "n", V: 1.56},
		&dbf.P{N: "pcmin", V: 1e-3},
	}
}

// ThMin returns θr
func (o VanGen) ThMin() float64 {
	return o.thr
}

// ThMax returns θs
func (o VanGen) ThMax() float64 {
	return o.ths
}

// Se computes the effective saturation directly from pc
func (o VanGen) Se(pc float64) float64 {
	if pc <= o.pcmin {
		return 1.0
	}
	if pc >= o.pclim {
		return 0.0
	}
	c := math.Pow(o.α*pc, o.n)
	return math.Pow(1.0+c, -o.m)
}

// Th computes θ directly from pc
func (o VanGen) Th(pc float64) float64 {
	return o.thr + (o.ths-o.thr)*o.Se(pc)
}

// Cc computes Cc(pc) := dθ/dpc
func (o VanGen) Cc(pc, th float64, wet bool) (float64, error) {
	if pc <= o.pcmin || pc >= o.pclim {
		return 0, nil
	}
	c := math.Pow(o.α*pc, o.n)
	fac := o.ths - o.thr
	return -fac * c * math.Pow(c+1.0, -o.m-1.0) * o.m * o.n / pc, nil
}

// L computes L = ∂Cc/∂pc
func (o VanGen) L(pc, th float64, wet bool) (float64, error) {
	if pc <= o.pcmin || pc >= o.pclim {
		return 0, nil
	}
	c := math.Pow(o.α*pc, o.n)
	mn := o.m * o.n
	fac := o.ths - o.thr
	return fac * c * math.Pow(c+1.0, -o.m-2.0) * mn * (c*mn - o.n + c + 1.0) / (pc * pc), nil
}

// J computes J = ∂Cc/∂θ
func (o VanGen) J(pc, th float64, wet bool) (float64, error) {
	return 0, nil
}

// Derivs compute ∂Cc/∂pc and ∂²Cc/∂pc²
func (o VanGen) Derivs(pc, th float64, wet bool) (L, Lx, J, Jx, Jy float64, err error) {
	if pc <= o.pcmin || pc >= o.pclim {
		return
	}
	c := math.Pow(o.α*pc, o.n)
	d := math.Pow(o.α*pc, o.n*2.0)
	mm := o.m * o.m
	nn := o.n * o.n
	mn := o.m * o.n
	ppp := pc * pc * pc
	fac := o.ths - o.thr
	L = fac * c * math.Pow(c+1.0, -o.m-2.0) * mn * (c*mn - o.n + c + 1.0) / (pc * pc)
	Lx = -fac * c * math.Pow(c+1.0, -o.m-3.0) * mn * (d*mm*nn - 3.0*c*o.m*nn - c*nn + nn + 3.0*d*mn + 3.0*c*mn - 3.0*c*o.n - 3.0*o.n + 2.0*d + 4.0*c + 2.0) / ppp
	return
}

// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements models for soil water retention curves
//  The independent variable is the suction (capillary pressure)
//      pc := -ψ ≥ 0
//  where ψ is the matric potential. The dependent variable is the
//  volumetric water content θ, bounded by the residual and saturated
//  water contents θr and θs.
//  References:
//   [1] van Genuchten MT (1980) A closed-form equation for predicting the
//       hydraulic conductivity of unsaturated soils. Soil Science Society
//       of America Journal, 44(5), 892-898
//   [2] Brooks RH and Corey AT (1964) Hydraulic properties of porous media.
//       Hydrology Papers 3, Colorado State University
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// Model implements a water retention curve (WRC)
//  Derivs computes:
//    L  = ∂Cc/∂pc
//    Lx = ∂²Cc/∂pc²
//    J  = ∂Cc/∂θ
//    Jx = ∂²Cc/(∂pc ∂θ)
//    Jy = ∂²Cc/∂θ²
type Model interface {
	Init(prms dbf.Params) error                                            // initialises retention model
	GetPrms(example bool) dbf.Params                                       // gets (an example) of parameters
	ThMin() float64                                                        // returns θr
	ThMax() float64                                                        // returns θs
	Cc(pc, th float64, wet bool) (float64, error)                          // computes Cc = f = ∂θ/∂pc
	L(pc, th float64, wet bool) (float64, error)                           // computes L = ∂Cc/∂pc
	J(pc, th float64, wet bool) (float64, error)                           // computes J = ∂Cc/∂θ
	Derivs(pc, th float64, wet bool) (L, Lx, J, Jx, Jy float64, err error) // computes all derivatives
}

// Nonrate is a subset of WRC that directly computes water content from suction
type Nonrate interface {
	Th(pc float64) float64 // compute θ directly from pc
	Se(pc float64) float64 // compute effective saturation Se = (θ-θr)/(θs-θr)
}

// Update updates pc and θ for given Δpc. An implicit ODE solver is used.
func Update(mdl Model, pc0, th0, Δpc float64) (thNew float64, err error) {

	// the solver and the callbacks panic on failure
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("retention: update from pc=%g with Δpc=%g failed:\n%v", pc0, Δpc, r)
		}
	}()

	// wetting flag
	wet := Δpc < 0

	// callback functions
	//   x      = [0.0, 1.0]
	//   pc     = pc0 + x * Δpc
	//   y[0]   = θ
	//   f(x,y) = dy/dx = dθ/dpc * dpc/dx = Cc * Δpc
	//   J(x,y) = df/dy = ∂Cc/∂θ * Δpc
	fcn := func(f la.Vector, dx, x float64, y la.Vector) {
		Cc, e := mdl.Cc(pc0+x*Δpc, y[0], wet)
		if e != nil {
			chk.Panic("cannot compute Cc:\n%v", e)
		}
		f[0] = Cc * Δpc
	}
	jac := func(dfdy *la.Triplet, dx, x float64, y la.Vector) {
		if dfdy.Max() == 0 {
			dfdy.Init(1, 1, 1)
		}
		J, e := mdl.J(pc0+x*Δpc, y[0], wet)
		if e != nil {
			chk.Panic("cannot compute J:\n%v", e)
		}
		dfdy.Start()
		dfdy.Put(0, 0, J*Δpc)
	}

	// ode solver
	conf := ode.NewConfig("radau5", "", nil)
	conf.SetTols(1e-10, 1e-7)
	odesol := ode.NewSolver(1, conf, fcn, jac, nil)
	defer odesol.Free()

	// solve
	y := la.Vector{th0}
	odesol.Solve(y, 0, 1)
	thNew = y[0]
	return
}

// New returns new water retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

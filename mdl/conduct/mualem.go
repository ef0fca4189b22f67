// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Mualem implements the Mualem-van Genuchten relative conductivity
//  kr(se) = se^ℓ * [1 - (1 - se^(1/m))^m]²
//  with m tied to van Genuchten's n by m = 1 - 1/n unless an explicit
//  "m" parameter is given. The slope dkr/dse is unbounded at se = 1;
//  Klr and DklrDse clamp se to [0,1] and DklrDse returns 0 at the bounds.
type Mualem struct {

	// parameters
	ℓ float64 // pore-connectivity parameter
	m float64 // van Genuchten m

	// derived
	mset bool // m was given explicitly
}

// add model to factory
func init() {
	allocators["mualem"] = func() Model { return new(Mualem) }
}

// Init initialises model
func (o *Mualem) Init(prms dbf.Params) (err error) {
	o.ℓ = 0.5
	var n float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "ell":
			o.ℓ = p.V
		case "m":
			o.m = p.V
			o.mset = true
		case "n":
			n = p.V
		case "thr", "ths", "alp", "ksat", "pcmin":
			// retention/soil parameters; ignored here
		default:
			return chk.Err("mualem: parameter named %q is incorrect\n", p.N)
		}
	}
	if !o.mset {
		if n <= 1 {
			return chk.Err("mualem: 'n' must be greater than 1 when 'm' is not given. n=%g is incorrect\n", n)
		}
		o.m = 1.0 - 1.0/n
	}
	if o.m <= 0 || o.m >= 1 {
		return chk.Err("mualem: 'm' must be within (0, 1). m=%g is incorrect\n", o.m)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Mualem) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "n", V: 1.56},
		&dbf.P{N: "ell", V: 0.5},
	}
}

// Klr returns kr
func (o Mualem) Klr(se float64) float64 {
	if se <= 0 {
		return 0
	}
	if se >= 1 {
		return 1
	}
	u := math.Pow(se, 1.0/o.m)
	g := 1.0 - math.Pow(1.0-u, o.m)
	return math.Pow(se, o.ℓ) * g * g
}

// DklrDse returns ∂kr/∂se
func (o Mualem) DklrDse(se float64) float64 {
	if se <= 0 || se >= 1 {
		return 0
	}
	u := math.Pow(se, 1.0/o.m)
	g := 1.0 - math.Pow(1.0-u, o.m)
	return o.ℓ*math.Pow(se, o.ℓ-1.0)*g*g + 2.0*math.Pow(se, o.ℓ)*g*math.Pow(1.0-u, o.m-1.0)*math.Pow(se, 1.0/o.m-1.0)
}

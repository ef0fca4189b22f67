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

// Burdine implements the Brooks-Corey-Burdine relative conductivity
//  kr(se) = se^(3 + 2/λ)
type Burdine struct {

	// parameters
	λ float64 // pore-size distribution index

	// derived
	η float64 // exponent 3 + 2/λ
}

// add model to factory
func init() {
	allocators["burdine"] = func() Model { return new(Burdine) }
}

// Init initialises model
func (o *Burdine) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "thr", "ths", "pcae", "ksat", "ell":
			// retention/soil parameters; ignored here
		default:
			return chk.Err("burdine: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ <= 0 {
		return chk.Err("burdine: 'lam' must be positive. lam=%g is incorrect\n", o.λ)
	}
	o.η = 3.0 + 2.0/o.λ
	return
}

// GetPrms gets (an example) of parameters
func (o Burdine) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "lam", V: 0.3},
	}
}

// Klr returns kr
func (o Burdine) Klr(se float64) float64 {
	if se <= 0 {
		return 0
	}
	if se >= 1 {
		return 1
	}
	return math.Pow(se, o.η)
}

// DklrDse returns ∂kr/∂se
func (o Burdine) DklrDse(se float64) float64 {
	if se <= 0 || se >= 1 {
		return 0
	}
	return o.η * math.Pow(se, o.η-1.0)
}

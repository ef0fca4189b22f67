// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for the relative hydraulic conductivity
// of unsaturated soils as a function of the effective saturation
//      se = (θ - θr) / (θs - θr)
// The hydraulic conductivity follows from K = Ksat * kr(se).
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines relative hydraulic conductivity models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Klr(se float64) float64          // Klr returns kr
	DklrDse(se float64) float64      // DklrDse returns ∂kr/∂se
}

// New conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

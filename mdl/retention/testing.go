// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Check checks derivatives
func Check(tst *testing.T, mdl Model, pc0, th0, pcf float64, npts int, tolCc, tolD1a, tolD1b, tolD2a, tolD2b float64, verbose bool, pcSkip []float64, tolSkip float64) {

	// nonrate model
	nrMdl, isNonrate := mdl.(Nonrate)
	if verbose {
		io.Pforan("is_nonrate = %v\n", isNonrate)
	}

	// for all pc stations
	Pc := utl.LinSpace(pc0, pcf, npts)
	Th := make([]float64, npts)
	Th[0] = th0
	var err error
	for i := 1; i < npts; i++ {

		// update
		Th[i], err = Update(mdl, Pc[i-1], Th[i-1], Pc[i]-Pc[i-1])
		if err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}

		// skip point on checking of derivatives
		if doskip(Pc[i], pcSkip, tolSkip) {
			continue
		}

		// wetting flag
		wet := Pc[i]-Pc[i-1] < 0

		// check Cc = dθ/dpc
		if verbose {
			io.Pforan("\npc=%g, th=%g, wetting=%v\n", Pc[i], Th[i], wet)
		}
		if isNonrate {

			// analytical Cc
			CcAna, err := mdl.Cc(Pc[i], Th[i], wet)
			if err != nil {
				tst.Errorf("Cc failed: %v\n", err)
				return
			}

			// numerical Cc
			chk.DerivScaSca(tst, "Cc = ∂θ/∂pc     ", tolCc, CcAna, Pc[i], 1e-3, verbose, func(x float64) float64 {
				return nrMdl.Th(x)
			})
		}

		// compute all derivatives
		L, Lx, J, Jx, Jy, err := mdl.Derivs(Pc[i], Th[i], wet)
		if err != nil {
			tst.Errorf("Derivs failed: %v\n", err)
			return
		}
		LanaA := L
		LanaB, err := mdl.L(Pc[i], Th[i], wet)
		if err != nil {
			tst.Errorf("L failed: %v\n", err)
			return
		}
		LxAna := Lx
		JxAna := Jx
		JyAna := Jy
		JanaA := J
		JanaB, err := mdl.J(Pc[i], Th[i], wet)
		if err != nil {
			tst.Errorf("J failed: %v\n", err)
			return
		}

		// numerical L = ∂Cc/∂pc
		chk.DerivScaSca(tst, "L  = ∂Cc/∂pc    ", tolD1a, LanaA, Pc[i], 1e-3, verbose, func(x float64) float64 {
			Cctmp, _ := mdl.Cc(x, Th[i], wet)
			return Cctmp
		})

		// numerical Lx := ∂²Cc/∂pc²
		chk.DerivScaSca(tst, "Lx = ∂²Cc/∂pc²  ", tolD2a, LxAna, Pc[i], 1e-3, verbose, func(x float64) float64 {
			Ltmp, _, _, _, _, _ := mdl.Derivs(x, Th[i], wet)
			return Ltmp
		})

		// numerical J := ∂Cc/∂θ (version A)
		chk.DerivScaSca(tst, "J  = ∂Cc/∂θ     ", tolD1b, JanaA, Th[i], 1e-3, verbose, func(x float64) float64 {
			Ccval, _ := mdl.Cc(Pc[i], x, wet)
			return Ccval
		})

		// numerical Jx := ∂²Cc/(∂pc ∂θ)
		chk.DerivScaSca(tst, "Jx = ∂²Cc/∂pc∂θ ", tolD2b, JxAna, Th[i], 1e-3, verbose, func(x float64) float64 {
			Ltmp, _, _, _, _, _ := mdl.Derivs(Pc[i], x, wet)
			return Ltmp
		})

		// numerical Jy := ∂²Cc/∂θ²
		chk.DerivScaSca(tst, "Jy = ∂²Cc/∂θ²   ", tolD2b, JyAna, Th[i], 1e-3, verbose, func(x float64) float64 {
			Jtmp, _ := mdl.J(Pc[i], x, wet)
			return Jtmp
		})

		// check A and B derivatives
		chk.Float64(tst, "L_A == L_B", 1e-17, LanaA, LanaB)
		chk.Float64(tst, "J_A == J_B", 1e-17, JanaA, JanaB)
	}
}

// doskip analyse whether a point should be skip or not
func doskip(x float64, xskip []float64, tol float64) bool {
	for _, v := range xskip {
		if math.Abs(x-v) < tol {
			return true
		}
	}
	return false
}

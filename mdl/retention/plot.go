// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots retention model
//  args1 -- arguments for model computed by solving differential equation
//           if args1 == nil, plot is skiped
//  args2 -- arguments for model computed by directly calling θ(pc), if available
//           if args2 == nil, plot is skiped
//  useLog -- plot against log10(1+pc) instead of pc
func Plot(mdl Model, pc0, th0, pcf float64, npts int, useLog bool, args1, args2 *plt.A, label string) (Pc, Th, X []float64, err error) {

	// plot using Update
	Pc = utl.LinSpace(pc0, pcf, npts)
	Th = make([]float64, npts)
	X = make([]float64, npts)
	if useLog {
		X[0] = math.Log10(1.0 + Pc[0])
	} else {
		X[0] = Pc[0]
	}
	if args1 != nil {
		Th[0] = th0
		for i := 1; i < npts; i++ {
			Th[i], err = Update(mdl, Pc[i-1], Th[i-1], Pc[i]-Pc[i-1])
			if err != nil {
				return
			}
			if useLog {
				X[i] = math.Log10(1.0 + Pc[i])
			} else {
				X[i] = Pc[i]
			}
		}
		args1.L = label
		args1.NoClip = true
		plt.Plot(X, Th, args1)
	}

	// plot using Th function
	if args2 != nil {
		if m, ok := mdl.(Nonrate); ok {
			Pc = utl.LinSpace(pc0, pcf, 101)
			Th = make([]float64, 101)
			X = make([]float64, 101)
			for i, pc := range Pc {
				Th[i] = m.Th(pc)
				if useLog {
					X[i] = math.Log10(1.0 + pc)
				} else {
					X[i] = pc
				}
			}
			args2.L = label + "_direct"
			args2.NoClip = true
			plt.Plot(X, Th, args2)
		}
	}
	return
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(thmax float64, useLog, show bool) {
	plt.AxisYrange(0, thmax)
	xl := "$p_c$"
	if useLog {
		xl = "$\\log_{10}(1+p_c)$"
	}
	plt.Gll(xl, "$\\theta$", nil)
	if show {
		plt.Show()
	}
}

// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the presentation layer: figures with the
// characteristic curves and results files
package out

import (
	"math"

	"github.com/ToshiyukiBandai/soil-physics/mdl/soil"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// DrawCurves draws the water retention curves (top subplot) and the
// hydraulic conductivity functions (bottom subplot) of all soils.
//  useLog -- plot against log10(pc); requires a positive suction grid
//  thmax  -- upper limit of the θ axis; 0 means largest θs among soils
//  If fnkey != "", the figure is saved to dirout; otherwise it is shown.
func DrawCurves(all []*soil.Curves, dirout, fnkey string, useLog bool, thmax float64) {

	// y-range of retention subplot
	if thmax == 0 {
		for _, c := range all {
			for _, th := range c.Th {
				thmax = math.Max(thmax, th)
			}
		}
		thmax *= 1.05
	}

	// horizontal axis
	xlbl := GetTexLabel("pc", "")
	if useLog {
		xlbl = GetTexLabel("logpc", "")
	}

	// retention curves
	plt.Subplot(2, 1, 1)
	for i, c := range all {
		X := xvalues(c, useLog)
		args := GetLineStyle(i)
		args.L = c.Name
		args.NoClip = true
		plt.Plot(X, c.Th, args)
	}
	plt.AxisYrange(0, thmax)
	plt.Gll(xlbl, GetTexLabel("theta", ""), nil)

	// conductivity functions, log10 ordinate
	plt.Subplot(2, 1, 2)
	for i, c := range all {
		X := xvalues(c, useLog)
		Y := make([]float64, len(c.Kval))
		for j, k := range c.Kval {
			// floor avoids log10(0) when kr underflows at very high suction
			Y[j] = math.Log10(math.Max(k, 1e-300))
		}
		args := GetLineStyle(i)
		args.L = c.Name
		args.NoClip = true
		plt.Plot(X, Y, args)
	}
	plt.Gll(xlbl, GetTexLabel("logK", ""), nil)

	// save or show
	if fnkey != "" {
		plt.Save(dirout, fnkey)
		return
	}
	plt.Show()
}

// xvalues computes the horizontal axis values of one curve set
func xvalues(c *soil.Curves, useLog bool) (X []float64) {
	X = make([]float64, len(c.Pc))
	for i, pc := range c.Pc {
		if useLog {
			if pc <= 0 {
				chk.Panic("log axis requires positive suction values. pc=%g is incorrect", pc)
			}
			X[i] = math.Log10(pc)
		} else {
			X[i] = pc
		}
	}
	return
}

// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots relative conductivity model
func Plot(o Model, dirout, fnkey string, np int, withText, deriv bool) {
	X := utl.LinSpace(0, 1, np)
	Y := make([]float64, np)
	var Z []float64
	if deriv {
		Z = make([]float64, np)
	}
	for i := 0; i < np; i++ {
		Y[i] = o.Klr(X[i])
		if deriv {
			Z[i] = o.DklrDse(X[i])
		}
	}
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(X, Y, &plt.A{C: "b", Ls: "-", NoClip: true})
	if withText {
		l := np - 1
		plt.Text(X[0], Y[0], io.Sf("(%g, %g)", X[0], Y[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
		plt.Text(X[l], Y[l], io.Sf("(%g, %g)", X[l], Y[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
	}
	plt.Gll("$s_e$", "$k_r$", nil)
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(X, Z, &plt.A{C: "b", Ls: "-", NoClip: true})
		if withText {
			l := np - 1
			plt.Text(X[0], Z[0], io.Sf("(%g, %g)", X[0], Z[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
			plt.Text(X[l], Z[l], io.Sf("(%g, %g)", X[l], Z[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
		}
		plt.Gll("$s_e$", "$\\mathrm{d}{k_r}/\\mathrm{d}{s_e}$", nil)
	}
	plt.Save(dirout, fnkey)
}

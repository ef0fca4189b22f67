// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/plt"

// lineStyles holds the default line styles cycled over soils
var lineStyles = []plt.A{
	{C: "b", Ls: "-"}, {C: "r", Ls: "-"}, {C: "g", Ls: "-"}, {C: "m", Ls: "-"},
	{C: "c", Ls: "-"}, {C: "y", Ls: "-"}, {C: "k", Ls: "-"},
	{C: "b", Ls: "--"}, {C: "r", Ls: "--"}, {C: "g", Ls: "--"}, {C: "m", Ls: "--"},
	{C: "c", Ls: "--"},
}

// GetLineStyle returns a copy of the default line style of the i-th curve
func GetLineStyle(i int) *plt.A {
	a := lineStyles[i%len(lineStyles)]
	return &a
}

// GetTexLabel returns the TeX label of a results key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "pc":
		l += "p_c"
	case "psi":
		l += "\\psi"
	case "logpc":
		l += "\\log_{10}(p_c)"
	case "theta":
		l += "\\theta"
	case "se":
		l += "S_e"
	case "kr":
		l += "K_r"
	case "K":
		l += "K"
	case "logK":
		l += "\\log_{10}(K)"
	case "cc":
		l += "\\mathrm{d}\\theta/\\mathrm{d}p_c"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}

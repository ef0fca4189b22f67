// Copyright 2018 The Soil-Physics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/ToshiyukiBandai/soil-physics/mdl/soil"
	"github.com/cpmech/gosl/io"
)

// Results holds the curve tables written to the results file
type Results struct {
	Curves []*soil.Curves `json:"curves"`
}

// WriteResults writes all curve tables to a JSON (.res) file
func WriteResults(dirout, fnkey string, all []*soil.Curves) (fn string, err error) {
	res := Results{Curves: all}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	err = enc.Encode(&res)
	if err != nil {
		return
	}
	fn = filepath.Join(dirout, fnkey+".res")
	io.WriteFileD(dirout, fnkey+".res", &buf)
	return
}

// ReadResults reads curve tables back from a JSON (.res) file
func ReadResults(dirout, fnkey string) (res *Results, err error) {
	b := io.ReadFile(filepath.Join(dirout, fnkey+".res"))
	res = new(Results)
	err = json.Unmarshal(b, res)
	return
}

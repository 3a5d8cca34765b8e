// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/param"
)

type paraboloid struct{}

func (paraboloid) Value(x []float64) float64 {
	return (x[0]-1)*(x[0]-1) + 3*(x[1]-2)*(x[1]-2)
}

func TestSimplexConvergesOnParaboloid(tst *testing.T) {

	chk.PrintTitle("simplex: converges on paraboloid")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 0, 1),
		param.NewParameter(1, "y", 0, 1),
	})
	objective := fcn.NewCounted(paraboloid{}, params)
	strategy := param.NewStrategy(2)

	m := Minimize(objective, strategy, 2000, 0.1)
	if len(m.States) == 0 {
		tst.Fatalf("expected at least one state")
	}
	ext := params.Transform(m.LastState().Parameters.X)
	chk.Scalar(tst, "x*", 0.1, ext[0], 1)
	chk.Scalar(tst, "y*", 0.1, ext[1], 2)
}

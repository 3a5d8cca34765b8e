// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrad

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/param"
)

type paraboloid struct{}

func (paraboloid) Value(x []float64) float64 {
	return (x[0]-3)*(x[0]-3) + 2*(x[1]+1)*(x[1]+1)
}

func TestMigradConvergesOnParaboloid(tst *testing.T) {

	chk.PrintTitle("migrad: converges on paraboloid")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 0, 1),
		param.NewParameter(1, "y", 0, 1),
	})
	objective := fcn.NewCounted(paraboloid{}, params)
	strategy := param.DefaultStrategy()

	seed := GenerateSeed(objective, strategy)
	maxfcn := DefaultMaxFcn(params.NVariable())
	edmval := EdmGoal(DefaultTolerance, objective.ErrorDef())

	states := Minimize(objective, seed, strategy, maxfcn, edmval)
	if len(states) == 0 {
		tst.Fatalf("expected at least one state")
	}
	last := states[len(states)-1]

	ext := params.Transform(last.Parameters.X)
	chk.Scalar(tst, "x*", 0.01, ext[0], 3)
	chk.Scalar(tst, "y*", 0.01, ext[1], -1)
	if last.Edm >= edmval*10 {
		tst.Errorf("expected EDM within the accept-with-warning band, got %v", last.Edm)
	}
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contours

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/migrad"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
)

type paraboloid struct{}

func (paraboloid) Value(x []float64) float64 {
	return (x[0]-1)*(x[0]-1) + 2*(x[1]-3)*(x[1]-3)
}

func TestTraceFlagsOnePerPoint(tst *testing.T) {

	chk.PrintTitle("contours: one ApproximateNearMin flag per traced point")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 1, 1),
		param.NewParameter(1, "y", 3, 1),
	})
	objective := fcn.NewCounted(paraboloid{}, params)
	strategy := param.DefaultStrategy()

	seed := migrad.GenerateSeed(objective, strategy)
	edmval := migrad.EdmGoal(migrad.DefaultTolerance, objective.ErrorDef())
	states := migrad.Minimize(objective, seed, strategy, migrad.DefaultMaxFcn(2), edmval)
	min := minimum.NewMinimum(seed, states, objective.ErrorDef())

	result := Trace(objective, min, 0, 1, 8, strategy)
	if len(result.Points) > 0 && len(result.Points) != len(result.ApproximateNearMin) {
		tst.Fatalf("expected ApproximateNearMin to have one flag per point")
	}
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minimize

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/param"
)

type paraboloid struct{}

func (paraboloid) Value(x []float64) float64 {
	return (x[0]+2)*(x[0]+2) + 5*(x[1]-4)*(x[1]-4)
}

func TestCombinedConvergesOnParaboloid(tst *testing.T) {

	chk.PrintTitle("minimize: combined driver converges on paraboloid")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 10, 1),
		param.NewParameter(1, "y", 10, 1),
	})
	objective := fcn.NewCounted(paraboloid{}, params)
	strategy := param.DefaultStrategy()

	m := Combined(objective, strategy, migradMaxFcn(2), 0.1)
	if !m.IsValid() {
		tst.Fatalf("expected a valid combined minimum")
	}
	ext := params.Transform(m.LastState().Parameters.X)
	chk.Scalar(tst, "x*", 0.1, ext[0], -2)
	chk.Scalar(tst, "y*", 0.1, ext[1], 4)
}

func migradMaxFcn(n int) int { return 200 + 100*n + 5*n*n }

// degenerateObjective always reports an identically-zero analytical
// gradient. Migrad's seed gradient is numerical, so the first step still
// moves; every later gradient is zero, so EDM drops to zero after it.
type degenerateObjective struct{}

func (degenerateObjective) Value(x []float64) float64 {
	return (x[0]-1)*(x[0]-1) + (x[1]+3)*(x[1]+3)
}

func (degenerateObjective) Gradient(x []float64) []float64 {
	return []float64{0, 0}
}

func TestCombinedWithZeroAnalyticalGradient(tst *testing.T) {

	chk.PrintTitle("minimize: combined driver returns a minimum when the analytical gradient is zero")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 0, 1),
		param.NewParameter(1, "y", 0, 1),
	})
	objective := fcn.NewCounted(degenerateObjective{}, params)
	strategy := param.DefaultStrategy()

	m := Combined(objective, strategy, migradMaxFcn(2), 0.1)
	if m == nil {
		tst.Fatalf("expected a non-nil minimum")
	}
}

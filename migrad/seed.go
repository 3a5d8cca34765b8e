// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package migrad implements the variable-metric (DFP) minimizer: the
// quasi-Newton iteration loop, its seed generator, and the DFP rank-2
// inverse-Hessian update (C9).
package migrad

import (
	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/numeric"
	"github.com/cpmech/minuit2/param"
)

// GenerateSeed evaluates the objective at the parameters' current internal
// point, computes a numerical gradient seeded by the heuristic gradient,
// and builds the starting inverse Hessian V0 = diag(1/g2_i) (falling back
// to 1 where g2_i is not safely positive).
func GenerateSeed(objective *fcn.Counted, strategy param.Strategy) minimum.Seed {
	params := objective.Params()
	n := params.NVariable()
	eps2 := params.Precision().Eps2()

	intValues := params.InitialInternalValues()
	fval := objective.Call(intValues)
	mp := minimum.NewParameters(intValues, fval)

	heuristic := numeric.HeuristicGradient(objective, intValues)
	gradient := numeric.NumericalGradient(objective, intValues, fval, heuristic, strategy)

	v0 := make([][]float64, n)
	for i := 0; i < n; i++ {
		v0[i] = make([]float64, n)
		if gradient.G2[i] > eps2 {
			v0[i][i] = 1 / gradient.G2[i]
		} else {
			v0[i][i] = 1
		}
	}

	dcovar := 1.0
	errMtx := minimum.NewErrorMatrix(v0, minimum.ApproximateFromSteps)
	errMtx.Dcovar = dcovar

	edm := minimum.EdmComputed(gradient.Grad, v0)
	state := minimum.NewState(mp, errMtx, gradient, edm, objective.NCalls())

	return minimum.NewSeed(state, n, params.Precision().Eps())
}

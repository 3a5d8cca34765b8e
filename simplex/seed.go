// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/numeric"
	"github.com/cpmech/minuit2/param"
)

// GenerateSeed evaluates the objective at the parameters' current internal
// point and builds a heuristic (no-FCN-call) gradient, then a diagonal
// error matrix V0 = diag(1/g2_i), matching Migrad's seed but with an
// un-refined gradient (Simplex does not consume gradient information
// beyond the initial step sizes).
func GenerateSeed(objective *fcn.Counted, strategy param.Strategy) minimum.Seed {
	params := objective.Params()
	n := params.NVariable()
	eps2 := params.Precision().Eps2()

	intValues := params.InitialInternalValues()
	fval := objective.Call(intValues)
	mp := minimum.NewParameters(intValues, fval)

	gradient := numeric.HeuristicGradient(objective, intValues)

	diag := make([][]float64, n)
	for i := 0; i < n; i++ {
		diag[i] = make([]float64, n)
		g2i := gradient.G2[i]
		if absf(g2i) > eps2 {
			diag[i][i] = 1 / g2i
		} else {
			diag[i][i] = 1
		}
	}
	errMtx := minimum.NewErrorMatrix(diag, minimum.ApproximateFromSteps)
	errMtx.Dcovar = 1

	edm := 0.5 * dotMatVec(gradient.Grad, diag)
	state := minimum.NewState(mp, errMtx, gradient, edm, objective.NCalls())

	return minimum.NewSeed(state, n, params.Precision().Eps())
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func dotMatVec(g []float64, v [][]float64) float64 {
	n := len(g)
	var s float64
	for i := 0; i < n; i++ {
		var vg float64
		for j := 0; j < n; j++ {
			vg += v[i][j] * g[j]
		}
		s += g[i] * vg
	}
	return s
}

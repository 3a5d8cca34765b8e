// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userstate

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
	return (x[0]-3)*(x[0]-3) + 2*(x[1]+1)*(x[1]+1)
}

func TestFromMinimumProducesCovarianceAndGCC(tst *testing.T) {

	chk.PrintTitle("userstate: FromMinimum converts internal error matrix to external covariance")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 0, 1),
		param.NewParameter(1, "y", 0, 1),
	})
	objective := fcn.NewCounted(paraboloid{}, params)
	strategy := param.DefaultStrategy()

	seed := migrad.GenerateSeed(objective, strategy)
	edmval := migrad.EdmGoal(migrad.DefaultTolerance, objective.ErrorDef())
	states := migrad.Minimize(objective, seed, strategy, migrad.DefaultMaxFcn(2), edmval)

	min := minimum.NewMinimum(seed, states, objective.ErrorDef())
	result := FromMinimum(min, params)

	if !result.Valid {
		tst.Fatalf("expected a valid result")
	}
	if !result.HasCovariance {
		tst.Fatalf("expected a covariance matrix")
	}
	if len(result.GlobalCC) != 2 {
		tst.Fatalf("expected 2 global correlation coefficients, got %d", len(result.GlobalCC))
	}
}

func TestSqueezeMatrixDropsRowAndColumn(tst *testing.T) {

	chk.PrintTitle("userstate: SqueezeMatrix drops a row and column")

	m := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	squeezed := SqueezeMatrix(m, 1)
	if len(squeezed) != 2 {
		tst.Fatalf("expected 2x2 result")
	}
	chk.Scalar(tst, "[0][0]", 1e-15, squeezed[0][0], 1)
	chk.Scalar(tst, "[0][1]", 1e-15, squeezed[0][1], 3)
	chk.Scalar(tst, "[1][0]", 1e-15, squeezed[1][0], 7)
	chk.Scalar(tst, "[1][1]", 1e-15, squeezed[1][1], 9)
}

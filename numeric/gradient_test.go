// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/param"
)

type quad2 struct{}

func (quad2) Value(x []float64) float64 { return x[0]*x[0] + 4*x[1]*x[1] }

func TestNumericalGradientQuadratic(tst *testing.T) {

	chk.PrintTitle("gradient: numerical, quadratic")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 3, 0.1),
		param.NewParameter(1, "y", 2, 0.1),
	})
	objective := fcn.NewCounted(quad2{}, params)
	x := []float64{3, 2}
	fmin := objective.Call(x)

	heuristic := HeuristicGradient(objective, x)
	grad := NumericalGradient(objective, x, fmin, heuristic, param.DefaultStrategy())

	chk.Scalar(tst, "dfdx", 0.01, grad.Grad[0], 6)
	chk.Scalar(tst, "dfdy", 0.2, grad.Grad[1], 16)
}

type quad2WithGrad struct{ quad2 }

func (quad2WithGrad) Gradient(x []float64) []float64 { return []float64{2 * x[0], 8 * x[1]} }

func TestAnalyticalGradientQuadratic(tst *testing.T) {

	chk.PrintTitle("gradient: analytical, quadratic")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 3, 0.1),
		param.NewParameter(1, "y", 2, 0.1),
	})
	objective := fcn.NewCounted(quad2WithGrad{}, params)
	x := []float64{3, 2}

	grad, ok := AnalyticalGradient(objective, x)
	if !ok {
		tst.Fatalf("expected analytical gradient to be available")
	}
	if !grad.IsAnalytical() {
		tst.Errorf("expected analytical flag to be set")
	}
	chk.Scalar(tst, "dfdx", 1e-9, grad.Grad[0], 6)
	chk.Scalar(tst, "dfdy", 1e-9, grad.Grad[1], 16)
	if grad.G2[0] <= 0 || grad.GStep[0] <= 0 {
		tst.Errorf("expected positive g2/gstep heuristics")
	}
}

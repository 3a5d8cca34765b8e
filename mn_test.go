// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mn

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/minuit2/param"
)

// rosenbrock is the classic banana-shaped test function, minimized at
// (1, 1) with F = 0.
type rosenbrock struct{}

func (rosenbrock) Value(x []float64) float64 {
	return (1-x[0])*(1-x[0]) + 100*(x[1]-x[0]*x[0])*(x[1]-x[0]*x[0])
}

func TestMigradConvergesOnRosenbrock(tst *testing.T) {

	chk.PrintTitle("mn: Migrad converges on the Rosenbrock function")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 0, 0.1),
		param.NewParameter(1, "y", 0, 0.1),
	})

	min := Migrad(rosenbrock{}, params, WithStrategy(2))
	if !min.IsValid() {
		tst.Fatalf("expected a valid minimum")
	}

	ext := params.Transform(min.LastState().Parameters.X)
	chk.Scalar(tst, "x*", 0.01, ext[0], 1)
	chk.Scalar(tst, "y*", 0.01, ext[1], 1)
}

func TestCombinedAndResultRoundtrip(tst *testing.T) {

	chk.PrintTitle("mn: Combined plus Hesse produce a usable Result")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 0, 0.1),
		param.NewParameter(1, "y", 0, 0.1),
	})

	min := Combined(rosenbrock{}, params)
	if !min.IsValid() {
		tst.Fatalf("expected a valid minimum")
	}

	min = Hesse(rosenbrock{}, params, min)
	result := Result(min, params)

	if !result.Valid {
		tst.Fatalf("expected a valid result")
	}
	if !result.HasCovariance {
		tst.Fatalf("expected a covariance matrix")
	}
}

func TestMinosErrorsAroundRosenbrockMinimum(tst *testing.T) {

	chk.PrintTitle("mn: MinosErrors brackets the Rosenbrock minimum")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 0, 0.1),
		param.NewParameter(1, "y", 0, 0.1),
	})

	min := Migrad(rosenbrock{}, params, WithStrategy(2))
	Result(min, params)
	errs := MinosErrors(rosenbrock{}, params, min, 0)

	if errs.LowerError() >= 0 {
		tst.Fatalf("expected a negative lower error, got %v", errs.LowerError())
	}
	if errs.UpperError() <= 0 {
		tst.Fatalf("expected a positive upper error, got %v", errs.UpperError())
	}
}

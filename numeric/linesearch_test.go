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

type square struct{}

func (square) Value(x []float64) float64 { return x[0] * x[0] }

func TestLineSearchQuadratic(tst *testing.T) {

	chk.PrintTitle("line search: downhill quadratic")

	params := param.NewParameters([]param.Parameter{param.NewParameter(0, "x", 2, 0.1)})
	objective := fcn.NewCounted(square{}, params)

	x0 := []float64{2}
	f0 := objective.Call(x0)
	step := []float64{-1}
	gdel := step[0] * 4 // grad = 2x = 4 at x=2

	result := LineSearch(objective, x0, f0, step, gdel, params.Precision())

	if result.Y >= f0 {
		tst.Errorf("line search should improve on f0=%v, got %v", f0, result.Y)
	}
	if result.Y >= 0.1 {
		tst.Errorf("line search should approach the minimum, got %v", result.Y)
	}
}

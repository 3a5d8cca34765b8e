// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minimum

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestEdmComputedIdentity(tst *testing.T) {

	chk.PrintTitle("edm: identity matrix")

	grad := []float64{1, 2}
	v := [][]float64{{1, 0}, {0, 1}}
	chk.Scalar(tst, "edm", 1e-15, EdmComputed(grad, v), 0.5*(1*1+2*2))
}

func TestMinimumLastStateFallsBackToSeed(tst *testing.T) {

	chk.PrintTitle("minimum: last state fallback")

	p := NewParameters([]float64{1, 2}, 3.5)
	seed := NewSeed(NewState(p, NewErrorMatrix([][]float64{{1, 0}, {0, 1}}, Accurate), FunctionGradient{}, 0, 1), 2, 1e-16)
	m := NewMinimum(seed, nil, 1)
	chk.Scalar(tst, "fval", 1e-15, m.Fval(), 3.5)
}

func TestMinimumValidityFlags(tst *testing.T) {

	chk.PrintTitle("minimum: validity flags")

	p := NewParameters([]float64{0}, 0)
	errMtx := NewErrorMatrix([][]float64{{1}}, Accurate)
	state := NewState(p, errMtx, FunctionGradient{}, 0.001, 5)
	seed := NewSeed(state, 1, 1e-16)
	m := NewMinimum(seed, []State{state}, 1)
	if !m.IsValid() {
		tst.Errorf("expected valid minimum")
	}
	m.AboveMaxEdm = true
	if m.IsValid() {
		tst.Errorf("expected invalid minimum once above_max_edm is set")
	}
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minimum

// Parameters is the internal-space point an engine is currently evaluating:
// the internal vector x, the function value there, and an optional step
// vector (present only when produced by a step, e.g. post-line-search).
type Parameters struct {
	X        []float64
	HasStep  bool
	Step     []float64
	FVal     float64
	Valid    bool
}

// NewParameters builds a valid parameter point with no step vector.
func NewParameters(x []float64, fval float64) Parameters {
	return Parameters{X: x, FVal: fval, Valid: true}
}

// NewParametersWithStep builds a valid parameter point carrying the step
// that produced it.
func NewParametersWithStep(x, step []float64, fval float64) Parameters {
	return Parameters{X: x, HasStep: true, Step: step, FVal: fval, Valid: true}
}

// Vec is the internal-space coordinate vector.
func (p Parameters) Vec() []float64 { return p.X }

// Fval is the function value at Vec().
func (p Parameters) Fval() float64 { return p.FVal }

// Dirin is the step vector, valid only when HasStep is true.
func (p Parameters) Dirin() []float64 { return p.Step }

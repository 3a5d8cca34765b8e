// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minimum holds the shared minimum-state data model (C8): the
// current internal-space point, the inverse-Hessian error matrix, the
// gradient record, and the history of states an engine accumulates into a
// terminal FunctionMinimum.
package minimum

// FunctionGradient is the shared record produced by every gradient
// producer (C5): the first derivative g, the diagonal second-derivative
// estimate g2, and the step sizes gstep used to obtain them, all in
// internal space, plus whether this record came from the user's
// analytical gradient.
type FunctionGradient struct {
	Grad, G2, GStep []float64
	Analytical      bool
}

// NewFunctionGradient builds a numerical (non-analytical) gradient record.
func NewFunctionGradient(grad, g2, gstep []float64) FunctionGradient {
	return FunctionGradient{Grad: grad, G2: g2, GStep: gstep}
}

// NewAnalyticalGradient builds a gradient record sourced from the user's
// analytical gradient.
func NewAnalyticalGradient(grad, g2, gstep []float64) FunctionGradient {
	return FunctionGradient{Grad: grad, G2: g2, GStep: gstep, Analytical: true}
}

// IsAnalytical reports whether this record came from the user's gradient.
func (g FunctionGradient) IsAnalytical() bool { return g.Analytical }

// IsValid reports whether Grad is non-empty and G2 and GStep have the same
// length as Grad. The values themselves are not checked for finiteness.
func (g FunctionGradient) IsValid() bool {
	n := len(g.Grad)
	return n > 0 && len(g.G2) == n && len(g.GStep) == n
}

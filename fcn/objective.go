// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fcn defines the user-supplied objective capability interface and
// the call-counted wrapper every engine evaluates through (C4).
package fcn

// Objective is the capability every engine needs at minimum: evaluate F at
// an external-space point. ErrorDef, when not overridden, defaults to 1
// (appropriate for a chi-square objective); a log-likelihood objective
// overrides it to 0.5 via HasErrorDef.
type Objective interface {
	Value(external []float64) float64
}

// HasErrorDef is implemented by objectives that use a non-default error
// definition (0.5 for -log-likelihood, 1 for chi-square/least-squares).
type HasErrorDef interface {
	ErrorDef() float64
}

// HasGradient is implemented by objectives that can supply an analytical
// gradient in external space, bypassing the numerical gradient kernel (C5).
type HasGradient interface {
	Gradient(external []float64) []float64
}

// HasG2 is implemented by objectives that can supply the diagonal second
// derivative (curvature) directly, in external space.
type HasG2 interface {
	G2(external []float64) []float64
}

// HasHessian is implemented by objectives that can supply the full packed
// upper-triangle Hessian directly, in external space.
type HasHessian interface {
	Hessian(external []float64) []float64
}

// ErrorDefOf returns obj's error definition, defaulting to 1.
func ErrorDefOf(obj Objective) float64 {
	if h, ok := obj.(HasErrorDef); ok {
		return h.ErrorDef()
	}
	return 1
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package param implements the parameter model and the bounded/unbounded
// transformation layer (external <-> internal space) that every engine in
// this module searches through, plus the machine-precision and 3-point
// parabola primitives they all share.
package param

import "math"

// Precision holds the machine-precision constants used throughout the
// engines for step sizing and convergence checks.
type Precision struct {
	eps  float64 // machine epsilon
	eps2 float64 // 2*sqrt(eps), the default finite-difference step scale
}

// NewPrecision returns the default double-precision constants.
func NewPrecision() Precision {
	return Precision{}.SetEps(math.Nextafter(1, 2) - 1)
}

// Eps is the machine epsilon.
func (p Precision) Eps() float64 { return p.eps }

// Eps2 is 2*sqrt(eps).
func (p Precision) Eps2() float64 { return p.eps2 }

// SetEps overrides the machine epsilon (used only in tests to exercise
// non-standard arithmetic), returning an updated copy.
func (p Precision) SetEps(eps float64) Precision {
	return Precision{eps: eps, eps2: 2 * math.Sqrt(eps)}
}

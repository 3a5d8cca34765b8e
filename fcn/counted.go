// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcn

import (
	"math"

	"github.com/cpmech/minuit2/param"
)

// Counted wraps a user Objective and the parameter transform, counting
// evaluations and performing the internal->external mapping before every
// call. It is the only mutated state an engine carries during a run; the
// counter belongs to this instance alone and is never shared across runs.
type Counted struct {
	obj    Objective
	params *param.Parameters
	calls  int
	errDef float64
}

// NewCounted wraps obj for searching over params's internal space.
func NewCounted(obj Objective, params *param.Parameters) *Counted {
	return &Counted{obj: obj, params: params, errDef: ErrorDefOf(obj)}
}

// NCalls is the number of evaluations performed so far.
func (c *Counted) NCalls() int { return c.calls }

// ErrorDef is the objective's error definition (1 for chi-square, 0.5 for
// -log-likelihood).
func (c *Counted) ErrorDef() float64 { return c.errDef }

// Params is the parameter transform this wrapper evaluates through.
func (c *Counted) Params() *param.Parameters { return c.params }

// Objective is the wrapped user objective, exposed so engines that need to
// rebuild a Counted over a modified Parameters set (Minos fixing a scanned
// parameter, Contours fixing two) can reuse it without re-threading it
// through the call chain.
func (c *Counted) Objective() Objective { return c.obj }

// Call evaluates F at an internal-space point, transforming to external
// space first. A NaN result is replaced by math.MaxFloat64 (see
// CallExternal); infinities are returned as they are.
func (c *Counted) Call(internal []float64) float64 {
	external := c.params.Transform(internal)
	return c.CallExternal(external)
}

// CallExternal evaluates F directly at an external-space point, bypassing
// the transform. Used by Scan and Contours, which already hold external
// coordinates.
func (c *Counted) CallExternal(external []float64) float64 {
	c.calls++
	v := c.obj.Value(external)
	if math.IsNaN(v) {
		return math.MaxFloat64
	}
	return v
}

// HasAnalyticalGradient reports whether the wrapped objective supplies a
// gradient, and returns it if so.
func (c *Counted) HasAnalyticalGradient() (HasGradient, bool) {
	g, ok := c.obj.(HasGradient)
	return g, ok
}

// HasAnalyticalG2 reports whether the wrapped objective supplies a diagonal
// second derivative, and returns it if so.
func (c *Counted) HasAnalyticalG2() (HasG2, bool) {
	g, ok := c.obj.(HasG2)
	return g, ok
}

// HasAnalyticalHessian reports whether the wrapped objective supplies a
// full packed-Hessian, and returns it if so.
func (c *Counted) HasAnalyticalHessian() (HasHessian, bool) {
	h, ok := c.obj.(HasHessian)
	return h, ok
}

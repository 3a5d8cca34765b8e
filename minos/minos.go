// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minos

import (
	"math"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/migrad"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
)

// DefaultMaxCalls is the call budget used when the caller does not request
// one: 2*(nvar+1)*migrad.DefaultMaxFcn(nvar), scaling Migrad's own budget
// by the extra work a bracket-then-bisect crossing search does per
// parameter.
func DefaultMaxCalls(nvar int) int { return 2 * (nvar + 1) * migrad.DefaultMaxFcn(nvar) }

// DefaultTolerance is the default crossing-convergence tolerance.
const DefaultTolerance = 0.1

// Errors computes both the lower and upper MINOS error for external
// parameter par, returning (lowerError, upperError).
func Errors(objective *fcn.Counted, min *minimum.Minimum, par int, strategy param.Strategy, maxCalls int, tolerance float64) (float64, float64) {
	e := ComputeError(objective, min, par, strategy, maxCalls, tolerance)
	return e.LowerError(), e.UpperError()
}

// ComputeError runs both crossing searches for external parameter par and
// returns the combined asymmetric Error.
func ComputeError(objective *fcn.Counted, min *minimum.Minimum, par int, strategy param.Strategy, maxCalls int, tolerance float64) Error {
	p := objective.Params().Parameter(par)
	hesseErr := p.Error()

	lo := Lower(objective, min, par, strategy, maxCalls, tolerance)
	up := Upper(objective, min, par, strategy, maxCalls, tolerance)

	return NewError(par, hesseErr, lo, up)
}

// Lower searches for the crossing on the negative side of parameter par.
func Lower(objective *fcn.Counted, min *minimum.Minimum, par int, strategy param.Strategy, maxCalls int, tolerance float64) Cross {
	return crossing(objective, min, par, -1, strategy, maxCalls, tolerance)
}

// Upper searches for the crossing on the positive side of parameter par.
func Upper(objective *fcn.Counted, min *minimum.Minimum, par int, strategy param.Strategy, maxCalls int, tolerance float64) Cross {
	return crossing(objective, min, par, 1, strategy, maxCalls, tolerance)
}

func crossing(objective *fcn.Counted, min *minimum.Minimum, par int, direction float64, strategy param.Strategy, maxCalls int, tolerance float64) Cross {
	params := objective.Params()
	nvar := params.NVariable()
	if maxCalls <= 0 {
		maxCalls = DefaultMaxCalls(nvar)
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	p := params.Parameter(par)
	if p.IsFixed() || p.IsConst() {
		return InvalidCross(0)
	}

	errVal := p.Error()
	val := p.Value()
	pdir := direction * errVal
	pmid := val + pdir

	if direction > 0 && p.HasUpperLimit() && pmid > p.UpperLimit() {
		pmid = p.UpperLimit() - 1e-6*math.Max(math.Abs(p.UpperLimit()-val), 1e-10)
		return FindCrossing(objective, min, par, pmid, pdir, tolerance, maxCalls, strategy)
	}
	if direction < 0 && p.HasLowerLimit() && pmid < p.LowerLimit() {
		pmid = p.LowerLimit() + 1e-6*math.Max(math.Abs(val-p.LowerLimit()), 1e-10)
		return FindCrossing(objective, min, par, pmid, pdir, tolerance, maxCalls, strategy)
	}

	return FindCrossing(objective, min, par, pmid, pdir, tolerance, maxCalls, strategy)
}

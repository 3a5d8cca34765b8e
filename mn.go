// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mn is the public entry point: it wires param, fcn, migrad,
// simplex, minimize, hesse, minos, contours, scan and userstate into the
// small set of calls most callers need — Migrad/Simplex/Combined to find a
// minimum, Hesse/MinosErrors/Contours/Scan to characterize it, and Result
// to read it back in user (external) space.
package mn

import (
	"context"

	"github.com/cpmech/minuit2/contours"
	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/hesse"
	"github.com/cpmech/minuit2/migrad"
	"github.com/cpmech/minuit2/minimize"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/minos"
	"github.com/cpmech/minuit2/param"
	"github.com/cpmech/minuit2/scan"
	"github.com/cpmech/minuit2/simplex"
	"github.com/cpmech/minuit2/userstate"
)

// config collects the run-time knobs an Option can override. A zero
// maxFcn or tolerance means "use the calling engine's own default" — each
// top-level function substitutes its engine-specific default individually,
// since Migrad and Minos do not share one default tolerance (Simplex and
// Combined use Migrad's).
type config struct {
	strategy  param.Strategy
	maxFcn    int
	tolerance float64
}

func newConfig(opts []Option) config {
	c := config{strategy: param.DefaultStrategy()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Option configures one call to Migrad, Simplex, Combined, Hesse,
// MinosErrors or Contours.
type Option func(*config)

// WithStrategy selects the effort level (0=low, 1=medium, 2=high).
func WithStrategy(level int) Option {
	return func(c *config) { c.strategy = param.NewStrategy(level) }
}

// WithMaxFcn overrides the function-call budget.
func WithMaxFcn(n int) Option {
	return func(c *config) { c.maxFcn = n }
}

// WithTolerance overrides the convergence tolerance.
func WithTolerance(t float64) Option {
	return func(c *config) { c.tolerance = t }
}

// Migrad runs the variable-metric (DFP) minimizer over params using
// objective, returning the terminal Minimum.
func Migrad(objective fcn.Objective, params *param.Parameters, opts ...Option) *minimum.Minimum {
	c := newConfig(opts)
	counted := fcn.NewCounted(objective, params)
	maxfcn := c.maxFcn
	if maxfcn <= 0 {
		maxfcn = migrad.DefaultMaxFcn(params.NVariable())
	}
	tolerance := c.tolerance
	if tolerance <= 0 {
		tolerance = migrad.DefaultTolerance
	}

	edmval := migrad.EdmGoal(tolerance, counted.ErrorDef())
	seed := migrad.GenerateSeed(counted, c.strategy)
	states := migrad.Minimize(counted, seed, c.strategy, maxfcn, edmval)

	m := minimum.NewMinimum(seed, states, counted.ErrorDef())
	if counted.NCalls() >= maxfcn {
		m.ReachedCallLimit = true
	} else if len(states) > 0 && states[len(states)-1].Edm > edmval*10 {
		m.AboveMaxEdm = true
	}
	return m
}

// Simplex runs the derivative-free Nelder-Mead search over params using
// objective, returning the terminal Minimum.
func Simplex(objective fcn.Objective, params *param.Parameters, opts ...Option) *minimum.Minimum {
	c := newConfig(opts)
	counted := fcn.NewCounted(objective, params)
	maxfcn := c.maxFcn
	if maxfcn <= 0 {
		maxfcn = migrad.DefaultMaxFcn(params.NVariable())
	}
	tolerance := c.tolerance
	if tolerance <= 0 {
		tolerance = migrad.DefaultTolerance
	}
	return simplex.Minimize(counted, c.strategy, maxfcn, tolerance)
}

// Combined runs Migrad, falling back to Simplex-then-Migrad when the
// first Migrad pass is not valid — the hybrid driver recommended for
// difficult or poorly-seeded objectives.
func Combined(objective fcn.Objective, params *param.Parameters, opts ...Option) *minimum.Minimum {
	c := newConfig(opts)
	counted := fcn.NewCounted(objective, params)
	maxfcn := c.maxFcn
	if maxfcn <= 0 {
		maxfcn = migrad.DefaultMaxFcn(params.NVariable())
	}
	tolerance := c.tolerance
	if tolerance <= 0 {
		tolerance = migrad.DefaultTolerance
	}
	return minimize.Combined(counted, c.strategy, maxfcn, tolerance)
}

// Hesse recomputes min's terminal error matrix from the full
// finite-difference Hessian rather than the DFP approximation Migrad
// accumulates, appending the refined state to min's history.
func Hesse(objective fcn.Objective, params *param.Parameters, min *minimum.Minimum, opts ...Option) *minimum.Minimum {
	c := newConfig(opts)
	counted := fcn.NewCounted(objective, params)
	maxCalls := c.maxFcn
	if maxCalls <= 0 {
		maxCalls = hesse.DefaultMaxCalls(min.Seed.NVariable)
	}
	return hesse.Run(counted, min, c.strategy, maxCalls)
}

// MinosErrors computes the asymmetric MINOS confidence interval for
// external parameter par. Fmin and Up come from min; the search is centred
// on the parameter's current value in params and takes its current error
// as the Hesse error (Result writes both back from a minimum).
func MinosErrors(objective fcn.Objective, params *param.Parameters, min *minimum.Minimum, par int, opts ...Option) minos.Error {
	c := newConfig(opts)
	counted := fcn.NewCounted(objective, params)
	maxCalls := c.maxFcn
	if maxCalls <= 0 {
		maxCalls = minos.DefaultMaxCalls(params.NVariable())
	}
	tolerance := c.tolerance
	if tolerance <= 0 {
		tolerance = minos.DefaultTolerance
	}
	return minos.ComputeError(counted, min, par, c.strategy, maxCalls, tolerance)
}

// Contours traces the 2-D confidence contour for external parameters
// parX and parY around min.
func Contours(objective fcn.Objective, params *param.Parameters, min *minimum.Minimum, parX, parY, npoints int, opts ...Option) contours.Result {
	c := newConfig(opts)
	counted := fcn.NewCounted(objective, params)
	return contours.Trace(counted, min, parX, parY, npoints, c.strategy)
}

// Scan evaluates objective along external parameter par, every other
// parameter held at its current value.
func Scan(objective fcn.Objective, params *param.Parameters, par, nsteps int, low, high float64) []scan.Sample {
	counted := fcn.NewCounted(objective, params)
	return scan.Serial(counted, par, nsteps, low, high)
}

// ScanParallel is Scan evaluated concurrently, one goroutine per sample.
func ScanParallel(ctx context.Context, objective fcn.Objective, params *param.Parameters, par, nsteps int, low, high float64) ([]scan.Sample, error) {
	counted := fcn.NewCounted(objective, params)
	return scan.Parallel(ctx, counted, par, nsteps, low, high)
}

// Result reads a terminal Minimum back into user (external) space:
// fitted values, covariance and global correlation coefficients when the
// error matrix is usable.
func Result(min *minimum.Minimum, params *param.Parameters) userstate.Result {
	return userstate.FromMinimum(min, params)
}

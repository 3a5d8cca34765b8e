// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan implements the 1-D parameter scan (C15): evaluate the
// objective along one parameter's direction with every other parameter
// held at its current value, serially or concurrently.
package scan

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/param"
)

// Sample is one (parameterValue, functionValue) point of a scan.
type Sample struct {
	X, F float64
}

// Serial scans external parameter par over nsteps intervals (nsteps
// clamped to [2, 101], so nsteps+1 points) between low and high,
// evaluating every point in order. If
// low == high, the range auto-expands to value +/- 2*error, clamped to the
// parameter's bounds if it has any.
func Serial(objective *fcn.Counted, par, nsteps int, low, high float64) []Sample {
	nsteps, low, high, base := setup(objective.Params(), par, nsteps, low, high)
	step := (high - low) / float64(nsteps)

	result := make([]Sample, nsteps+1)
	for i := 0; i <= nsteps; i++ {
		x := low + float64(i)*step
		pars := append([]float64(nil), base...)
		pars[par] = x
		result[i] = Sample{X: x, F: objective.CallExternal(pars)}
	}
	return result
}

// Parallel scans external parameter par the same way as Serial, but
// evaluates the nsteps+1 points concurrently via an errgroup.Group. No
// worker goroutine mutates shared parameter state; results are collected
// into a pre-sized slice indexed by the worker's own step, then returned
// once every goroutine has completed.
func Parallel(ctx context.Context, objective *fcn.Counted, par, nsteps int, low, high float64) ([]Sample, error) {
	nsteps, low, high, base := setup(objective.Params(), par, nsteps, low, high)
	step := (high - low) / float64(nsteps)

	result := make([]Sample, nsteps+1)
	g, _ := errgroup.WithContext(ctx)

	for i := 0; i <= nsteps; i++ {
		i := i
		g.Go(func() error {
			x := low + float64(i)*step
			pars := append([]float64(nil), base...)
			pars[par] = x
			result[i] = Sample{X: x, F: objective.CallExternal(pars)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// Best returns the index of the lowest-F sample, or -1 if samples is empty.
func Best(samples []Sample) int {
	if len(samples) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(samples); i++ {
		if samples[i].F < samples[best].F {
			best = i
		}
	}
	return best
}

func setup(params *param.Parameters, par, nsteps int, low, high float64) (int, float64, float64, []float64) {
	nsteps = clampInt(nsteps, 2, 101)
	p := params.Parameter(par)
	val := p.Value()
	errv := p.Error()

	if math.Abs(low-high) < 1e-15 {
		low = val - 2*errv
		high = val + 2*errv
	}
	if p.HasLowerLimit() {
		low = math.Max(low, p.LowerLimit())
	}
	if p.HasUpperLimit() {
		high = math.Min(high, p.UpperLimit())
	}

	n := params.Len()
	base := make([]float64, n)
	for i := 0; i < n; i++ {
		base[i] = params.Parameter(i).Value()
	}

	return nsteps, low, high, base
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

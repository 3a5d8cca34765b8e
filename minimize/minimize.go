// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minimize implements the hybrid driver (C11): Migrad first, a
// Simplex fallback at strategy 2 when Migrad fails, and a final Migrad
// pass seeded from the Simplex result.
package minimize

import (
	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/migrad"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
	"github.com/cpmech/minuit2/simplex"
)

// Combined runs Migrad with the caller's strategy; if that minimum is not
// valid, it falls back to Simplex at strategy 2 from the starting
// parameters, then re-runs Migrad at strategy 2 seeded from the Simplex
// result, returning whichever of the two is valid (preferring Migrad).
func Combined(objective *fcn.Counted, strategy param.Strategy, maxfcn int, tolerance float64) *minimum.Minimum {
	up := objective.ErrorDef()
	edmval := migrad.EdmGoal(tolerance, up)

	migradSeed := migrad.GenerateSeed(objective, strategy)
	states := migrad.Minimize(objective, migradSeed, strategy, maxfcn, edmval)
	m := buildMinimum(migradSeed, states, up, maxfcn, edmval, objective)
	if m.IsValid() {
		return m
	}

	highStrategy := param.NewStrategy(2)
	simplexResult := simplex.Minimize(objective, highStrategy, maxfcn, tolerance)
	if !simplexResult.IsValid() {
		return simplexResult
	}

	last := simplexResult.LastState()
	params := objective.Params()
	for ext, v := range params.Transform(last.Parameters.X) {
		params.SetValue(ext, v)
	}
	reseed := migrad.GenerateSeed(objective, highStrategy)
	states2 := migrad.Minimize(objective, reseed, highStrategy, maxfcn, edmval)
	m2 := buildMinimum(reseed, states2, up, maxfcn, edmval, objective)
	if m2.IsValid() {
		return m2
	}
	return simplexResult
}

func buildMinimum(seed minimum.Seed, states []minimum.State, up float64, maxfcn int, edmval float64, objective *fcn.Counted) *minimum.Minimum {
	m := minimum.NewMinimum(seed, states, up)
	if objective.NCalls() >= maxfcn {
		m.ReachedCallLimit = true
	} else if len(states) > 0 && states[len(states)-1].Edm > edmval*10 {
		m.AboveMaxEdm = true
	}
	return m
}

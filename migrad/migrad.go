// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrad

import (
	"math"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/numeric"
	"github.com/cpmech/minuit2/param"
)

// Minimize runs the variable-metric (DFP) minimization and returns the
// resulting history of states. If the first pass does not reach edmval, a
// second pass is run with a 1.3x larger call budget, seeded from the last
// state of the first pass — the "second-pass" retry policy.
func Minimize(objective *fcn.Counted, seed minimum.Seed, strategy param.Strategy, maxfcn int, edmval float64) []minimum.State {
	states := iterate(objective, seed, strategy, maxfcn, edmval)

	if len(states) > 0 && states[len(states)-1].Edm < edmval {
		return states
	}

	maxfcn2 := int(float64(maxfcn) * 1.3)
	remaining := maxfcn2 - objective.NCalls()
	if remaining < 10 {
		return states
	}

	last := seed.State
	if len(states) > 0 {
		last = states[len(states)-1]
	}
	seed2 := minimum.NewSeed(
		minimum.NewState(last.Parameters, last.Error, last.Gradient, last.Edm, last.NFcn),
		seed.NVariable, seed.Precision,
	)

	states2 := iterate(objective, seed2, strategy, maxfcn2, edmval)
	if len(states2) == 0 {
		return states
	}
	return states2
}

func iterate(objective *fcn.Counted, seed minimum.Seed, strategy param.Strategy, maxfcn int, edmval float64) []minimum.State {
	params := objective.Params()
	prec := params.Precision()

	current := seed.State.Parameters
	errMtx := seed.State.Error
	gradient := seed.State.Gradient
	edm := seed.State.Edm

	var states []minimum.State

	for {
		v := errMtx.Matrix
		g := gradient.Grad
		step := vecScale(matVec(v, g), -1)
		gdel := dot(step, g)

		currentStep, currentError := step, errMtx
		if gdel > 0 {
			vFixed, _ := numeric.MakePosDef(v, prec)
			errFixed := minimum.NewErrorMatrix(vFixed, minimum.MadePositiveDefinite)
			errFixed.Dcovar = errMtx.Dcovar
			stepFixed := vecScale(matVec(vFixed, g), -1)
			gdel = dot(stepFixed, g)

			if gdel > 0 {
				stepSD := vecScale(g, -1)
				gdel = dot(stepSD, g)
				errSD := minimum.NewErrorMatrix(identityMatrix(len(g)), minimum.MadePositiveDefinite)
				errSD.Dcovar = 1
				currentStep, currentError = stepSD, errSD
			} else {
				currentStep, currentError = stepFixed, errFixed
			}
		}

		lsResult := numeric.LineSearch(objective, current.X, current.FVal, currentStep, gdel, prec)
		lambda, fNew := lsResult.X, lsResult.Y

		if math.Abs(fNew-current.FVal) <= math.Abs(current.FVal)*prec.Eps() {
			newX := vecAdd(current.X, vecScale(currentStep, lambda))
			newParams := minimum.NewParametersWithStep(newX, vecScale(currentStep, lambda), fNew)
			states = append(states, minimum.NewState(newParams, currentError, gradient, edm, objective.NCalls()))
			break
		}

		newX := vecAdd(current.X, vecScale(currentStep, lambda))
		newParams := minimum.NewParametersWithStep(newX, vecScale(currentStep, lambda), fNew)

		var newGradient minimum.FunctionGradient
		if ag, ok := numeric.AnalyticalGradient(objective, newX); ok {
			newGradient = ag
		} else {
			newGradient = numeric.NumericalGradient(objective, newX, fNew, gradient, strategy)
		}

		vUpdated, newDcovar := dfpUpdate(currentError.Matrix, currentError.Dcovar, newX, current.X, newGradient.Grad, gradient.Grad)

		newError := minimum.NewErrorMatrix(vUpdated, minimum.Accurate)
		newError.Dcovar = newDcovar
		if currentError.Status == minimum.MadePositiveDefinite {
			newError.Status = minimum.MadePositiveDefinite
		}

		edm = minimum.EdmComputed(newGradient.Grad, vUpdated) * (1 + 3*newDcovar)

		states = append(states, minimum.NewState(newParams, newError, newGradient, edm, objective.NCalls()))

		if edm < edmval {
			break
		}
		if objective.NCalls() >= maxfcn {
			break
		}

		current = newParams
		errMtx = newError
		gradient = newGradient
	}

	return states
}

func vecAdd(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// DefaultMaxFcn is the default call budget 200 + 100n + 5n^2 for n variable
// parameters.
func DefaultMaxFcn(n int) int { return 200 + 100*n + 5*n*n }

// DefaultTolerance is the default EDM tolerance used when the caller does
// not request one explicitly.
const DefaultTolerance = 1.0

// EdmGoal is the convergence threshold tolerance*up*0.002 an engine targets.
func EdmGoal(tolerance, up float64) float64 { return tolerance * up * 0.002 }

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hesse implements the accurate error analysis engine (C12): the
// full second-derivative (Hessian) computation by finite differences, its
// positive-definiteness repair and inversion into a covariance matrix.
package hesse

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/numeric"
	"github.com/cpmech/minuit2/param"
)

// Result is the outcome of one Hesse run: the refreshed state and the flags
// describing how trustworthy its error matrix is.
type Result struct {
	State        minimum.State
	HesseFailed  bool
	InvertFailed bool
	MadePosDef   bool
}

// Calculate runs the five-step Hesse algorithm starting from state: diagonal
// Hessian elements by adaptive central differences, an optional gradient refinement
// using the Hessian's curvature, off-diagonal cross-derivatives, a
// positive-definiteness repair, and a final inversion into a covariance
// matrix.
func Calculate(objective *fcn.Counted, state minimum.State, strategy param.Strategy, maxcalls int) Result {
	params := objective.Params()
	n := params.NVariable()
	prec := params.Precision()
	eps2 := prec.Eps2()
	up := objective.ErrorDef()
	amin := state.Fval()

	x := append([]float64(nil), state.Parameters.X...)
	ncycles := strategy.HessianNCycles()
	hessStepTol := strategy.HessianStepTolerance()
	hessG2Tol := strategy.HessianG2Tolerance()

	grad := append([]float64(nil), state.Gradient.Grad...)
	g2 := append([]float64(nil), state.Gradient.G2...)

	hessianG2 := make([]float64, n)
	hessianGStep := make([]float64, n)
	hesseFailed := false

	for i := 0; i < n; i++ {
		if objective.NCalls() >= maxcalls {
			break
		}

		extIdx := params.ExtOfInt(i)
		p := params.Parameter(extIdx)
		hasLimits := p.HasLowerLimit() || p.HasUpperLimit()

		xi := x[i]
		dmin := 8 * eps2 * (math.Abs(xi) + eps2)
		aimsag := math.Sqrt(eps2) * (math.Abs(amin) + up)

		var d float64
		if math.Abs(g2[i]) > eps2 {
			d = math.Max(math.Sqrt(8*aimsag/math.Abs(g2[i])), dmin)
		} else {
			d = dmin
		}
		if hasLimits {
			d = math.Min(d, 0.5)
		}

		g2i := g2[i]

		for cycle := 0; cycle < ncycles; cycle++ {
			if objective.NCalls() >= maxcalls {
				break
			}

			dlast := d
			g2bfr := g2i

			xp := append([]float64(nil), x...)
			xm := append([]float64(nil), x...)
			xp[i] = xi + d
			xm[i] = xi - d

			fp := objective.Call(xp)
			fm := objective.Call(xm)

			sag := 0.5 * (fp + fm - 2*amin)

			if math.Abs(sag) < eps2 {
				if g2i < eps2 {
					hesseFailed = true
				}
				d *= 10
				if hasLimits {
					d = math.Min(d, 0.5)
				}
				continue
			}

			g2i = 2 * sag / (d * d)

			grdi := 0.5 * (fp - fm) / d
			grad[i] = grdi

			d *= math.Sqrt(aimsag / math.Abs(sag))
			d = math.Max(d, dmin)
			if hasLimits {
				d = math.Min(d, 0.5)
			}

			if cycle > 0 {
				dChange := math.Abs(d-dlast) / d
				g2Change := math.Abs(g2i-g2bfr) / math.Abs(g2i)
				if dChange < hessStepTol && g2Change < hessG2Tol {
					break
				}
			}
		}

		hessianG2[i] = g2i
		hessianGStep[i] = d
		g2[i] = g2i
	}

	gstep := hessianGStep
	if strategy.Level() > 0 && !hesseFailed {
		refined := refineGradient(objective, x, amin, strategy, hessianG2, hessianGStep)
		grad = refined.Grad
		g2 = refined.G2
		gstep = refined.GStep
	}

	hessian := make([][]float64, n)
	for i := range hessian {
		hessian[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		hessian[i][i] = hessianG2[i]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if objective.NCalls() >= maxcalls {
				break
			}

			di := hessianGStep[i]
			dj := hessianGStep[j]

			xpp := append([]float64(nil), x...)
			xpp[i] += di
			xpp[j] += dj
			fpp := objective.Call(xpp)

			xpi := append([]float64(nil), x...)
			xpi[i] += di
			fpi := objective.Call(xpi)

			xpj := append([]float64(nil), x...)
			xpj[j] += dj
			fpj := objective.Call(xpj)

			cross := (fpp + amin - fpi - fpj) / (di * dj)
			hessian[i][j] = cross
			hessian[j][i] = cross
		}
	}

	hessianPD, wasModified := numeric.MakePosDef(hessian, prec)

	errMtx, invertFailed := invert(hessianPD, eps2)
	if wasModified {
		errMtx.Status = minimum.MadePositiveDefinite
	}
	if hesseFailed {
		errMtx.HesseFailed = true
	}
	if invertFailed {
		errMtx.InvertFailed = true
		errMtx.Dcovar = 1
	} else if !hesseFailed && !wasModified {
		errMtx.Status = minimum.Accurate
	}

	gradient := minimum.NewFunctionGradient(grad, g2, gstep)
	edm := minimum.EdmComputed(gradient.Grad, errMtx.Matrix)

	newParams := minimum.NewParameters(state.Parameters.X, state.Parameters.FVal)
	newState := minimum.NewState(newParams, errMtx, gradient, edm, objective.NCalls())

	return Result{
		State:        newState,
		HesseFailed:  hesseFailed,
		InvertFailed: invertFailed,
		MadePosDef:   wasModified,
	}
}

// invert inverts a symmetric matrix via gonum; on failure it falls back to
// the diagonal of 1/H_ii (or 1 where H_ii is not safely nonzero) rather
// than propagating a hard error for a singular matrix.
func invert(h [][]float64, eps2 float64) (minimum.ErrorMatrix, bool) {
	n := len(h)
	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dense.Set(i, j, h[i][j])
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		diag := make([][]float64, n)
		for i := range diag {
			diag[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			if math.Abs(h[i][i]) > eps2 {
				diag[i][i] = 1 / h[i][i]
			} else {
				diag[i][i] = 1
			}
		}
		return minimum.NewErrorMatrix(diag, minimum.ApproximateFromSteps), true
	}

	cov := make([][]float64, n)
	for i := 0; i < n; i++ {
		cov[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			cov[i][j] = inv.At(i, j)
		}
	}
	return minimum.NewErrorMatrix(cov, minimum.Accurate), false
}

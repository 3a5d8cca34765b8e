// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
)

// HeuristicGradient computes a rough first gradient estimate from the
// parameters' user-supplied errors, without evaluating the objective
// (C5, heuristic producer). internalX is the current internal-space point.
func HeuristicGradient(objective *fcn.Counted, internalX []float64) minimum.FunctionGradient {
	params := objective.Params()
	n := len(internalX)
	grad := make([]float64, n)
	g2 := make([]float64, n)
	gstep := make([]float64, n)

	eps2 := params.Precision().Eps2()
	errorDef := objective.ErrorDef()

	for i := 0; i < n; i++ {
		ext := params.ExtOfInt(i)
		p := params.Parameter(ext)
		v := internalX[i]
		werr := p.Error()

		sav := params.Int2Ext(ext, v)

		savPlus := sav + werr
		if p.HasUpperLimit() && savPlus > p.UpperLimit() {
			savPlus = p.UpperLimit()
		}
		vplu := params.Ext2Int(ext, savPlus) - v

		savMinus := sav - werr
		if p.HasLowerLimit() && savMinus < p.LowerLimit() {
			savMinus = p.LowerLimit()
		}
		vmin := params.Ext2Int(ext, savMinus) - v

		gsmin := 8 * eps2 * (math.Abs(v) + eps2)
		dirin := math.Max(0.5*(math.Abs(vplu)+math.Abs(vmin)), gsmin)

		g2i := 2 * errorDef / (dirin * dirin)
		grad[i] = g2i * dirin
		g2[i] = g2i

		gstepi := math.Max(gsmin, 0.1*dirin)
		if p.HasLimits() && gstepi > 0.5 {
			gstepi = 0.5
		}
		gstep[i] = gstepi
	}

	return minimum.NewFunctionGradient(grad, g2, gstep)
}

// NumericalGradient refines a gradient estimate by two-point central
// differences, starting from the step sizes in seed (either a heuristic
// gradient or a previous numerical one), cycling up to strategy's
// grad_ncycles to stabilize the step and gradient (C5, numerical producer).
func NumericalGradient(objective *fcn.Counted, internalX []float64, fmin float64, seed minimum.FunctionGradient, strategy param.Strategy) minimum.FunctionGradient {
	params := objective.Params()
	n := len(internalX)
	eps2 := params.Precision().Eps2()
	dfmin := 8 * eps2 * (math.Abs(fmin) + objective.ErrorDef())
	vrysml := 8 * eps2 * eps2

	ncycles := strategy.GradientNCycles()
	stepTol := strategy.GradientStepTolerance()
	gradTol := strategy.GradientTolerance()

	grad := make([]float64, n)
	g2 := make([]float64, n)
	gstep := make([]float64, n)

	for i := 0; i < n; i++ {
		ext := params.ExtOfInt(i)
		p := params.Parameter(ext)
		hasLimits := p.HasLimits() || p.HasLowerLimit() || p.HasUpperLimit()
		xi := internalX[i]

		gstepi := math.Max(seed.GStep[i], vrysml)
		g2i := seed.G2[i]

		var grdi float64
		for cycle := 0; cycle < ncycles; cycle++ {
			optstp := math.Sqrt(dfmin / (math.Abs(g2i) + eps2))
			step := math.Max(optstp, 0.1*math.Abs(gstepi))
			if hasLimits {
				step = math.Min(step, 0.5)
			}
			stpmax := 10 * math.Abs(gstepi)
			stpmin := math.Max(vrysml, 8*eps2*math.Abs(xi))
			step = clamp(step, stpmin, stpmax)

			stepb4 := gstepi
			grdb4 := grdi
			gstepi = step

			xp := append([]float64(nil), internalX...)
			xm := append([]float64(nil), internalX...)
			xp[i] = xi + step
			xm[i] = xi - step

			fp := objective.Call(xp)
			fm := objective.Call(xm)

			grdi = 0.5 * (fp - fm) / step
			g2iNew := (fp + fm - 2*fmin) / (step * step)

			grad[i] = grdi
			g2[i] = g2iNew
			gstep[i] = gstepi
			g2i = g2iNew

			if cycle > 0 {
				stepChange := math.Abs(gstepi-stepb4) / math.Abs(gstepi)
				if stepChange < stepTol {
					break
				}
				gradChange := math.Abs(grdi-grdb4) / (math.Abs(grdi) + dfmin/step)
				if gradChange < gradTol {
					break
				}
			}
		}
	}

	return minimum.NewFunctionGradient(grad, g2, gstep)
}

// AnalyticalGradient transforms the user's external-space gradient to
// internal space via the chain rule, filling g2/gstep with the same
// heuristic as HeuristicGradient (C5, analytical producer).
func AnalyticalGradient(objective *fcn.Counted, internalX []float64) (minimum.FunctionGradient, bool) {
	hg, ok := objective.HasAnalyticalGradient()
	if !ok {
		return minimum.FunctionGradient{}, false
	}
	params := objective.Params()
	external := params.Transform(internalX)
	extGrad := hg.Gradient(external)

	n := len(internalX)
	eps2 := params.Precision().Eps2()
	errorDef := objective.ErrorDef()

	grad := make([]float64, n)
	g2 := make([]float64, n)
	gstep := make([]float64, n)

	for i := 0; i < n; i++ {
		ext := params.ExtOfInt(i)
		p := params.Parameter(ext)
		v := internalX[i]

		dextDint := params.DInt2Ext(ext, v)
		grad[i] = extGrad[ext] * dextDint

		werr := p.Error()
		sav := params.Int2Ext(ext, v)

		savPlus := sav + werr
		if p.HasUpperLimit() && savPlus > p.UpperLimit() {
			savPlus = p.UpperLimit()
		}
		vplu := params.Ext2Int(ext, savPlus) - v

		savMinus := sav - werr
		if p.HasLowerLimit() && savMinus < p.LowerLimit() {
			savMinus = p.LowerLimit()
		}
		vmin := params.Ext2Int(ext, savMinus) - v

		gsmin := 8 * eps2 * (math.Abs(v) + eps2)
		dirin := math.Max(0.5*(math.Abs(vplu)+math.Abs(vmin)), gsmin)

		g2i := 2 * errorDef / (dirin * dirin)
		g2[i] = g2i

		gstepi := math.Max(gsmin, 0.1*dirin)
		if p.HasLimits() && gstepi > 0.5 {
			gstepi = 0.5
		}
		gstep[i] = gstepi
	}

	return minimum.NewAnalyticalGradient(grad, g2, gstep), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

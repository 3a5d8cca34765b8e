// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hesse

import (
	"math"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
)

// refineGradient recomputes the gradient using the Hessian's diagonal g2 and
// step-size estimates as a better-informed starting point than the plain
// numerical gradient — more accurate because it reuses curvature already
// measured while building the Hessian diagonal. Used when strategy > 0.
func refineGradient(objective *fcn.Counted, x []float64, fcnmin float64, strategy param.Strategy, hessianG2, hessianGStep []float64) minimum.FunctionGradient {
	n := len(x)
	prec := objective.Params().Precision()
	eps2 := prec.Eps2()
	up := objective.ErrorDef()

	dfmin := 8 * eps2 * (math.Abs(fcnmin) + up)
	vrysml := 8 * eps2 * eps2

	ncycles := strategy.HessianGradientNCycles()
	stepTol := strategy.GradientStepTolerance()
	gradTol := strategy.GradientTolerance()

	grad := make([]float64, n)
	g2 := make([]float64, n)
	gstep := make([]float64, n)

	for i := 0; i < n; i++ {
		xi := x[i]
		g2i := hessianG2[i]
		gstepi := math.Max(hessianGStep[i], vrysml)

		for cycle := 0; cycle < ncycles; cycle++ {
			optstp := math.Sqrt(dfmin / (math.Abs(g2i) + eps2))
			step := math.Max(optstp, 0.1*math.Abs(gstepi))

			stpmax := 10 * math.Abs(gstepi)
			stpmin := math.Max(vrysml, 8*eps2*math.Abs(xi))
			step = clamp(step, stpmin, stpmax)

			stepb4 := gstepi
			grdb4 := grad[i]

			gstepi = step

			xp := append([]float64(nil), x...)
			xm := append([]float64(nil), x...)
			xp[i] = xi + step
			xm[i] = xi - step

			fp := objective.Call(xp)
			fm := objective.Call(xm)

			grdi := 0.5 * (fp - fm) / step
			g2iNew := (fp + fm - 2*fcnmin) / (step * step)

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

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

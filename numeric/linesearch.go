// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"sort"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/param"
)

const (
	lineSearchUndral = -100.0
	lineSearchToler  = 0.05
	lineSearchSlambg = 5.0
	lineSearchAlpha  = 2.0
	lineSearchMaxIt  = 12
)

// LineSearch performs a 1-D parabolic interpolation along step from the
// current point held by f0/x0, returning the (lambda, f) pair at the best
// point found (C6). gdel is the directional derivative step.gradient and
// must be negative for step to be a descent direction.
func LineSearch(objective *fcn.Counted, x0 []float64, f0 float64, step []float64, gdel float64, prec param.Precision) param.ParabolaPoint {
	p1 := vecAddScaled(x0, step, 1)
	f1 := objective.Call(p1)

	fvmin, xvmin := f0, 0.0
	if f1 < f0 {
		fvmin, xvmin = f1, 1.0
	}

	toler8 := lineSearchToler
	slamax := lineSearchSlambg
	flast := f1

	slam := 1.0
	denom := 2 * (flast - f0 - gdel*slam) / (slam * slam)
	if math.Abs(denom) > prec.Eps2() {
		slam = -gdel / denom
	} else {
		slam = slamax
	}
	if slam > slamax {
		slam = slamax
	}
	if slam < toler8 {
		slam = toler8
	}
	if slam < 0 {
		slam = slamax
	}

	if math.Abs(slam-1) < toler8 && f1 < f0 {
		return param.ParabolaPoint{X: xvmin, Y: fvmin}
	}

	p2 := vecAddScaled(x0, step, slam)
	f2 := objective.Call(p2)
	if f2 < fvmin {
		fvmin, xvmin = f2, slam
	}

	pts := []param.ParabolaPoint{{X: 0, Y: f0}, {X: 1, Y: f1}, {X: slam, Y: f2}}
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	slamax = math.Max(lineSearchAlpha*math.Abs(xvmin), slamax)

	for iter := 0; iter < lineSearchMaxIt; iter++ {
		pb := param.FitParabola3Points(pts[0], pts[1], pts[2])

		if pb.A < prec.Eps2() {
			break
		}

		slam = pb.Min()
		if slam > slamax {
			slam = slamax
		}
		if slam < lineSearchUndral {
			slam = lineSearchUndral
		}
		if slam < 0 && pb.Y(0) < pb.Y(slam) {
			break
		}

		toler9 := lineSearchToler * math.Max(math.Abs(slam), 1)
		if math.Abs(slam-pts[0].X) < toler9 || math.Abs(slam-pts[1].X) < toler9 || math.Abs(slam-pts[2].X) < toler9 {
			break
		}

		pNew := vecAddScaled(x0, step, slam)
		fNew := objective.Call(pNew)
		if fNew < fvmin {
			fvmin, xvmin = fNew, slam
		}

		newPt := param.ParabolaPoint{X: slam, Y: fNew}
		switch {
		case pts[0].Y > pts[1].Y && pts[0].Y > pts[2].Y:
			pts[0] = newPt
		case pts[2].Y > pts[1].Y:
			pts[2] = newPt
		default:
			pts[1] = newPt
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

		if math.Abs(fvmin-f0) < math.Abs(f0)*prec.Eps() {
			break
		}
	}

	return param.ParabolaPoint{X: xvmin, Y: fvmin}
}

func vecAddScaled(x0, step []float64, lambda float64) []float64 {
	out := make([]float64, len(x0))
	for i := range x0 {
		out[i] = x0[i] + lambda*step[i]
	}
	return out
}

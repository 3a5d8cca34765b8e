// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contours implements 2-D confidence-contour tracing (C14): the
// four MINOS cardinal points plus geometric bisection of the largest gaps
// to add intermediate points.
package contours

import (
	"math"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/minos"
	"github.com/cpmech/minuit2/param"
)

// Point is one (x, y) sample on the F = Fmin+Up contour, in external space.
type Point struct{ X, Y float64 }

// Result is a traced contour plus the MINOS errors that seeded it.
type Result struct {
	ParX, ParY int
	Points     []Point
	// ApproximateNearMin flags, one per entry in Points, whether that point
	// was adjusted by the ratio-fallback-to-1 branch (f_mid too close to
	// Fmin to scale reliably) rather than a genuine radial correction. The
	// four cardinal points are always false.
	ApproximateNearMin []bool
	XMinos             minos.Error
	YMinos             minos.Error
	NFcn               int
}

// Trace computes npoints (clamped to a minimum of 4) along the
// F(parX,parY) = Fmin+Up contour. It returns no points if either
// parameter's MINOS error fails to converge. Points beyond the four
// cardinal ones come from a radial rescaling of gap midpoints, not from
// their own crossing search; ApproximateNearMin marks those among them
// for which the rescaling fell back to a ratio of 1.
func Trace(objective *fcn.Counted, min *minimum.Minimum, parX, parY, npoints int, strategy param.Strategy) Result {
	if npoints < 4 {
		npoints = 4
	}

	up := min.Up
	fmin := min.Fval()
	params := objective.Params()

	xMinos := minos.ComputeError(objective, min, parX, strategy, 0, minos.DefaultTolerance)
	yMinos := minos.ComputeError(objective, min, parY, strategy, 0, minos.DefaultTolerance)

	if !xMinos.IsValid() || !yMinos.IsValid() {
		return Result{ParX: parX, ParY: parY, XMinos: xMinos, YMinos: yMinos, NFcn: xMinos.NFcn() + yMinos.NFcn()}
	}

	xVal := params.Parameter(parX).Value()
	yVal := params.Parameter(parY).Value()

	xUp := xVal + xMinos.UpperError()
	xLo := xVal + xMinos.LowerError()
	yUp := yVal + yMinos.UpperError()
	yLo := yVal + yMinos.LowerError()

	pts := []Point{
		{xUp, yVal},
		{xVal, yUp},
		{xLo, yVal},
		{xVal, yLo},
	}
	approx := []bool{false, false, false, false}

	if npoints > 4 {
		pts, approx = bisectGaps(objective, params, parX, parY, xVal, yVal, fmin, up, pts, approx, npoints-4)
	}

	return Result{
		ParX: parX, ParY: parY,
		Points:             pts,
		ApproximateNearMin: approx,
		XMinos:             xMinos, YMinos: yMinos,
		NFcn: xMinos.NFcn() + yMinos.NFcn(),
	}
}

// bisectGaps repeatedly finds the largest scaled gap between consecutive
// cardinal/inserted points and inserts an approximate contour point
// radially between the minimum and the gap's midpoint, scaled so the
// inserted point lands on F = Fmin+Up (a first-order correction, not a
// crossing search).
func bisectGaps(objective *fcn.Counted, params *param.Parameters, parX, parY int, xVal, yVal, fmin, up float64, pts []Point, approx []bool, remaining int) ([]Point, []bool) {
	xUp, xLo := pts[0].X, pts[2].X
	yUp, yLo := pts[1].Y, pts[3].Y

	scalx := 1.0
	if math.Abs(xUp-xLo) > 1e-15 {
		scalx = 1 / (xUp - xLo)
	}
	scaly := 1.0
	if math.Abs(yUp-yLo) > 1e-15 {
		scaly = 1 / (yUp - yLo)
	}

	nparams := params.Len()

	for iter := 0; iter < remaining; iter++ {
		if len(pts) < 2 {
			break
		}

		maxDist := 0.0
		maxIdx := 0
		for i := range pts {
			j := (i + 1) % len(pts)
			dx := (pts[j].X - pts[i].X) * scalx
			dy := (pts[j].Y - pts[i].Y) * scaly
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > maxDist {
				maxDist = dist
				maxIdx = i
			}
		}

		j := (maxIdx + 1) % len(pts)
		midX := 0.5 * (pts[maxIdx].X + pts[j].X)
		midY := 0.5 * (pts[maxIdx].Y + pts[j].Y)

		dirX := midX - xVal
		dirY := midY - yVal

		ext := make([]float64, nparams)
		for i := 0; i < nparams; i++ {
			ext[i] = params.Parameter(i).Value()
		}
		ext[parX] = midX
		ext[parY] = midY
		fMid := objective.CallExternal(ext)

		ratio := 1.0
		nearMin := true
		if math.Abs(fMid-fmin) > 1e-15 {
			ratio = math.Sqrt(up / (fMid - fmin))
			nearMin = false
		}

		newX := xVal + dirX*ratio
		newY := yVal + dirY*ratio

		segDist := math.Hypot(newX-pts[maxIdx].X, newY-pts[maxIdx].Y)
		if segDist < 1e-10 {
			continue
		}

		pts = insertAt(pts, maxIdx+1, Point{newX, newY})
		approx = insertFlagAt(approx, maxIdx+1, nearMin)
	}

	return pts, approx
}

func insertAt(pts []Point, idx int, p Point) []Point {
	out := make([]Point, 0, len(pts)+1)
	out = append(out, pts[:idx]...)
	out = append(out, p)
	out = append(out, pts[idx:]...)
	return out
}

func insertFlagAt(flags []bool, idx int, v bool) []bool {
	out := make([]bool, 0, len(flags)+1)
	out = append(out, flags[:idx]...)
	out = append(out, v)
	out = append(out, flags[idx:]...)
	return out
}

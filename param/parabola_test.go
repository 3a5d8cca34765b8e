// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestFitParabola3PointsExact(tst *testing.T) {

	chk.PrintTitle("parabola: 3-point exact fit")

	// f(x) = 2x^2 - 3x + 5
	f := func(x float64) float64 { return 2*x*x - 3*x + 5 }
	p1 := ParabolaPoint{X: -1, Y: f(-1)}
	p2 := ParabolaPoint{X: 0.5, Y: f(0.5)}
	p3 := ParabolaPoint{X: 2, Y: f(2)}

	pb := FitParabola3Points(p1, p2, p3)
	chk.Scalar(tst, "a", 1e-9, pb.A, 2)
	chk.Scalar(tst, "b", 1e-9, pb.B, -3)
	chk.Scalar(tst, "c", 1e-9, pb.C, 5)

	chk.Scalar(tst, "min x", 1e-9, pb.Min(), 0.75)
	chk.Scalar(tst, "y(1)", 1e-9, pb.Y(1), f(1))
}

func TestFitParabolaWithGradientExact(tst *testing.T) {

	chk.PrintTitle("parabola: gradient-anchored fit")

	// f(x) = x^2 + 4x - 1, f'(x) = 2x+4
	f := func(x float64) float64 { return x*x + 4*x - 1 }
	df := func(x float64) float64 { return 2*x + 4 }

	p1 := ParabolaPoint{X: 0, Y: f(0)}
	p2 := ParabolaPoint{X: 3, Y: f(3)}

	pb := FitParabolaWithGradient(p1, p2, df(0))
	chk.Scalar(tst, "a", 1e-9, pb.A, 1)
	chk.Scalar(tst, "b", 1e-9, pb.B, 4)
	chk.Scalar(tst, "c", 1e-9, pb.C, -1)
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

// ParabolaPoint is a single (x, f(x)) sample used to fit a parabola.
type ParabolaPoint struct {
	X, Y float64
}

// Parabola is the quadratic f(x) = a*x^2 + b*x + c fitted through a set of
// sample points during line search (C6) and the Minos crossing search (C13).
type Parabola struct {
	A, B, C float64
}

// Min returns the x coordinate of the parabola's minimum, -b/(2a).
func (p Parabola) Min() float64 { return -p.B / (2 * p.A) }

// YMin returns the function value at the parabola's minimum.
func (p Parabola) YMin() float64 {
	x := p.Min()
	return p.Y(x)
}

// Y evaluates the parabola at x.
func (p Parabola) Y(x float64) float64 { return p.A*x*x + p.B*x + p.C }

// FitParabolaWithGradient fits a parabola through two points given the
// derivative at the first point.
func FitParabolaWithGradient(p1, p2 ParabolaPoint, dfdxAtP1 float64) Parabola {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	a := (dy - dfdxAtP1*dx) / (dx * dx)
	b := dfdxAtP1 - 2*a*p1.X
	c := p1.Y - a*p1.X*p1.X - b*p1.X
	return Parabola{A: a, B: b, C: c}
}

// FitParabola3Points fits the unique parabola through three points by
// Lagrange interpolation, rearranged to a*x^2+b*x+c form.
func FitParabola3Points(p1, p2, p3 ParabolaPoint) Parabola {
	x1, x2, x3 := p1.X, p2.X, p3.X
	y1, y2, y3 := p1.Y, p2.Y, p3.Y

	d12 := x1 - x2
	d13 := x1 - x3
	d23 := x2 - x3

	l1 := y1 / (d12 * d13)
	l2 := y2 / (-d12 * d23)
	l3 := y3 / (-d13 * -d23)

	a := l1 + l2 + l3
	b := -(x2+x3)*l1 - (x1+x3)*l2 - (x1+x2)*l3
	c := x2*x3*l1 + x1*x3*l2 + x1*x2*l3

	return Parabola{A: a, B: b, C: c}
}

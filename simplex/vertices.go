// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplex implements the Minuit variant of Nelder-Mead: a
// rho-extrapolation adaptive simplex search that requires no gradient
// (C10).
package simplex

// vertex pairs a function value with the parameter vector that produced
// it.
type vertex struct {
	fval float64
	vec  []float64
}

// vertices stores the N+1 simplex vertices and tracks the best (lowest)
// and worst (highest) indices.
type vertices struct {
	v     []vertex
	jlow  int
	jhigh int
}

func newVertices(v []vertex) *vertices {
	s := &vertices{v: v}
	s.jlow, s.jhigh = findExtremes(v)
	return s
}

func findExtremes(v []vertex) (jlow, jhigh int) {
	for i, p := range v {
		if p.fval < v[jlow].fval {
			jlow = i
		}
		if p.fval > v[jhigh].fval {
			jhigh = i
		}
	}
	return
}

func (s *vertices) update(index int, fval float64, vec []float64) {
	s.v[index] = vertex{fval: fval, vec: vec}
	s.jlow, s.jhigh = findExtremes(s.v)
}

func (s *vertices) jLow() int  { return s.jlow }
func (s *vertices) jHigh() int { return s.jhigh }

func (s *vertices) fvalBest() float64  { return s.v[s.jlow].fval }
func (s *vertices) fvalWorst() float64 { return s.v[s.jhigh].fval }
func (s *vertices) best() []float64    { return s.v[s.jlow].vec }

// edm is the simplex's estimated distance to the minimum: the spread
// between the worst and best vertices' function values.
func (s *vertices) edm() float64 { return s.fvalWorst() - s.fvalBest() }

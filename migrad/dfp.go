// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrad

import "math"

func matVec(v [][]float64, g []float64) []float64 {
	n := len(g)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += v[i][j] * g[j]
		}
		out[i] = s
	}
	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func vecSub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func vecScale(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * s
	}
	return out
}

func identityMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

func sumAbs(m [][]float64) float64 {
	var s float64
	for _, row := range m {
		for _, v := range row {
			s += math.Abs(v)
		}
	}
	return s
}

// dfpUpdate applies the Davidon-Fletcher-Powell rank-2 update of the
// inverse Hessian v, given the parameter and gradient changes between
// the previous and the new point.
//
// delgam = dx.dg, gvg = dg^T v dg. If either is non-positive the update is
// skipped and v is returned unchanged. When delgam>gvg a BFGS-like rank-1
// correction term is added: gvg * u⊗u where u = dx/delgam - vg/gvg.
func dfpUpdate(v [][]float64, dcovar float64, pNew, pOld, gNew, gOld []float64) ([][]float64, float64) {
	n := len(pNew)
	dx := vecSub(pNew, pOld)
	dg := vecSub(gNew, gOld)

	delgam := dot(dx, dg)
	vg := matVec(v, dg)
	gvg := dot(dg, vg)

	if delgam <= 0 || gvg <= 0 {
		return v, dcovar
	}

	vUpd := make([][]float64, n)
	for i := 0; i < n; i++ {
		vUpd[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			vUpd[i][j] = dx[i]*dx[j]/delgam - vg[i]*vg[j]/gvg
		}
	}

	if delgam > gvg {
		flnu := make([]float64, n)
		for i := 0; i < n; i++ {
			flnu[i] = dx[i]/delgam - vg[i]/gvg
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				vUpd[i][j] += gvg * flnu[i] * flnu[j]
			}
		}
	}

	vNew := make([][]float64, n)
	for i := 0; i < n; i++ {
		vNew[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			vNew[i][j] = v[i][j] + vUpd[i][j]
		}
	}

	sumNew := sumAbs(vNew)
	newDcovar := dcovar
	if sumNew > 0 {
		newDcovar = 0.5 * (dcovar + sumAbs(vUpd)/sumNew)
	}

	return vNew, newDcovar
}

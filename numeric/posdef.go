// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric implements the gradient-estimation kernel (C5), the
// parabolic line search (C6), and positive-definiteness repair (C7) shared
// by every minimization engine.
package numeric

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/minuit2/param"
)

// MakePosDef forces the symmetric matrix a (row-major, n x n) to be
// positive-definite, shifting its eigenvalues if necessary. Returns the
// corrected matrix and whether a correction was applied. Used for the
// starting inverse Hessian, after the DFP update, and before Hesse inverts
// the Hessian (C7).
func MakePosDef(a [][]float64, prec param.Precision) ([][]float64, bool) {
	n := len(a)
	if n == 0 {
		return a, false
	}
	for _, row := range a {
		if len(row) != n {
			chk.Panic("MakePosDef: matrix must be square, got %d rows x %d cols", n, len(row))
		}
	}

	epspdf := math.Max(prec.Eps2(), 1e-6)

	dgmin := a[0][0]
	for i := 1; i < n; i++ {
		if a[i][i] < dgmin {
			dgmin = a[i][i]
		}
	}

	err := cloneMatrix(a)
	modified := false

	if dgmin <= 0 {
		dg := 0.5 + epspdf - dgmin
		for i := 0; i < n; i++ {
			err[i][i] += dg
		}
		modified = true
	}

	s := make([]float64, n)
	for i := 0; i < n; i++ {
		if err[i][i] > 0 {
			s[i] = 1 / math.Sqrt(err[i][i])
		} else {
			s[i] = 1
		}
	}

	p := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			p.SetSym(i, j, err[i][j]*s[i]*s[j])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(p, true); !ok {
		chk.Panic("MakePosDef: eigendecomposition failed to converge")
	}
	eigenvalues := eig.Values(nil)

	pmin := eigenvalues[0]
	pmax := math.Abs(eigenvalues[0])
	for i := 1; i < n; i++ {
		if eigenvalues[i] < pmin {
			pmin = eigenvalues[i]
		}
		if math.Abs(eigenvalues[i]) > pmax {
			pmax = math.Abs(eigenvalues[i])
		}
	}
	pmax = math.Max(pmax, 1)

	if pmin > epspdf*pmax {
		if modified {
			return err, true
		}
		return a, false
	}

	padd := 0.001*pmax - pmin

	var q mat.Dense
	eig.VectorsTo(&q)
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, eigenvalues[i]+padd)
	}

	var qd, pCorrected mat.Dense
	qd.Mul(&q, d)
	pCorrected.Mul(&qd, q.T())

	result := make([][]float64, n)
	for i := 0; i < n; i++ {
		result[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			result[i][j] = pCorrected.At(i, j) / (s[i] * s[j])
		}
	}
	return result, true
}

func cloneMatrix(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

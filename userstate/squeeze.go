// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userstate

import "github.com/cpmech/minuit2/minimum"

// SqueezeMatrix removes row and column n from a square matrix, returning
// a new (dim-1) x (dim-1) matrix.
func SqueezeMatrix(m [][]float64, n int) [][]float64 {
	dim := len(m)
	newDim := dim - 1
	out := make([][]float64, newDim)
	for i := range out {
		out[i] = make([]float64, newDim)
	}

	ri := 0
	for i := 0; i < dim; i++ {
		if i == n {
			continue
		}
		rj := 0
		for j := 0; j < dim; j++ {
			if j == n {
				continue
			}
			out[ri][rj] = m[i][j]
			rj++
		}
		ri++
	}
	return out
}

// SqueezeCovariance drops parameter n from cov by inverting to the
// Hessian, squeezing that, and inverting back — the correct way to drop a
// parameter from a covariance matrix (simply deleting its row/column
// ignores the information it shared with the others). Falls back to the
// diagonal of the remaining elements if either inversion fails.
func SqueezeCovariance(cov Covariance, n int) Covariance {
	dense := cov.Dense()

	hessian, ok := invert(dense)
	if !ok {
		return diagonalCovariance(cov, n)
	}

	squeezedH := SqueezeMatrix(hessian, n)

	squeezedCov, ok := invert(squeezedH)
	if !ok {
		return diagonalCovariance(cov, n)
	}

	return NewCovarianceFromDense(squeezedCov)
}

func diagonalCovariance(cov Covariance, skip int) Covariance {
	newDim := cov.NRow() - 1
	result := NewCovariance(newDim)
	ri := 0
	for i := 0; i < cov.NRow(); i++ {
		if i == skip {
			continue
		}
		result.Set(ri, ri, cov.Get(i, i))
		ri++
	}
	return result
}

// SqueezeError drops parameter n from an internal-space ErrorMatrix the
// same way SqueezeCovariance does, returning a fresh ErrorMatrix. If
// either inversion fails it falls back to the diagonal of the original
// matrix's remaining entries, as SqueezeCovariance does.
func SqueezeError(err minimum.ErrorMatrix, n int) minimum.ErrorMatrix {
	dim := len(err.Matrix)

	hessian, ok := invert(err.Matrix)
	var cov [][]float64
	if ok {
		cov, ok = invert(SqueezeMatrix(hessian, n))
	}
	if !ok {
		newDim := dim - 1
		diag := make([][]float64, newDim)
		for i := range diag {
			diag[i] = make([]float64, newDim)
		}
		ri := 0
		for i := 0; i < dim; i++ {
			if i == n {
				continue
			}
			diag[ri][ri] = err.Matrix[i][i]
			ri++
		}
		result := minimum.NewErrorMatrix(diag, err.Status)
		result.Dcovar = err.Dcovar
		return result
	}

	result := minimum.NewErrorMatrix(cov, err.Status)
	result.Dcovar = err.Dcovar
	return result
}

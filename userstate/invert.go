// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userstate

import "gonum.org/v1/gonum/mat"

// invert inverts a square matrix via gonum, reporting false instead of an
// error when the matrix is singular — the shared fallback point for
// global-correlation and covariance-squeeze, which both need "try to
// invert, otherwise degrade gracefully" rather than a hard failure.
func invert(a [][]float64) ([][]float64, bool) {
	n := len(a)
	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dense.Set(i, j, a[i][j])
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		return nil, false
	}

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = inv.At(i, j)
		}
	}
	return out, true
}

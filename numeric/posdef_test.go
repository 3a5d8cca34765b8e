// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/minuit2/param"
)

func TestMakePosDefAlreadyPosDefUnchanged(tst *testing.T) {

	chk.PrintTitle("posdef: identity unchanged")

	m := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	result, modified := MakePosDef(m, param.NewPrecision())
	if modified {
		tst.Errorf("identity matrix should not be modified")
	}
	chk.Matrix(tst, "result", 1e-12, result, m)
}

func TestMakePosDefNegativeDiagonalGetsFixed(tst *testing.T) {

	chk.PrintTitle("posdef: negative diagonal repaired")

	m := [][]float64{{-1, 0.5, 0}, {0.5, 1, 0}, {0, 0, 1}}
	result, modified := MakePosDef(m, param.NewPrecision())
	if !modified {
		tst.Errorf("expected matrix to be modified")
	}
	assertEigenvaluesPositive(tst, result)
}

func TestMakePosDefZeroEigenvalueGetsFixed(tst *testing.T) {

	chk.PrintTitle("posdef: zero eigenvalue repaired")

	m := [][]float64{{1, 0}, {0, 0}}
	result, modified := MakePosDef(m, param.NewPrecision())
	if !modified {
		tst.Errorf("expected matrix to be modified")
	}
	assertEigenvaluesPositive(tst, result)
}

func assertEigenvaluesPositive(tst *testing.T, m [][]float64) {
	n := len(m)
	// 2x2/3x3 symmetric: verify positive-definiteness via leading principal
	// minors (Sylvester's criterion) rather than re-deriving eigenvalues.
	for k := 1; k <= n; k++ {
		det := leadingMinorDet(m, k)
		if det <= 0 {
			tst.Errorf("leading principal minor of order %d is not positive: %v", k, det)
		}
	}
}

func leadingMinorDet(m [][]float64, k int) float64 {
	sub := make([][]float64, k)
	for i := 0; i < k; i++ {
		sub[i] = m[i][:k]
	}
	return det(sub)
}

func det(m [][]float64) float64 {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	if n == 2 {
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}
	var sum float64
	sign := 1.0
	for j := 0; j < n; j++ {
		minor := make([][]float64, n-1)
		for i := 1; i < n; i++ {
			row := make([]float64, 0, n-1)
			for c := 0; c < n; c++ {
				if c == j {
					continue
				}
				row = append(row, m[i][c])
			}
			minor[i-1] = row
		}
		sum += sign * m[0][j] * det(minor)
		sign = -sign
	}
	return sum
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package userstate implements the user-facing result surface (C16) and
// its supporting utilities (C17): the packed-upper-triangle external
// covariance matrix, global correlation coefficients, and covariance
// squeezing (dropping one parameter from an inverse-Hessian).
package userstate

import "github.com/cpmech/gosl/chk"

// Covariance is the symmetric n x n external covariance matrix, stored
// packed as its n*(n+1)/2 upper-triangle elements column by column
// (element (r, c) with r <= c at index r + c*(c+1)/2) — the same layout
// ROOT's MnUserCovariance uses.
type Covariance struct {
	data []float64
	nrow int
}

// NewCovariance returns a zeroed n x n covariance.
func NewCovariance(n int) Covariance {
	return Covariance{data: make([]float64, n*(n+1)/2), nrow: n}
}

// NewCovarianceFromPacked wraps existing packed upper-triangle data.
func NewCovarianceFromPacked(data []float64, n int) Covariance {
	if len(data) != n*(n+1)/2 {
		chk.Panic("NewCovarianceFromPacked: data size mismatch: got %d, want %d", len(data), n*(n+1)/2)
	}
	return Covariance{data: data, nrow: n}
}

// NewCovarianceFromDense packs a square n x n matrix into a Covariance.
func NewCovarianceFromDense(m [][]float64) Covariance {
	n := len(m)
	c := NewCovariance(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c.Set(i, j, m[i][j])
		}
	}
	return c
}

// NRow is the matrix dimension.
func (c Covariance) NRow() int { return c.nrow }

func (c Covariance) index(row, col int) int {
	r, col2 := row, col
	if r > col2 {
		r, col2 = col2, r
	}
	return r + col2*(col2+1)/2
}

// Get returns element (row, col); symmetric, so (i,j) == (j,i).
func (c Covariance) Get(row, col int) float64 { return c.data[c.index(row, col)] }

// Set writes element (row, col), implicitly also (col, row).
func (c Covariance) Set(row, col int, v float64) { c.data[c.index(row, col)] = v }

// Data is the raw packed upper-triangle storage.
func (c Covariance) Data() []float64 { return c.data }

// Dense unpacks the covariance into a full n x n matrix.
func (c Covariance) Dense() [][]float64 {
	out := make([][]float64, c.nrow)
	for i := 0; i < c.nrow; i++ {
		out[i] = make([]float64, c.nrow)
		for j := 0; j < c.nrow; j++ {
			out[i][j] = c.Get(i, j)
		}
	}
	return out
}

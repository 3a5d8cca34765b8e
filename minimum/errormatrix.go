// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minimum

// ErrorMatrixStatus is the provenance of an ErrorMatrix's inverse-Hessian
// estimate.
type ErrorMatrixStatus int

const (
	// NotAvailable means no error matrix has been computed yet.
	NotAvailable ErrorMatrixStatus = iota
	// ApproximateFromSteps means the matrix came from the initial diagonal
	// step-based seed, never refined by Migrad's DFP update or Hesse.
	ApproximateFromSteps
	// MadePositiveDefinite means the matrix needed eigenvalue repair
	// (C7) before it could be trusted.
	MadePositiveDefinite
	// Accurate means the matrix is the DFP-updated or Hesse-inverted
	// Hessian with no repair required.
	Accurate
)

// ErrorMatrix is the symmetric n x n inverse Hessian in internal space,
// plus the dcovar distance-from-full-covariance heuristic and the status
// of the last operation that produced it.
type ErrorMatrix struct {
	Matrix       [][]float64
	Dcovar       float64
	Status       ErrorMatrixStatus
	HesseFailed  bool
	InvertFailed bool
	ReachedCallLimit bool
}

// NewErrorMatrix wraps a square matrix with the given status.
func NewErrorMatrix(matrix [][]float64, status ErrorMatrixStatus) ErrorMatrix {
	return ErrorMatrix{Matrix: matrix, Status: status}
}

// N is the matrix dimension.
func (e ErrorMatrix) N() int { return len(e.Matrix) }

// IsValid reports whether the matrix can be trusted: square, and inversion
// did not fail.
func (e ErrorMatrix) IsValid() bool {
	if e.InvertFailed {
		return false
	}
	for _, row := range e.Matrix {
		if len(row) != len(e.Matrix) {
			return false
		}
	}
	return true
}

// IsAccurate reports whether the matrix is the Accurate status.
func (e ErrorMatrix) IsAccurate() bool { return e.Status == Accurate }

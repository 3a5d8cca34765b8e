// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userstate

import (
	"math"

	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
)

// Result is the complete user-facing outcome of a minimization run: the
// fitted parameters, function value, EDM, call count, validity, and
// (when available) the external covariance and global correlation
// coefficients.
type Result struct {
	Params           *param.Parameters
	FVal             float64
	Edm              float64
	NFcn             int
	Valid            bool
	HasCovariance    bool
	Covariance       Covariance
	GlobalCC         []float64
	GlobalCCValid    bool
}

// FromMinimum builds a Result from a terminal minimum.Minimum. It writes
// the terminal point's external values back into params and, when the
// error matrix is usable, converts the internal-space error matrix to an
// external covariance via
// Vext(i,j) = 2*Up * dExt/dInt_i * Vint(i,j) * dExt/dInt_j — ROOT
// Minuit2's convention for the user covariance — refreshing each
// parameter's external error to sqrt(diag(Vext)).
func FromMinimum(min *minimum.Minimum, params *param.Parameters) Result {
	last := min.LastState()

	r := Result{
		Params: params,
		FVal:   last.Fval(),
		Edm:    last.Edm,
		NFcn:   last.NFcn,
		Valid:  min.IsValid(),
	}

	for ext, v := range params.Transform(last.Parameters.X) {
		params.SetValue(ext, v)
	}

	if !last.Error.IsValid() || last.Error.N() == 0 {
		return r
	}

	nvar := last.Error.N()
	internalX := last.Parameters.X
	up := min.Up

	extCov := NewCovariance(nvar)
	for i := 0; i < nvar; i++ {
		extI := params.ExtOfInt(i)
		dxdiI := params.DInt2Ext(extI, internalX[i])
		for j := i; j < nvar; j++ {
			extJ := params.ExtOfInt(j)
			dxdiJ := params.DInt2Ext(extJ, internalX[j])
			val := 2 * up * dxdiI * last.Error.Matrix[i][j] * dxdiJ
			extCov.Set(i, j, val)
		}
	}

	for i := 0; i < nvar; i++ {
		extI := params.ExtOfInt(i)
		params.SetError(extI, math.Sqrt(math.Abs(extCov.Get(i, i))))
	}

	gcc, gccValid := GlobalCorrelationCoefficients(extCov.Dense())

	r.HasCovariance = true
	r.Covariance = extCov
	r.GlobalCC = gcc
	r.GlobalCCValid = gccValid
	return r
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userstate

import "math"

// GlobalCorrelationCoefficients computes gcc(i) = sqrt(1 - 1/(Vinv(i,i)*V(i,i)))
// for each parameter in the external covariance matrix cov — a measure of
// how strongly each parameter is correlated with all the others combined.
// Returns zeros and false if cov cannot be inverted.
func GlobalCorrelationCoefficients(cov [][]float64) ([]float64, bool) {
	n := len(cov)
	inv, ok := invert(cov)
	if !ok {
		return make([]float64, n), false
	}

	gcc := make([]float64, n)
	valid := true
	for i := 0; i < n; i++ {
		denom := inv[i][i] * cov[i][i]
		if denom < 1 {
			gcc[i] = 0
			continue
		}
		gcc[i] = math.Sqrt(1 - 1/denom)
		if math.IsNaN(gcc[i]) {
			valid = false
		}
	}
	return gcc, valid
}

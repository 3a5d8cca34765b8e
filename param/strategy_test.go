// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestStrategyPresets(tst *testing.T) {

	chk.PrintTitle("strategy presets")

	low := NewStrategy(0)
	chk.IntAssert(low.GradientNCycles(), 2)
	chk.Scalar(tst, "low grad step tol", 1e-15, low.GradientStepTolerance(), 0.5)
	chk.Scalar(tst, "low grad tol", 1e-15, low.GradientTolerance(), 0.1)
	chk.IntAssert(low.HessianNCycles(), 3)
	chk.IntAssert(low.HessianGradientNCycles(), 1)

	med := NewStrategy(1)
	chk.IntAssert(med.GradientNCycles(), 3)
	chk.Scalar(tst, "medium grad step tol", 1e-15, med.GradientStepTolerance(), 0.3)
	chk.Scalar(tst, "medium grad tol", 1e-15, med.GradientTolerance(), 0.05)
	chk.IntAssert(med.HessianNCycles(), 5)
	chk.IntAssert(med.HessianGradientNCycles(), 2)

	high := NewStrategy(2)
	chk.IntAssert(high.GradientNCycles(), 5)
	chk.Scalar(tst, "high grad step tol", 1e-15, high.GradientStepTolerance(), 0.1)
	chk.Scalar(tst, "high grad tol", 1e-15, high.GradientTolerance(), 0.02)
	chk.IntAssert(high.HessianNCycles(), 7)
	chk.IntAssert(high.HessianGradientNCycles(), 6)

	if !DefaultStrategy().IsMedium() {
		tst.Errorf("expected default strategy to be medium")
	}
}

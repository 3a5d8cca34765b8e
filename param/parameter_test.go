// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestParameterFreeAndLimited(tst *testing.T) {

	chk.PrintTitle("parameter: free and limited")

	free := NewParameter(0, "x", 1.5, 0.1)
	chk.Scalar(tst, "value", 1e-15, free.Value(), 1.5)
	if free.HasLowerLimit() || free.HasUpperLimit() {
		tst.Errorf("free parameter must not report limits")
	}

	lim := NewLimited(1, "y", 0, 1, -5, 5)
	if !lim.HasLimits() {
		tst.Errorf("expected limits on y")
	}
	chk.Scalar(tst, "lower", 1e-15, lim.LowerLimit(), -5)
	chk.Scalar(tst, "upper", 1e-15, lim.UpperLimit(), 5)
}

func TestParameterNewLimitedPanicsOnInverted(tst *testing.T) {

	chk.PrintTitle("parameter: inverted limits panic")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("expected panic for lower >= upper")
		}
	}()
	NewLimited(0, "z", 0, 1, 5, -5)
}

func TestParameterFixReleaseConstant(tst *testing.T) {

	chk.PrintTitle("parameter: fix, release, constant")

	p := NewParameter(0, "a", 1, 1)
	if p.IsFixed() {
		tst.Errorf("fresh parameter must not be fixed")
	}
	p.Fix()
	if !p.IsFixed() {
		tst.Errorf("parameter must be fixed after Fix")
	}
	p.Release()
	if p.IsFixed() {
		tst.Errorf("parameter must be released")
	}

	c := NewConstant(1, "b", 7)
	if !c.IsFixed() || !c.IsConst() {
		tst.Errorf("constant parameter must be fixed and const")
	}
	c.Release()
	if !c.IsFixed() {
		tst.Errorf("releasing a constant must have no effect")
	}
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcn

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/minuit2/param"
)

type quadratic struct{}

func (quadratic) Value(x []float64) float64 {
	return (x[0]-1)*(x[0]-1) + (x[1]-2)*(x[1]-2)
}

func TestCountedCountsCalls(tst *testing.T) {

	chk.PrintTitle("counted: call counting")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", 0, 1),
		param.NewParameter(1, "y", 0, 1),
	})
	c := NewCounted(quadratic{}, params)
	if c.NCalls() != 0 {
		tst.Errorf("expected 0 calls initially")
	}
	v := c.Call([]float64{1, 2})
	chk.Scalar(tst, "f(1,2)", 1e-15, v, 0)
	if c.NCalls() != 1 {
		tst.Errorf("expected 1 call, got %d", c.NCalls())
	}
	c.CallExternal([]float64{0, 0})
	if c.NCalls() != 2 {
		tst.Errorf("expected 2 calls, got %d", c.NCalls())
	}
}

type withErrorDef struct{ quadratic }

func (withErrorDef) ErrorDef() float64 { return 0.5 }

func TestCountedErrorDefDefaultAndOverride(tst *testing.T) {

	chk.PrintTitle("counted: error definition")

	params := param.NewParameters([]param.Parameter{param.NewParameter(0, "x", 0, 1), param.NewParameter(1, "y", 0, 1)})

	c1 := NewCounted(quadratic{}, params)
	chk.Scalar(tst, "default errordef", 1e-15, c1.ErrorDef(), 1)

	c2 := NewCounted(withErrorDef{}, params)
	chk.Scalar(tst, "overridden errordef", 1e-15, c2.ErrorDef(), 0.5)
}

type nanObjective struct{}

func (nanObjective) Value(x []float64) float64 { return math.NaN() }

func TestCountedNaNBecomesSentinel(tst *testing.T) {

	chk.PrintTitle("counted: NaN sentinel")

	params := param.NewParameters([]param.Parameter{param.NewParameter(0, "x", 0, 1)})
	c := NewCounted(nanObjective{}, params)
	v := c.Call([]float64{0})
	if !(v > 1e300) {
		tst.Errorf("expected large sentinel for NaN, got %v", v)
	}
}

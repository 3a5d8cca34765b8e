// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestTransformRoundTripIdentity(tst *testing.T) {

	chk.PrintTitle("transform: identity round-trip")

	params := NewParameters([]Parameter{NewParameter(0, "x", 2.5, 0.1)})
	internal := params.Ext2Int(0, 2.5)
	chk.Scalar(tst, "int", 1e-15, internal, 2.5)
	chk.Scalar(tst, "ext", 1e-15, params.Int2Ext(0, internal), 2.5)
	chk.Scalar(tst, "dint2ext", 1e-15, params.DInt2Ext(0, internal), 1)
}

func TestTransformRoundTripLowerUpperSin(tst *testing.T) {

	chk.PrintTitle("transform: bounded round-trips")

	params := NewParameters([]Parameter{
		NewLowerLimited(0, "lo", 3, 0.1, 1),
		NewUpperLimited(1, "up", -2, 0.1, 0),
		NewLimited(2, "both", 0.5, 0.1, -1, 1),
	})

	for ext, want := range map[int]float64{0: 3, 1: -2, 2: 0.5} {
		internal := params.Ext2Int(ext, want)
		got := params.Int2Ext(ext, internal)
		chk.Scalar(tst, "round-trip", 1e-9, got, want)
	}
}

func TestTransformSinClampsNearBoundary(tst *testing.T) {

	chk.PrintTitle("transform: sin clamps near boundary")

	params := NewParameters([]Parameter{NewLimited(0, "b", 0, 1, 0, 1)})
	// a value essentially at the upper bound must not produce NaN/Inf.
	internal := params.Ext2Int(0, 1-1e-16)
	ext := params.Int2Ext(0, internal)
	if ext < 0 || ext > 1 {
		tst.Errorf("clamped external value out of bounds: %v", ext)
	}
}

func TestParametersIndexTablesWithFixed(tst *testing.T) {

	chk.PrintTitle("parameters: index tables with fixed")

	params := NewParameters([]Parameter{
		NewParameter(0, "a", 1, 1),
		NewParameter(1, "b", 2, 1),
		NewParameter(2, "c", 3, 1),
	})
	if params.NVariable() != 3 {
		tst.Errorf("expected 3 variables, got %d", params.NVariable())
	}

	params.Fix(1)
	if params.NVariable() != 2 {
		tst.Errorf("expected 2 variables after fixing b, got %d", params.NVariable())
	}
	if params.IntOfExt(1) != -1 {
		tst.Errorf("fixed parameter must map to -1, got %d", params.IntOfExt(1))
	}
	chk.IntAssert(params.ExtOfInt(0), 0)
	chk.IntAssert(params.ExtOfInt(1), 2)

	params.Release(1)
	if params.NVariable() != 3 {
		tst.Errorf("expected 3 variables after release, got %d", params.NVariable())
	}
}

func TestParametersInitialInternalValues(tst *testing.T) {

	chk.PrintTitle("parameters: initial internal values")

	params := NewParameters([]Parameter{
		NewParameter(0, "a", 1, 0.1),
		NewLimited(1, "b", 0, 0.1, -1, 1),
	})
	internal := params.InitialInternalValues()
	if len(internal) != 2 {
		tst.Errorf("expected 2 internal values, got %d", len(internal))
	}
	ext := params.Transform(internal)
	chk.Scalar(tst, "a", 1e-9, ext[0], 1)
	chk.Scalar(tst, "b", 1e-9, ext[1], 0)
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPrecisionDefaults(tst *testing.T) {

	chk.PrintTitle("precision defaults")

	p := NewPrecision()
	if p.Eps() <= 0 {
		tst.Errorf("eps must be positive, got %v", p.Eps())
	}
	chk.Scalar(tst, "eps2", 1e-22, p.Eps2(), 2*math.Sqrt(p.Eps()))
}

func TestPrecisionOverride(tst *testing.T) {

	chk.PrintTitle("precision override")

	p := NewPrecision().SetEps(1e-10)
	chk.Scalar(tst, "eps", 1e-25, p.Eps(), 1e-10)
	chk.Scalar(tst, "eps2", 1e-12, p.Eps2(), 2*math.Sqrt(1e-10))
}

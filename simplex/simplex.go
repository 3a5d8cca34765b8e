// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
)

// Minimize runs the Minuit-variant Nelder-Mead simplex search and returns
// the resulting FunctionMinimum. Unlike Migrad, the builder's EDM target is
// tolerance*Up directly (no additional 0.001-style scaling).
func Minimize(objective *fcn.Counted, strategy param.Strategy, maxfcn int, tolerance float64) *minimum.Minimum {
	up := objective.ErrorDef()
	seed := GenerateSeed(objective, strategy)

	if !seed.State.IsValid() {
		return minimum.NewMinimum(seed, nil, up)
	}

	minedm := tolerance * up
	states := build(objective, seed, maxfcn, minedm)

	m := minimum.NewMinimum(seed, states, up)
	if objective.NCalls() >= maxfcn {
		m.ReachedCallLimit = true
	} else if len(states) > 0 && states[len(states)-1].Edm > minedm {
		m.AboveMaxEdm = true
	}
	return m
}

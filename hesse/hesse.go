// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hesse

import (
	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
)

// DefaultMaxCalls is the default call budget 200 + 100n + 5n^2 for n
// variable parameters, the same formula Migrad uses.
func DefaultMaxCalls(n int) int { return 200 + 100*n + 5*n*n }

// Run computes the accurate Hessian-based error matrix for min's terminal
// state and appends the refreshed state to min's history, returning the
// extended FunctionMinimum. It never revisits earlier states.
func Run(objective *fcn.Counted, min *minimum.Minimum, strategy param.Strategy, maxCalls int) *minimum.Minimum {
	if maxCalls <= 0 {
		maxCalls = DefaultMaxCalls(min.Seed.NVariable)
	}

	result := Calculate(objective, min.LastState(), strategy, maxCalls)

	states := append(append([]minimum.State(nil), min.States...), result.State)
	out := minimum.NewMinimum(min.Seed, states, min.Up)
	out.ReachedCallLimit = objective.NCalls() >= maxCalls
	return out
}

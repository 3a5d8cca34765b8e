// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minos implements asymmetric profile-likelihood error search
// (C13): for a scanned parameter, find the two points where the profiled
// function crosses fmin + Up, fixing the scanned parameter and re-running
// Migrad at each trial value.
package minos

import "github.com/cpmech/minuit2/param"

// Cross is the result of one crossing-point search (either the lower or
// the upper side of a parameter's profile).
type Cross struct {
	Value       float64 // crossing multiplier along the scan direction
	Parameters  *param.Parameters
	NFcn        int
	Valid       bool
	AtLimit     bool
	AtMaxFcn    bool
	NewMinimum  bool
}

// ValidCross builds a successful crossing result.
func ValidCross(value float64, params *param.Parameters, nfcn int) Cross {
	return Cross{Value: value, Parameters: params, NFcn: nfcn, Valid: true}
}

// LimitReachedCross reports that the scan hit a parameter bound before
// crossing fmin + Up.
func LimitReachedCross(nfcn int) Cross {
	return Cross{NFcn: nfcn, AtLimit: true}
}

// CallLimitReachedCross reports that the function-call budget was
// exhausted before converging.
func CallLimitReachedCross(nfcn int) Cross {
	return Cross{NFcn: nfcn, AtMaxFcn: true}
}

// NewMinimumFoundCross reports that a point strictly better than the
// original minimum was found during the scan, invalidating the original
// minimum for this parameter's crossing.
func NewMinimumFoundCross(params *param.Parameters, nfcn int) Cross {
	return Cross{Parameters: params, NFcn: nfcn, NewMinimum: true}
}

// InvalidCross is a generic failed crossing.
func InvalidCross(nfcn int) Cross {
	return Cross{NFcn: nfcn}
}

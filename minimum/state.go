// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minimum

// State is one step in an engine's search history: the current point, its
// error matrix, its gradient record, the estimated distance to the minimum
// (EDM), and the cumulative function-call count at that step.
type State struct {
	Parameters Parameters
	Error      ErrorMatrix
	Gradient   FunctionGradient
	Edm        float64
	NFcn       int
}

// NewState builds a state with EDM computed by the caller (EDM = ½ gᵀVg,
// optionally corrected by (1+3·dcovar) by Migrad).
func NewState(params Parameters, err ErrorMatrix, grad FunctionGradient, edm float64, nfcn int) State {
	return State{Parameters: params, Error: err, Gradient: grad, Edm: edm, NFcn: nfcn}
}

// Fval is the function value of the underlying parameter point.
func (s State) Fval() float64 { return s.Parameters.FVal }

// IsValid reports whether the parameter point and error matrix are both
// usable.
func (s State) IsValid() bool { return s.Parameters.Valid && s.Error.IsValid() }

// EdmComputed is ½ gᵀVg for the given gradient and error matrix, without
// the Migrad dcovar correction — the shared building block both Migrad and
// Hesse use to (re)derive EDM from a fresh V/g pair.
func EdmComputed(grad []float64, v [][]float64) float64 {
	n := len(grad)
	vg := make([]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += v[i][j] * grad[j]
		}
		vg[i] = s
	}
	var gvg float64
	for i := 0; i < n; i++ {
		gvg += grad[i] * vg[i]
	}
	return 0.5 * gvg
}

// Seed is the immutable starting point of an engine run: the initial state
// plus a snapshot description of the transformation in effect (nvariable,
// precision), recorded so later stages (Hesse, Minos) can detect whether
// the transform changed underneath them.
type Seed struct {
	State      State
	NVariable  int
	Precision  float64 // machine epsilon, snapshotted
}

// NewSeed builds an immutable seed from the initial state.
func NewSeed(state State, nvariable int, precisionEps float64) Seed {
	return Seed{State: state, NVariable: nvariable, Precision: precisionEps}
}

// Minimum is the terminal result of an engine run: the seed, the ordered
// history of states visited, the Up (error definition) scale used, and
// termination flags.
type Minimum struct {
	Seed             Seed
	States           []State
	Up               float64
	AboveMaxEdm      bool
	ReachedCallLimit bool
}

// NewMinimum builds a FunctionMinimum from a seed and its history.
func NewMinimum(seed Seed, states []State, up float64) *Minimum {
	return &Minimum{Seed: seed, States: states, Up: up}
}

// LastState is the terminal state of the run.
func (m *Minimum) LastState() State {
	if len(m.States) == 0 {
		return m.Seed.State
	}
	return m.States[len(m.States)-1]
}

// Fval is the function value at the terminal state.
func (m *Minimum) Fval() float64 { return m.LastState().Fval() }

// Edm is the estimated distance to the minimum at the terminal state.
func (m *Minimum) Edm() float64 { return m.LastState().Edm }

// NFcn is the cumulative number of function calls at the terminal state.
func (m *Minimum) NFcn() int { return m.LastState().NFcn }

// IsValid reports whether the terminal state is usable and no hard
// termination flag is set.
func (m *Minimum) IsValid() bool {
	return m.LastState().IsValid() && !m.AboveMaxEdm && !m.ReachedCallLimit
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import "github.com/cpmech/gosl/chk"

// Parameter is one user-visible fit variable: a name, a current value and
// step/error, optional box bounds, and fixed/constant flags.
type Parameter struct {
	ext          int     // external (user) index, 0-based
	name         string  // parameter name
	value        float64 // current external value
	err          float64 // current external step/error
	hasLower     bool
	hasUpper     bool
	lower, upper float64
	fixed        bool
	constant     bool // constant implies fixed; releasing it has no effect
}

// NewParameter returns a free (unbounded) parameter.
func NewParameter(ext int, name string, value, err float64) Parameter {
	return Parameter{ext: ext, name: name, value: value, err: err}
}

// NewLowerLimited returns a parameter bounded below by lower.
func NewLowerLimited(ext int, name string, value, err, lower float64) Parameter {
	return Parameter{ext: ext, name: name, value: value, err: err, hasLower: true, lower: lower}
}

// NewUpperLimited returns a parameter bounded above by upper.
func NewUpperLimited(ext int, name string, value, err, upper float64) Parameter {
	return Parameter{ext: ext, name: name, value: value, err: err, hasUpper: true, upper: upper}
}

// NewLimited returns a parameter bounded on both sides.
func NewLimited(ext int, name string, value, err, lower, upper float64) Parameter {
	if lower >= upper {
		chk.Panic("lower limit must be less than upper limit: %v >= %v", lower, upper)
	}
	return Parameter{ext: ext, name: name, value: value, err: err, hasLower: true, hasUpper: true, lower: lower, upper: upper}
}

// NewConstant returns a parameter permanently fixed at value (never released).
func NewConstant(ext int, name string, value float64) Parameter {
	return Parameter{ext: ext, name: name, value: value, fixed: true, constant: true}
}

// Num is the external (user) index of this parameter.
func (p Parameter) Num() int { return p.ext }

// Name is the parameter's name.
func (p Parameter) Name() string { return p.name }

// Value is the current external value.
func (p Parameter) Value() float64 { return p.value }

// Error is the current external step/error.
func (p Parameter) Error() float64 { return p.err }

// SetValue overwrites the current external value.
func (p *Parameter) SetValue(v float64) { p.value = v }

// SetError overwrites the current external step/error.
func (p *Parameter) SetError(e float64) { p.err = e }

// SetName renames the parameter.
func (p *Parameter) SetName(name string) { p.name = name }

// HasLowerLimit reports whether a lower bound is set.
func (p Parameter) HasLowerLimit() bool { return p.hasLower }

// HasUpperLimit reports whether an upper bound is set.
func (p Parameter) HasUpperLimit() bool { return p.hasUpper }

// HasLimits reports whether both bounds are set.
func (p Parameter) HasLimits() bool { return p.hasLower && p.hasUpper }

// LowerLimit returns the lower bound (meaningless if HasLowerLimit is false).
func (p Parameter) LowerLimit() float64 { return p.lower }

// UpperLimit returns the upper bound (meaningless if HasUpperLimit is false).
func (p Parameter) UpperLimit() float64 { return p.upper }

// SetLimits sets both bounds; lower must be strictly less than upper.
func (p *Parameter) SetLimits(lower, upper float64) {
	if lower >= upper {
		chk.Panic("lower limit must be less than upper limit: %v >= %v", lower, upper)
	}
	p.hasLower, p.hasUpper = true, true
	p.lower, p.upper = lower, upper
}

// SetLowerLimit sets only the lower bound.
func (p *Parameter) SetLowerLimit(lower float64) {
	p.hasLower = true
	p.lower = lower
}

// SetUpperLimit sets only the upper bound.
func (p *Parameter) SetUpperLimit(upper float64) {
	p.hasUpper = true
	p.upper = upper
}

// RemoveLimits clears both bounds.
func (p *Parameter) RemoveLimits() {
	p.hasLower, p.hasUpper = false, false
}

// Fix marks the parameter as fixed (excluded from the internal space).
func (p *Parameter) Fix() { p.fixed = true }

// Release un-fixes the parameter unless it is constant.
func (p *Parameter) Release() {
	if !p.constant {
		p.fixed = false
	}
}

// IsFixed reports whether the parameter is currently excluded from the fit.
func (p Parameter) IsFixed() bool { return p.fixed }

// IsConst reports whether the parameter is permanently fixed.
func (p Parameter) IsConst() bool { return p.constant }

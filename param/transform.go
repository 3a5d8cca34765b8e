// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// transform maps one parameter's internal (unbounded) axis to its external
// (bounded or unbounded) feasible region. There are four concrete transforms,
// selected per-parameter by bound configuration (C3).
type transform interface {
	int2ext(internal, lower, upper float64) float64
	ext2int(external, lower, upper float64, prec Precision) float64
	dint2ext(internal, lower, upper float64) float64
}

type identityTransform struct{}

func (identityTransform) int2ext(v, _, _ float64) float64 { return v }
func (identityTransform) ext2int(v, _, _ float64, _ Precision) float64 { return v }
func (identityTransform) dint2ext(_, _, _ float64) float64 { return 1 }

// sinTransform handles doubly-bounded parameters [lower, upper]:
//
//	ext = lower + 0.5*(upper-lower)*(sin(int)+1)
//	int = arcsin(2*(ext-lower)/(upper-lower) - 1)
type sinTransform struct{}

func (sinTransform) int2ext(v, lower, upper float64) float64 {
	return lower + 0.5*(upper-lower)*(math.Sin(v)+1)
}

func (sinTransform) ext2int(v, lower, upper float64, prec Precision) float64 {
	const piby2 = math.Pi / 2
	distnn := 8 * math.Sqrt(prec.Eps2())
	vlimhi := piby2 - distnn
	vlimlo := -piby2 + distnn

	yy := 2*(v-lower)/(upper-lower) - 1
	yy2 := math.Abs(yy)
	if yy2 >= 1-distnn {
		if yy < 0 {
			return vlimlo
		}
		return vlimhi
	}
	return math.Asin(yy)
}

func (sinTransform) dint2ext(v, lower, upper float64) float64 {
	return 0.5 * math.Abs((upper-lower)*math.Cos(v))
}

// lowerTransform handles lower-bounded parameters [lower, +inf):
//
//	ext = lower - 1 + sqrt(int^2+1)
//	int = sqrt((ext-lower+1)^2 - 1)
type lowerTransform struct{}

func (lowerTransform) int2ext(v, lower, _ float64) float64 {
	return lower - 1 + math.Sqrt(v*v+1)
}

func (lowerTransform) ext2int(v, lower, _ float64, prec Precision) float64 {
	yy := v - lower + 1
	yy2 := yy*yy - 1
	if yy2 < prec.Eps2() {
		return 0
	}
	return math.Sqrt(yy2)
}

func (lowerTransform) dint2ext(v, _, _ float64) float64 {
	return v / math.Sqrt(v*v+1)
}

// upperTransform handles upper-bounded parameters (-inf, upper]:
//
//	ext = upper + 1 - sqrt(int^2+1)
//	int = sqrt((upper-ext+1)^2 - 1)
type upperTransform struct{}

func (upperTransform) int2ext(v, _, upper float64) float64 {
	return upper + 1 - math.Sqrt(v*v+1)
}

func (upperTransform) ext2int(v, _, upper float64, prec Precision) float64 {
	yy := upper - v + 1
	yy2 := yy*yy - 1
	if yy2 < prec.Eps2() {
		return 0
	}
	return math.Sqrt(yy2)
}

func (upperTransform) dint2ext(v, _, _ float64) float64 {
	return -v / math.Sqrt(v*v+1)
}

func transformFor(p Parameter) transform {
	switch {
	case p.HasLimits():
		return sinTransform{}
	case p.HasLowerLimit():
		return lowerTransform{}
	case p.HasUpperLimit():
		return upperTransform{}
	default:
		return identityTransform{}
	}
}

// Parameters owns the ordered parameter sequence and the two index tables
// that map between external (user-visible) and internal (unbounded,
// unfixed-only) coordinates. It is the parameter-space transformation layer
// (C3) plus the parameter container of the external interface (§6).
type Parameters struct {
	prec     Precision
	params   []Parameter
	intOfExt []int // ext -> internal index, or -1 if fixed
	extOfInt []int // internal -> ext
}

// NewParameters builds a transformation layer over the given parameters, in
// external-index order. Parameter names must be unique.
func NewParameters(params []Parameter) *Parameters {
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if seen[p.Name()] {
			chk.Panic("duplicate parameter name: %q", p.Name())
		}
		seen[p.Name()] = true
	}
	t := &Parameters{prec: NewPrecision(), params: params}
	t.rebuildIndex()
	return t
}

func (t *Parameters) rebuildIndex() {
	t.intOfExt = make([]int, len(t.params))
	t.extOfInt = t.extOfInt[:0]
	for ext, p := range t.params {
		if p.IsFixed() {
			t.intOfExt[ext] = -1
			continue
		}
		t.intOfExt[ext] = len(t.extOfInt)
		t.extOfInt = append(t.extOfInt, ext)
	}
}

// Precision is the machine-precision constants used by this transform.
func (t *Parameters) Precision() Precision { return t.prec }

// NVariable is the number of unfixed parameters, i.e. the internal dimension.
func (t *Parameters) NVariable() int { return len(t.extOfInt) }

// Len is the total number of parameters, fixed or not.
func (t *Parameters) Len() int { return len(t.params) }

// Parameter returns the parameter at external index ext.
func (t *Parameters) Parameter(ext int) Parameter { return t.params[ext] }

// Parameters returns the full ordered parameter slice (read-only use).
func (t *Parameters) Parameters() []Parameter { return t.params }

// IntOfExt returns the internal index for external index ext, or -1 if fixed.
func (t *Parameters) IntOfExt(ext int) int { return t.intOfExt[ext] }

// ExtOfInt returns the external index for internal index i.
func (t *Parameters) ExtOfInt(i int) int { return t.extOfInt[i] }

// NameToExt resolves a parameter name to its external index.
func (t *Parameters) NameToExt(name string) (int, bool) {
	for ext, p := range t.params {
		if p.Name() == name {
			return ext, true
		}
	}
	return 0, false
}

// Add appends a new parameter, returning its external index.
func (t *Parameters) Add(p Parameter) int {
	if _, ok := t.NameToExt(p.Name()); ok {
		chk.Panic("duplicate parameter name: %q", p.Name())
	}
	ext := len(t.params)
	t.params = append(t.params, p)
	t.rebuildIndex()
	return ext
}

// Fix excludes a parameter from the internal (searched) space.
func (t *Parameters) Fix(ext int) {
	t.params[ext].Fix()
	t.rebuildIndex()
}

// Release re-includes a previously fixed, non-constant parameter.
func (t *Parameters) Release(ext int) {
	t.params[ext].Release()
	t.rebuildIndex()
}

// SetValue overwrites a parameter's external value.
func (t *Parameters) SetValue(ext int, v float64) { t.params[ext].SetValue(v) }

// SetError overwrites a parameter's external step/error.
func (t *Parameters) SetError(ext int, e float64) { t.params[ext].SetError(e) }

// SetLimits sets both bounds on a parameter, rebuilding nothing (bounds do
// not change the index tables, only the transform used).
func (t *Parameters) SetLimits(ext int, lower, upper float64) { t.params[ext].SetLimits(lower, upper) }

// RemoveLimits clears a parameter's bounds.
func (t *Parameters) RemoveLimits(ext int) { t.params[ext].RemoveLimits() }

// SetName renames a parameter.
func (t *Parameters) SetName(ext int, name string) { t.params[ext].SetName(name) }

// SetPrecision overrides the machine-precision constants (tests only).
func (t *Parameters) SetPrecision(p Precision) { t.prec = p }

// Int2Ext maps a single internal value to external space for parameter ext.
func (t *Parameters) Int2Ext(ext int, internal float64) float64 {
	p := t.params[ext]
	return transformFor(p).int2ext(internal, p.LowerLimit(), p.UpperLimit())
}

// Ext2Int maps a single external value to internal space for parameter ext.
func (t *Parameters) Ext2Int(ext int, external float64) float64 {
	p := t.params[ext]
	return transformFor(p).ext2int(external, p.LowerLimit(), p.UpperLimit(), t.prec)
}

// DInt2Ext is d(external)/d(internal) at the given internal value.
func (t *Parameters) DInt2Ext(ext int, internal float64) float64 {
	p := t.params[ext]
	return transformFor(p).dint2ext(internal, p.LowerLimit(), p.UpperLimit())
}

// DExt2Int is the reciprocal of DInt2Ext, or 0 if the Jacobian magnitude is
// not safely invertible (within 2*sqrt(eps) of a bound).
func (t *Parameters) DExt2Int(ext int, internal float64) float64 {
	d := t.DInt2Ext(ext, internal)
	if math.Abs(d) > t.prec.Eps2() {
		return 1 / d
	}
	return 0
}

// Transform maps a full internal vector to external values, one entry per
// parameter (fixed parameters pass through their current value unchanged).
func (t *Parameters) Transform(internal []float64) []float64 {
	result := make([]float64, len(t.params))
	for ext, p := range t.params {
		if p.IsFixed() {
			result[ext] = p.Value()
			continue
		}
		result[ext] = t.Int2Ext(ext, internal[t.intOfExt[ext]])
	}
	return result
}

// InitialInternalValues builds the internal parameter vector from the
// current external values of every unfixed parameter.
func (t *Parameters) InitialInternalValues() []float64 {
	out := make([]float64, len(t.extOfInt))
	for i, ext := range t.extOfInt {
		out[i] = t.Ext2Int(ext, t.params[ext].Value())
	}
	return out
}

// InitialInternalErrors builds the internal step/error vector from the
// current external errors, dividing by the transform's local derivative.
func (t *Parameters) InitialInternalErrors() []float64 {
	out := make([]float64, len(t.extOfInt))
	for i, ext := range t.extOfInt {
		p := t.params[ext]
		internal := t.Ext2Int(ext, p.Value())
		d := t.DInt2Ext(ext, internal)
		if d > 0 {
			out[i] = p.Error() / d
		} else {
			out[i] = p.Error()
		}
	}
	return out
}

// Int2ExtCovariance pushes an internal-space covariance matrix (packed as a
// dense n x n slice-of-slices) forward to external space via the diagonal
// Jacobian: Vext = J Vint J^T, i.e. element-wise Vext_ij = J_i*J_j*Vint_ij.
func (t *Parameters) Int2ExtCovariance(internal []float64, vint [][]float64) [][]float64 {
	n := len(t.extOfInt)
	jac := make([]float64, n)
	for i, ext := range t.extOfInt {
		jac[i] = t.DInt2Ext(ext, internal[i])
	}
	vext := make([][]float64, n)
	for i := 0; i < n; i++ {
		vext[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			vext[i][j] = jac[i] * jac[j] * vint[i][j]
		}
	}
	return vext
}

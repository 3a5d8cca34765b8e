// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minos

import (
	"math"
	"sort"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/migrad"
	"github.com/cpmech/minuit2/minimum"
	"github.com/cpmech/minuit2/param"
)

// FindCrossing searches, along one parameter's direction from the minimum,
// for the point where the profiled function equals fmin+Up, by repeatedly
// fixing the scanned parameter at trial values and re-running Migrad over
// the remaining free parameters.
//
// par is the external parameter index being scanned, pmid the starting
// trial value, pdir the scan direction magnitude (signed), tlr the
// crossing tolerance, maxcalls the function-call budget, and strategy the
// strategy used by the outer fit (internal Migrad calls run one level
// lower, a cheaper nested search since the fixed parameter already
// removes one degree of freedom).
func FindCrossing(objective *fcn.Counted, min *minimum.Minimum, par int, pmid, pdir, tlr float64, maxcalls int, strategy param.Strategy) Cross {
	up := min.Up
	fmin := min.Fval()

	mgrStrategyLevel := 0
	if strategy.Level() > 0 {
		mgrStrategyLevel = strategy.Level() - 1
	}
	mgrStrategy := param.NewStrategy(mgrStrategyLevel)
	mgrTlr := 0.5 * tlr

	p := objective.Params().Parameter(par)
	limset := p.HasLowerLimit() || p.HasUpperLimit()

	tlf := tlr * up
	tla := tlr

	if limset && objective.Params().Len() == 1 {
		if pdir > 0 && p.HasUpperLimit() && pmid >= p.UpperLimit() {
			return LimitReachedCross(0)
		}
		if pdir < 0 && p.HasLowerLimit() && pmid <= p.LowerLimit() {
			return LimitReachedCross(0)
		}
	}

	fval0, params0, valid0, nfcn0 := runMigradFixed(objective, par, pmid, mgrStrategy, mgrTlr, maxcalls)
	nfcnTotal := nfcn0
	if !valid0 {
		return InvalidCross(nfcnTotal)
	}
	if fval0 < fmin-0.01*up {
		return NewMinimumFoundCross(params0, nfcnTotal)
	}

	f0 := fval0
	a0 := 0.0

	var aopt float64
	if math.Abs(f0-fmin) < up*0.01 {
		aopt = 1
	} else {
		ratio := up / (f0 - fmin)
		if ratio > 0 {
			aopt = clampF(math.Sqrt(ratio)-1, -0.5, 1)
		} else {
			aopt = 1
		}
	}

	p1 := pmid + aopt*pdir
	fval1, params1, valid1, nfcn1 := runMigradFixed(objective, par, p1, mgrStrategy, mgrTlr, maxcalls)
	nfcnTotal += nfcn1
	if !valid1 {
		return InvalidCross(nfcnTotal)
	}
	if fval1 < fmin-0.01*up {
		return NewMinimumFoundCross(params1, nfcnTotal)
	}

	f1 := fval1
	a1 := aopt

	fLeft, aLeft := f0, a0
	fRight, aRight := f1, a1

	dfda := 0.0
	if math.Abs(a1-a0) > 1e-15 {
		dfda = (f1 - f0) / (a1 - a0)
	}

	maxiterSlope := 15
	for dfda < 0 && maxiterSlope > 0 {
		maxiterSlope--
		aRight += 0.2
		pTry := pmid + aRight*pdir

		if limset {
			if pdir > 0 && p.HasUpperLimit() && pTry > p.UpperLimit() {
				return LimitReachedCross(nfcnTotal)
			}
			if pdir < 0 && p.HasLowerLimit() && pTry < p.LowerLimit() {
				return LimitReachedCross(nfcnTotal)
			}
		}

		fval, params, valid, nfcn := runMigradFixed(objective, par, pTry, mgrStrategy, mgrTlr, maxcalls)
		nfcnTotal += nfcn
		if !valid {
			return InvalidCross(nfcnTotal)
		}
		if fval < fmin-0.01*up {
			return NewMinimumFoundCross(params, nfcnTotal)
		}

		fRight = fval
		dfda = (fRight - fLeft) / (aRight - aLeft)
	}

	if dfda < 0 {
		return InvalidCross(nfcnTotal)
	}

	aCross := aLeft + (fmin+up-fLeft)/dfda
	pCross := pmid + aCross*pdir
	fCross, paramsCross, validCross, nfcnCross := runMigradFixed(objective, par, pCross, mgrStrategy, mgrTlr, maxcalls)
	nfcnTotal += nfcnCross
	if !validCross {
		return InvalidCross(nfcnTotal)
	}
	if fCross < fmin-0.01*up {
		return NewMinimumFoundCross(paramsCross, nfcnTotal)
	}

	tlaScaled := tla
	if math.Abs(aopt) > 1 {
		tlaScaled = tla * math.Abs(aopt)
	}

	if math.Abs(aCross-aRight) < tlaScaled && math.Abs(fCross-fmin-up) < tlf {
		return ValidCross(aCross, paramsCross, nfcnTotal)
	}

	type pt struct{ a, f float64 }
	pts := []pt{{aLeft, fLeft}, {aRight, fRight}, {aCross, fCross}}
	target := fmin + up

	const maxitr = 15
	for itr := 0; itr < maxitr; itr++ {
		if nfcnTotal >= maxcalls {
			return CallLimitReachedCross(nfcnTotal)
		}

		sort.Slice(pts, func(i, j int) bool { return pts[i].a < pts[j].a })

		parab := param.FitParabola3Points(
			param.ParabolaPoint{X: pts[0].a, Y: pts[0].f},
			param.ParabolaPoint{X: pts[1].a, Y: pts[1].f},
			param.ParabolaPoint{X: pts[2].a, Y: pts[2].f},
		)

		disc := parab.B*parab.B - 4*parab.A*(parab.C-target)

		if disc < 0 || math.Abs(parab.A) < 1e-15 {
			slope := (pts[2].f - pts[0].f) / (pts[2].a - pts[0].a)
			if math.Abs(slope) < 1e-15 {
				return InvalidCross(nfcnTotal)
			}
			aCross = pts[0].a + (target-pts[0].f)/slope
		} else {
			sqrtDisc := math.Sqrt(disc)
			root1 := (-parab.B + sqrtDisc) / (2 * parab.A)
			root2 := (-parab.B - sqrtDisc) / (2 * parab.A)
			midA := 0.5 * (pts[0].a + pts[2].a)
			if math.Abs(root1-midA) < math.Abs(root2-midA) {
				aCross = root1
			} else {
				aCross = root2
			}
		}

		smalla := math.Max(0.01*math.Abs(pts[2].a-pts[0].a), 1e-10)
		aCross = clampF(aCross, pts[0].a-smalla, pts[2].a+smalla)

		pTry := pmid + aCross*pdir

		if limset {
			if pdir > 0 && p.HasUpperLimit() && pTry > p.UpperLimit() {
				return LimitReachedCross(nfcnTotal)
			}
			if pdir < 0 && p.HasLowerLimit() && pTry < p.LowerLimit() {
				return LimitReachedCross(nfcnTotal)
			}
		}

		fval, params, valid, nfcn := runMigradFixed(objective, par, pTry, mgrStrategy, mgrTlr, maxcalls)
		nfcnTotal += nfcn
		if !valid {
			return InvalidCross(nfcnTotal)
		}
		if fval < fmin-0.01*up {
			return NewMinimumFoundCross(params, nfcnTotal)
		}

		tlaScaled = tla
		if math.Abs(aopt) > 1 {
			tlaScaled = tla * math.Abs(aopt)
		}

		if math.Abs(aCross-pts[1].a) < tlaScaled && math.Abs(fval-target) < tlf {
			return ValidCross(aCross, params, nfcnTotal)
		}

		worstIdx := 0
		worstDist := math.Abs(pts[0].f - target)
		for i := 1; i < len(pts); i++ {
			d := math.Abs(pts[i].f - target)
			if d > worstDist {
				worstDist = d
				worstIdx = i
			}
		}
		pts[worstIdx] = pt{aCross, fval}
	}

	return InvalidCross(nfcnTotal)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runMigradFixed re-runs Migrad over objective's parameters with the
// scanned external parameter fixed at fixVal, keeping every other
// already-fixed/constant parameter fixed. Returns the minimum's function
// value, its resulting Parameters (for state reconstruction on success),
// validity, and calls consumed.
func runMigradFixed(objective *fcn.Counted, fixPar int, fixVal float64, strategy param.Strategy, tolerance float64, maxcalls int) (float64, *param.Parameters, bool, int) {
	orig := objective.Params()
	cloned := append([]param.Parameter(nil), orig.Parameters()...)
	cloned[fixPar].SetValue(fixVal)
	cloned[fixPar].Fix()

	params := param.NewParameters(cloned)
	sub := fcn.NewCounted(objective.Objective(), params)

	seed := migrad.GenerateSeed(sub, strategy)
	up := sub.ErrorDef()
	edmval := migrad.EdmGoal(tolerance, up)
	states := migrad.Minimize(sub, seed, strategy, maxcalls, edmval)

	last := seed.State
	if len(states) > 0 {
		last = states[len(states)-1]
	}
	valid := last.IsValid() && last.Edm < edmval*10

	ext := params.Transform(last.Parameters.X)
	for i, v := range ext {
		params.SetValue(i, v)
	}

	return last.Fval(), params, valid, sub.NCalls()
}

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"math"

	"github.com/cpmech/minuit2/fcn"
	"github.com/cpmech/minuit2/minimum"
)

const (
	simplexAlpha  = 1.0 // reflection
	simplexBeta   = 0.5 // contraction
	simplexGamma  = 2.0 // expansion
	simplexRhoMin = 4.0
	simplexRhoMax = 8.0
)

// build runs the Minuit Nelder-Mead iteration from seed and returns the
// single terminal state (Simplex keeps no covariance, only a dirin spread
// estimate).
func build(objective *fcn.Counted, seed minimum.Seed, maxfcn int, minedm float64) []minimum.State {
	n := seed.NVariable
	prec := objective.Params().Precision()

	x := append([]float64(nil), seed.State.Parameters.X...)
	step := make([]float64, n)
	for i := 0; i < n; i++ {
		step[i] = 10 * seed.State.Gradient.GStep[i]
	}

	rho1 := 1 + simplexAlpha
	rho2 := 1 + simplexAlpha*simplexGamma
	wg := 1.0 / float64(n)

	verts := make([]vertex, 0, n+1)
	verts = append(verts, vertex{fval: seed.State.Parameters.FVal, vec: append([]float64(nil), x...)})

	xWork := append([]float64(nil), x...)
	for i := 0; i < n; i++ {
		dmin := 8 * prec.Eps2() * (math.Abs(xWork[i]) + prec.Eps2())
		if step[i] < dmin {
			step[i] = dmin
		}
		xWork[i] += step[i]
		fval := objective.Call(xWork)
		verts = append(verts, vertex{fval: fval, vec: append([]float64(nil), xWork...)})
		xWork[i] -= step[i]
	}

	s := newVertices(verts)

	shouldStop := func(edmPrev float64) bool {
		if objective.NCalls() >= maxfcn {
			return true
		}
		return s.edm() <= minedm && edmPrev <= minedm
	}

	for {
		jh := s.jHigh()
		amin := s.fvalBest()
		edmPrev := s.edm()

		pbar := make([]float64, n)
		for i, v := range s.v {
			if i == jh {
				continue
			}
			for j := 0; j < n; j++ {
				pbar[j] += wg * v.vec[j]
			}
		}

		worst := append([]float64(nil), s.v[jh].vec...)
		pstar := make([]float64, n)
		for j := 0; j < n; j++ {
			pstar[j] = (1+simplexAlpha)*pbar[j] - simplexAlpha*worst[j]
		}
		ystar := objective.Call(pstar)

		if ystar > amin {
			if ystar < s.v[jh].fval {
				s.update(jh, ystar, pstar)
				if jh != s.jHigh() {
					if !shouldStop(edmPrev) {
						continue
					}
					break
				}
			}
			worstCur := append([]float64(nil), s.v[s.jHigh()].vec...)
			pstst := make([]float64, n)
			for j := 0; j < n; j++ {
				pstst[j] = simplexBeta*worstCur[j] + (1-simplexBeta)*pbar[j]
			}
			ystst := objective.Call(pstst)
			if ystst > s.v[s.jHigh()].fval {
				break
			}
			s.update(s.jHigh(), ystst, pstst)
		} else {
			pstst := make([]float64, n)
			for j := 0; j < n; j++ {
				pstst[j] = simplexGamma*pstar[j] + (1-simplexGamma)*pbar[j]
			}
			ystst := objective.Call(pstst)

			y1 := (ystar - s.v[jh].fval) * rho2
			y2 := (ystst - s.v[jh].fval) * rho1
			denom := y1 - y2

			if math.Abs(denom) < 1e-30 {
				acceptBetterOf(s, jh, ystar, pstar, ystst, pstst)
			} else {
				rho := 0.5 * (rho2*y1 - rho1*y2) / denom
				if rho < simplexRhoMin {
					acceptBetterOf(s, jh, ystar, pstar, ystst, pstst)
				} else {
					rhoClamped := math.Min(rho, simplexRhoMax)
					prho := make([]float64, n)
					for j := 0; j < n; j++ {
						prho[j] = rhoClamped*pbar[j] + (1-rhoClamped)*worst[j]
					}
					yrho := objective.Call(prho)

					switch {
					case yrho < s.fvalBest() && yrho < ystst:
						s.update(jh, yrho, prho)
					case ystst < s.fvalBest():
						s.update(jh, ystst, pstst)
					case yrho > s.fvalBest():
						acceptBetterOf(s, jh, ystar, pstar, ystst, pstst)
					default:
						s.update(jh, ystar, pstar)
					}
				}
			}
		}

		if shouldStop(edmPrev) {
			break
		}
	}

	jh := s.jHigh()
	pbar := make([]float64, n)
	for i, v := range s.v {
		if i == jh {
			continue
		}
		for j := 0; j < n; j++ {
			pbar[j] += wg * v.vec[j]
		}
	}
	ybar := objective.Call(pbar)

	var finalVec []float64
	var finalFval float64
	if ybar < s.fvalBest() {
		s.update(s.jHigh(), ybar, pbar)
		finalVec, finalFval = pbar, ybar
	} else {
		finalVec, finalFval = append([]float64(nil), s.best()...), s.fvalBest()
	}

	edm := s.edm()
	up := objective.ErrorDef()
	scale := 1.0
	if edm > math.SmallestNonzeroFloat64 {
		scale = math.Sqrt(up / edm)
	}

	dirin := make([]float64, n)
	for i := 0; i < n; i++ {
		lo, hi := math.MaxFloat64, -math.MaxFloat64
		for _, v := range s.v {
			if v.vec[i] < lo {
				lo = v.vec[i]
			}
			if v.vec[i] > hi {
				hi = v.vec[i]
			}
		}
		dirin[i] = (hi - lo) * scale
	}

	finalParams := minimum.NewParametersWithStep(finalVec, dirin, finalFval)
	state := minimum.NewState(finalParams, minimum.ErrorMatrix{}, minimum.FunctionGradient{}, edm, objective.NCalls())
	return []minimum.State{state}
}

func acceptBetterOf(s *vertices, jh int, ystar float64, pstar []float64, ystst float64, pstst []float64) {
	if ystst < s.fvalBest() {
		s.update(jh, ystst, pstst)
	} else {
		s.update(jh, ystar, pstar)
	}
}

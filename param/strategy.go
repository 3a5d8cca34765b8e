// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

// Strategy controls the effort spent on gradient and Hessian refinement:
// cycle counts and tolerances for three standard levels, low (0), medium
// (1, default) and high (2). Tolerances are stored as fixed-point integers
// (x10 or x100) to avoid float-equality quirks across platforms when a
// strategy is copied or compared.
type Strategy struct {
	level           int
	gradNCycles     int
	hessNCycles     int
	hessGradNCycles int
	gradStepTolX10  int
	gradTolX100     int
	hessStepTolX10  int
	hessG2TolX100   int
	hessForcePosDef bool
}

// NewStrategy builds a strategy preset for the given level (0=low,
// 1=medium, 2=high; anything else is treated as medium).
func NewStrategy(level int) Strategy {
	switch level {
	case 0:
		return Strategy{level: 0, gradNCycles: 2, gradStepTolX10: 5, gradTolX100: 10,
			hessNCycles: 3, hessStepTolX10: 5, hessG2TolX100: 10, hessGradNCycles: 1, hessForcePosDef: true}
	case 2:
		return Strategy{level: 2, gradNCycles: 5, gradStepTolX10: 1, gradTolX100: 2,
			hessNCycles: 7, hessStepTolX10: 1, hessG2TolX100: 2, hessGradNCycles: 6, hessForcePosDef: true}
	default:
		return Strategy{level: 1, gradNCycles: 3, gradStepTolX10: 3, gradTolX100: 5,
			hessNCycles: 5, hessStepTolX10: 3, hessG2TolX100: 5, hessGradNCycles: 2, hessForcePosDef: true}
	}
}

// DefaultStrategy is the medium preset used when the caller does not
// request one explicitly.
func DefaultStrategy() Strategy { return NewStrategy(1) }

func (s Strategy) Level() int { return s.level }
func (s Strategy) IsLow() bool { return s.level == 0 }
func (s Strategy) IsMedium() bool { return s.level == 1 }
func (s Strategy) IsHigh() bool { return s.level >= 2 }

func (s Strategy) GradientNCycles() int { return s.gradNCycles }
func (s Strategy) GradientStepTolerance() float64 { return float64(s.gradStepTolX10) / 10 }
func (s Strategy) GradientTolerance() float64 { return float64(s.gradTolX100) / 100 }

func (s Strategy) HessianNCycles() int { return s.hessNCycles }
func (s Strategy) HessianStepTolerance() float64 { return float64(s.hessStepTolX10) / 10 }
func (s Strategy) HessianG2Tolerance() float64 { return float64(s.hessG2TolX100) / 100 }
func (s Strategy) HessianGradientNCycles() int { return s.hessGradNCycles }
func (s Strategy) HessianForcePosDef() bool { return s.hessForcePosDef }

// Copyright 2024 The Minuit2Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fitdemo runs two illustrative minimizations: a plain Rosenbrock
// minimization (no data, just the function) carried through Migrad and
// Hesse, and a chi-square Gaussian peak fit carried through Migrad, Hesse
// and Minos.
package main

import (
	"flag"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	mn "github.com/cpmech/minuit2"
	"github.com/cpmech/minuit2/param"
)

type rosenbrock struct{}

func (rosenbrock) Value(x []float64) float64 {
	return (1-x[0])*(1-x[0]) + 100*(x[1]-x[0]*x[0])*(x[1]-x[0]*x[0])
}

// gaussianChi2 is the chi-square objective y = A*exp(-(x-mu)^2/(2*sigma^2))
// fit against noisy synthetic data.
type gaussianChi2 struct {
	x, y, sigma []float64
}

func (g gaussianChi2) Value(p []float64) float64 {
	amp, mu, sig := p[0], p[1], p[2]
	var chi2 float64
	for i := range g.x {
		model := amp * math.Exp(-0.5*math.Pow((g.x[i]-mu)/sig, 2))
		res := (g.y[i] - model) / g.sigma[i]
		chi2 += res * res
	}
	return chi2
}

func (gaussianChi2) ErrorDef() float64 { return 1 }

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	which := flag.String("which", "both", "which demo to run: rosenbrock, gaussian, or both")
	strategyLevel := flag.Int("strategy", 2, "strategy level (0=low, 1=medium, 2=high)")
	flag.Parse()

	io.PfWhite("\nfitdemo -- Minuit2Go demonstration fits\n\n")

	if *which == "rosenbrock" || *which == "both" {
		runRosenbrock(*strategyLevel)
	}
	if *which == "gaussian" || *which == "both" {
		runGaussianFit(*strategyLevel)
	}
}

func runRosenbrock(strategyLevel int) {
	io.Pf("=== Rosenbrock: Migrad + Hesse ===\n\n")

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "x", -1.2, 0.1),
		param.NewParameter(1, "y", 1.0, 0.1),
	})

	min := mn.Migrad(rosenbrock{}, params, mn.WithStrategy(strategyLevel))
	io.Pf("Migrad: valid=%v  fval=%.6e  nfcn=%d\n", min.IsValid(), min.Fval(), min.NFcn())

	min = mn.Hesse(rosenbrock{}, params, min, mn.WithStrategy(strategyLevel))
	result := mn.Result(min, params)

	for _, p := range params.Parameters() {
		io.Pfyel("  %-6s = %10.6f\n", p.Name(), p.Value())
	}
	if result.HasCovariance {
		io.Pf("  global correlation: %v\n", result.GlobalCC)
	}
	io.Pf("\n")
}

func runGaussianFit(strategyLevel int) {
	io.Pf("=== Gaussian peak: Migrad + Hesse + Minos ===\n\n")

	const trueAmp, trueMu, trueSigma = 10.0, 5.0, 1.5
	n := 21
	x := make([]float64, n)
	y := make([]float64, n)
	sigma := make([]float64, n)
	for i := 0; i < n; i++ {
		xi := float64(i) * 0.5
		yTrue := trueAmp * math.Exp(-0.5*math.Pow((xi-trueMu)/trueSigma, 2))
		x[i] = xi
		y[i] = yTrue + 0.3*math.Sin(float64(i)*1.7)
		sigma[i] = 0.5
	}

	objective := gaussianChi2{x: x, y: y, sigma: sigma}

	params := param.NewParameters([]param.Parameter{
		param.NewParameter(0, "A", 8.0, 1.0),
		param.NewParameter(1, "mu", 4.0, 0.5),
		param.NewLowerLimited(2, "sigma", 2.0, 0.5, 0.01),
	})

	min := mn.Migrad(objective, params, mn.WithStrategy(strategyLevel))

	ndf := float64(n) - float64(len(params.Parameters()))
	io.Pf("Migrad: valid=%v  chi2=%.2f  ndf=%.0f  chi2/ndf=%.2f\n", min.IsValid(), min.Fval(), ndf, min.Fval()/ndf)

	min = mn.Hesse(objective, params, min, mn.WithStrategy(strategyLevel))
	mn.Result(min, params)
	io.Pf("\nHesse errors:\n")
	for _, p := range params.Parameters() {
		io.Pfyel("  %-6s = %8.4f +/- %.4f\n", p.Name(), p.Value(), p.Error())
	}

	io.Pf("\nMinos errors:\n")
	for ext, p := range params.Parameters() {
		errs := mn.MinosErrors(objective, params, min, ext, mn.WithStrategy(strategyLevel))
		if errs.IsValid() {
			io.Pfyel("  %-6s = %8.4f  %.4f / +%.4f\n", p.Name(), p.Value(), errs.LowerError(), errs.UpperError())
		} else {
			io.Pf("  %-6s: Minos did not converge\n", p.Name())
		}
	}
	io.Pf("\n")
}

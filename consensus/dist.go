package consensus

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// fCDF evaluates the CDF of the F distribution with d1 and d2 degrees of
// freedom at x. Outside the parameter domain (degenerate degrees of
// freedom) it returns NaN instead of panicking, so fits with zero residual
// degrees of freedom stay crash-free.
func fCDF(d1, d2, x float64) float64 {
	if d1 <= 0 || d2 <= 0 || math.IsNaN(x) {
		return math.NaN()
	}

	if math.IsInf(x, 1) {
		return 1
	}

	if x <= 0 {
		return 0
	}

	return distuv.F{D1: d1, D2: d2}.CDF(x)
}

// tCDF evaluates the CDF of Student's t distribution with nu degrees of
// freedom at x, with the same NaN-outside-domain behavior as fCDF.
func tCDF(nu, x float64) float64 {
	if nu <= 0 || math.IsNaN(x) {
		return math.NaN()
	}

	if math.IsInf(x, 1) {
		return 1
	}

	if math.IsInf(x, -1) {
		return 0
	}

	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}.CDF(x)
}

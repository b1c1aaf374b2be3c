package consensus

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by the fitting entry points. Every validation failure
// wraps ErrInvalidInput, so errors.Is(err, ErrInvalidInput) identifies the
// whole category.
var (
	ErrInvalidInput = errors.New("consensus: invalid input")

	ErrTooFewObservations = fmt.Errorf("%w: x and y need at least 2 observations", ErrInvalidInput)
	ErrLengthMismatch     = fmt.Errorf("%w: x and y need an equal number of observations", ErrInvalidInput)
	ErrWeightRange        = fmt.Errorf("%w: wx must be within [0, 1]", ErrInvalidInput)
	ErrResampleCount      = fmt.Errorf("%w: resamples must be positive", ErrInvalidInput)
	ErrConfidenceRange    = fmt.Errorf("%w: confidence must be within (0, 1)", ErrInvalidInput)
)

// Fit performs a model II regression of y on x: both axes carry equal error
// weight (Wx = 0.5) and the intercept is estimated freely.
func Fit(x, y []float64) (Result, error) {
	return FitWeighted(x, y, 0.5, false)
}

// FitWeighted performs a consensus regression of y on x with an explicit
// x-axis weight wx in [0, 1]; the y-axis weight is 1 - wx. When
// throughOrigin is true the line is forced through the origin (a = 0),
// otherwise the intercept is estimated.
//
// Pairs where either value is NaN are dropped before fitting. Dropping is
// silent: if it leaves fewer than 2 pairs the fit still runs and the
// degenerate statistics surface as infinities or NaN.
func FitWeighted(x, y []float64, wx float64, throughOrigin bool) (Result, error) {
	if err := validatePairs(x, y); err != nil {
		return Result{}, err
	}

	if wx < 0 || wx > 1 {
		return Result{}, ErrWeightRange
	}

	cx, cy := dropNaNPairs(x, y)

	return fit(cx, cy, wx, throughOrigin), nil
}

// FitUncertainty performs a consensus regression of y on x with the axis
// weight derived from the per-axis measurement uncertainties sigmaX and
// sigmaY and the variances of the (cleaned) data:
//
//	Wx = (sigmaX²/Var(x)) / (sigmaX²/Var(x) + sigmaY²/Var(y))
//
// The variance convention cancels in the ratio, so sample and population
// variance yield the same weight. NaN pairs are dropped as in [FitWeighted].
func FitUncertainty(x, y []float64, sigmaX, sigmaY float64, throughOrigin bool) (Result, error) {
	if err := validatePairs(x, y); err != nil {
		return Result{}, err
	}

	cx, cy := dropNaNPairs(x, y)

	qx := sigmaX * sigmaX / stat.Variance(cx, nil)
	qy := sigmaY * sigmaY / stat.Variance(cy, nil)
	wx := qx / (qx + qy)

	return fit(cx, cy, wx, throughOrigin), nil
}

// validatePairs applies the fail-fast input checks shared by all entry
// points. It runs on the raw input, before NaN dropping.
func validatePairs(x, y []float64) error {
	if len(x) < 2 || len(y) < 2 {
		return ErrTooFewObservations
	}

	if len(x) != len(y) {
		return ErrLengthMismatch
	}

	return nil
}

// dropNaNPairs retains only pairs where both values are valid. The inputs
// are never modified.
func dropNaNPairs(x, y []float64) ([]float64, []float64) {
	cx := make([]float64, 0, len(x))
	cy := make([]float64, 0, len(y))

	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}

		cx = append(cx, x[i])
		cy = append(cy, y[i])
	}

	return cx, cy
}

// sign is the three-valued sign function: +1, -1, or 0 at exactly zero.
// It also returns 0 for NaN, which keeps the slope branches from
// propagating a spurious sign when the correlation is undefined.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// fit is the shared computation both entry points funnel into. It assumes
// cleaned, equal-length inputs and a resolved weight; it never fails, per
// the IEEE degenerate-value policy described in the package documentation.
func fit(x, y []float64, wx float64, throughOrigin bool) Result {
	n := len(x)
	nf := float64(n)

	// Residual degrees of freedom: n - 1 for the slope, one more off if the
	// intercept is estimated too.
	dof := n - 1
	if !throughOrigin {
		dof--
	}
	nu := float64(dof)

	// Sufficient statistics.
	sx := floats.Sum(x)
	sy := floats.Sum(y)
	sxx := floats.Dot(x, x)
	syy := floats.Dot(y, y)
	sxy := floats.Dot(x, y)

	mx := sx / nf
	my := sy / nf

	// Centered cross sums: dx = n*Σx² - (Σx)², likewise dy and dxy.
	dx := nf*sxx - sx*sx
	dy := nf*syy - sy*sy
	dxy := nf*sxy - sx*sy

	// Pearson correlation.
	r := dxy / (math.Sqrt(dx) * math.Sqrt(dy))

	wy := 1 - wx

	var a, b float64

	if throughOrigin {
		switch {
		case wx == 0:
			b = sxy / sxx
		case wx == 1:
			b = sign(r) * syy / sxy
		default:
			b = (1-2*wx)/(2-2*wx)*(sxy/sxx) +
				sign(r)*math.Sqrt(((1-2*wx)*sxy)*((1-2*wx)*sxy)+4*wx*wy*sxx*syy)/(2*wy*sxx)
		}
	} else {
		switch {
		case wx == 0:
			// Ordinary least squares of y on x.
			b = dxy / dx
		case wx == 1:
			// Least squares of x on y, inverted.
			b = dy / dxy
		case wx == 0.5:
			// Model II: slope magnitude from the variance ratio, sign from R.
			b = sign(r) * math.Sqrt(dy/dx)
		default:
			b = (1-2*wx)/(2*wy)*dxy/dx +
				sign(r)*math.Sqrt(((2*wx-1)*dxy)*((2*wx-1)*dxy)+4*wx*wy*dx*dy)/(2*wy*dx)
		}

		a = my - b*mx
	}

	// Predicted values and residuals.
	yhat := make([]float64, n)
	res := make([]float64, n)

	for i, xi := range x {
		yhat[i] = a + b*xi
		res[i] = y[i] - yhat[i]
	}

	rmse := math.Inf(1)
	if dof != 0 {
		rmse = floats.Norm(res, 2) / math.Sqrt(nu)
	}

	s2 := rmse * rmse

	// Regression sum of squares around the mean of y.
	dev := make([]float64, n)
	for i, yh := range yhat {
		dev[i] = yh - my
	}

	rss := floats.Norm(dev, 2)
	rss *= rss

	r2 := r * r
	r2adj := 1 - (1-r2)*(nf-1)/(nf-2) // k = 1 predictor

	// Regression degrees of freedom (always 1 for a single predictor, kept
	// in the n/nu form of the published routine).
	d1 := nf - nu
	if !throughOrigin {
		d1 = nf - nu - 1
	}

	f := math.Inf(1)
	if s2 != 0 {
		f = (rss / d1) / s2
	}

	pval := 1 - fCDF(d1, nu, f)

	// Second-pass error variance estimate, as in the published routine.
	// For dof == 0 this yields Inf or NaN and flows through the standard
	// errors untouched.
	s2 = floats.Dot(res, res) / nu

	sb := math.Sqrt(nf * s2 / dx)
	tb := b / sb

	var sa, ta float64
	if throughOrigin {
		ta = math.Inf(1) // a = 0 with zero variance
	} else {
		sa = math.Sqrt(sxx * s2 / dx)
		ta = a / sa
	}

	pb := 2 * (1 - tCDF(nu, math.Abs(tb)))
	pa := 2 * (1 - tCDF(nu, math.Abs(ta)))

	return Result{
		Slope:            b,
		SlopeStdErr:      sb,
		Intercept:        a,
		InterceptStdErr:  sa,
		RSquared:         r2,
		RSquaredAdjusted: r2adj,
		FStatistic:       f,
		PValue:           pval,
		SlopeTValue:      tb,
		InterceptTValue:  ta,
		SlopePValue:      pb,
		InterceptPValue:  pa,
		RMSE:             rmse,
		Wx:               wx,
		N:                n,
		DOF:              dof,
	}
}

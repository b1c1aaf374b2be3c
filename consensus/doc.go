// Package consensus implements weighted errors-in-variables linear
// regression after Alvarez-Salgado et al. (2014),
// doi:10.1016/j.pocean.2013.12.009.
//
// Ordinary least squares (model I) assumes the x variable is controlled and
// puts all measurement error on the y axis. The consensus fit instead splits
// the error between both axes through a weight Wx in [0, 1] (Wy = 1 - Wx):
//
//   - Wx = 0 recovers ordinary least squares of y on x
//   - Wx = 1 recovers least squares of x on y, algebraically inverted
//   - Wx = 0.5 is the classical model II (equal-weight) regression
//
// The weight can be given directly or derived from the per-axis measurement
// uncertainties and the sample variances of the data. Either way the fit is
// closed-form and comes with the full inferential summary: standard errors,
// R-squared, F statistic, and t/p-values for slope and intercept.
//
// # Usage
//
// Fit a line with uncertainties of 2.4 on x and 10.3 on y:
//
//	res, err := consensus.FitUncertainty(x, y, 2.4, 10.3, false)
//	if err != nil {
//	    // invalid input
//	}
//	fmt.Printf("y = %.3f + %.3f x (p = %.2g)\n", res.Intercept, res.Slope, res.PValue)
//
// Pairs containing NaN on either axis are dropped before fitting.
// Degenerate but well-typed input (zero variance, zero residual variance,
// zero residual degrees of freedom) never fails: the affected statistics come
// back as IEEE infinities or NaN and callers are expected to check for
// non-finite fields.
package consensus

package consensus

// Result holds the full inferential summary of one consensus fit.
// It is constructed once per call and never mutated afterwards.
//
// RSquared is the squared Pearson correlation, not 1 - SSres/SStot. The two
// coincide only under ordinary least squares (Wx = 0, free intercept); for
// other weights the published routine reports the squared correlation and
// this implementation keeps that definition.
type Result struct {
	Slope            float64 // b in y = a + b*x
	SlopeStdErr      float64
	Intercept        float64 // a; exactly 0 for through-origin fits
	InterceptStdErr  float64 // 0 for through-origin fits
	RSquared         float64
	RSquaredAdjusted float64
	FStatistic       float64 // +Inf for perfect fits
	PValue           float64 // significance of the regression
	SlopeTValue      float64
	InterceptTValue  float64 // +Inf for through-origin fits
	SlopePValue      float64
	InterceptPValue  float64

	RMSE float64 // residual norm / sqrt(DOF); +Inf when DOF == 0
	Wx   float64 // resolved x-axis weight actually used by the fit
	N    int     // pairs retained after NaN dropping
	DOF  int     // residual degrees of freedom
}

// Predict returns the fitted value a + b*x.
func (r *Result) Predict(x float64) float64 {
	return r.Intercept + r.Slope*x
}

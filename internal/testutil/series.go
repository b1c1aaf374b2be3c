// Package testutil provides deterministic data generators and tolerance
// helpers shared by the regression tests.
package testutil

import "math/rand"

// NoisyLine generates n points on y = intercept + slope*x with uniform noise
// of the given amplitude added to y. The x values are 0..n-1 and the noise is
// seeded for reproducibility.
func NoisyLine(seed int64, n int, slope, intercept, noise float64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))

	x = make([]float64, n)
	y = make([]float64, n)

	for i := range x {
		x[i] = float64(i)
		y[i] = intercept + slope*x[i] + (rng.Float64()*2-1)*noise
	}

	return x, y
}

// NoisyLineBoth is like NoisyLine but perturbs both axes, matching the
// errors-in-variables setting the consensus fit is designed for.
func NoisyLineBoth(seed int64, n int, slope, intercept, noiseX, noiseY float64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))

	x = make([]float64, n)
	y = make([]float64, n)

	for i := range x {
		x[i] = float64(i) + (rng.Float64()*2-1)*noiseX
		y[i] = intercept + slope*float64(i) + (rng.Float64()*2-1)*noiseY
	}

	return x, y
}

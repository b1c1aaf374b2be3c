package consensus

import (
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

const (
	defaultResamples  = 1000
	defaultConfidence = 0.95
)

// FitFunc fits one data set. Both entry points adapt to it with a closure:
//
//	fn := func(x, y []float64) (consensus.Result, error) {
//	    return consensus.FitWeighted(x, y, 0.5, false)
//	}
type FitFunc func(x, y []float64) (Result, error)

// BootstrapConfig holds case-resampling parameters. Zero values select the
// defaults.
type BootstrapConfig struct {
	Resamples  int     // number of case resamples (default 1000)
	Confidence float64 // central coverage of the intervals, in (0, 1) (default 0.95)
	Seed       int64   // PRNG seed; equal seeds give equal intervals
	Workers    int     // max concurrent fits (default GOMAXPROCS)
}

// BootstrapResult holds percentile confidence intervals for the slope and
// intercept, together with the fit of the complete data set.
type BootstrapResult struct {
	Full Result // fit of the full data set

	SlopeLow      float64
	SlopeHigh     float64
	InterceptLow  float64
	InterceptHigh float64

	Resamples int // resamples that produced finite estimates
}

// Bootstrap estimates percentile confidence intervals for the slope and
// intercept by case resampling: pairs are drawn with replacement, each
// resample is fitted with fn, and the intervals are read off the sorted
// resample statistics.
//
// Resample index sets are drawn sequentially from a single seeded source
// before any fitting starts, so the result is deterministic for a given
// seed regardless of worker count. Resamples with non-finite slope or
// intercept (possible when a resample collapses onto few distinct points)
// are excluded from the intervals; Resamples reports how many were kept.
func Bootstrap(x, y []float64, fn FitFunc, cfg BootstrapConfig) (BootstrapResult, error) {
	cfg, err := normalizeBootstrapConfig(cfg)
	if err != nil {
		return BootstrapResult{}, err
	}

	// Fitting the full data up front both validates the input and provides
	// the point estimate.
	full, err := fn(x, y)
	if err != nil {
		return BootstrapResult{}, err
	}

	n := len(x)
	rng := rand.New(rand.NewSource(cfg.Seed))

	idx := make([][]int, cfg.Resamples)
	for i := range idx {
		row := make([]int, n)
		for j := range row {
			row[j] = rng.Intn(n)
		}

		idx[i] = row
	}

	slopes := make([]float64, cfg.Resamples)
	intercepts := make([]float64, cfg.Resamples)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)

	for i := range idx {
		i := i
		g.Go(func() error {
			xs := make([]float64, n)
			ys := make([]float64, n)

			for j, k := range idx[i] {
				xs[j] = x[k]
				ys[j] = y[k]
			}

			res, err := fn(xs, ys)
			if err != nil {
				return err
			}

			slopes[i] = res.Slope
			intercepts[i] = res.Intercept

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return BootstrapResult{}, err
	}

	keptS := make([]float64, 0, cfg.Resamples)
	keptI := make([]float64, 0, cfg.Resamples)

	for i := range slopes {
		if isFinite(slopes[i]) && isFinite(intercepts[i]) {
			keptS = append(keptS, slopes[i])
			keptI = append(keptI, intercepts[i])
		}
	}

	out := BootstrapResult{
		Full:          full,
		SlopeLow:      math.NaN(),
		SlopeHigh:     math.NaN(),
		InterceptLow:  math.NaN(),
		InterceptHigh: math.NaN(),
		Resamples:     len(keptS),
	}

	if len(keptS) == 0 {
		return out, nil
	}

	sort.Float64s(keptS)
	sort.Float64s(keptI)

	alpha := (1 - cfg.Confidence) / 2

	out.SlopeLow = stat.Quantile(alpha, stat.Empirical, keptS, nil)
	out.SlopeHigh = stat.Quantile(1-alpha, stat.Empirical, keptS, nil)
	out.InterceptLow = stat.Quantile(alpha, stat.Empirical, keptI, nil)
	out.InterceptHigh = stat.Quantile(1-alpha, stat.Empirical, keptI, nil)

	return out, nil
}

// normalizeBootstrapConfig fills defaults for zero values and validates the
// rest.
func normalizeBootstrapConfig(cfg BootstrapConfig) (BootstrapConfig, error) {
	if cfg.Resamples == 0 {
		cfg.Resamples = defaultResamples
	}

	if cfg.Resamples < 0 {
		return cfg, ErrResampleCount
	}

	if cfg.Confidence == 0 {
		cfg.Confidence = defaultConfidence
	}

	if cfg.Confidence <= 0 || cfg.Confidence >= 1 {
		return cfg, ErrConfidenceRange
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return cfg, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

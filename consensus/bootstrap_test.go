package consensus

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-regress/internal/testutil"
)

func modelII(x, y []float64) (Result, error) {
	return FitWeighted(x, y, 0.5, false)
}

func TestBootstrapDeterministic(t *testing.T) {
	x, y := testutil.NoisyLineBoth(19, 80, 2, 10, 1, 3)

	cfg := BootstrapConfig{Resamples: 200, Seed: 7, Workers: 4}

	first, err := Bootstrap(x, y, modelII, cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	// Different worker count, same seed: the intervals must not depend on
	// scheduling.
	cfg.Workers = 1

	second, err := Bootstrap(x, y, modelII, cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if first != second {
		t.Fatalf("results differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBootstrapBracketsPointEstimate(t *testing.T) {
	x, y := testutil.NoisyLineBoth(23, 120, 3, -5, 0.5, 2)

	res, err := Bootstrap(x, y, modelII, BootstrapConfig{Seed: 1})
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if res.SlopeLow > res.Full.Slope || res.Full.Slope > res.SlopeHigh {
		t.Errorf("slope %v outside interval [%v, %v]", res.Full.Slope, res.SlopeLow, res.SlopeHigh)
	}

	if res.InterceptLow > res.Full.Intercept || res.Full.Intercept > res.InterceptHigh {
		t.Errorf("intercept %v outside interval [%v, %v]",
			res.Full.Intercept, res.InterceptLow, res.InterceptHigh)
	}

	if res.SlopeLow >= res.SlopeHigh {
		t.Errorf("degenerate slope interval [%v, %v]", res.SlopeLow, res.SlopeHigh)
	}

	if res.Resamples == 0 {
		t.Error("no resamples retained")
	}
}

func TestBootstrapNarrowsWithCleanerData(t *testing.T) {
	noisyX, noisyY := testutil.NoisyLine(5, 100, 2, 0, 20)
	cleanX, cleanY := testutil.NoisyLine(5, 100, 2, 0, 1)

	cfg := BootstrapConfig{Resamples: 400, Seed: 3}

	noisy, err := Bootstrap(noisyX, noisyY, modelII, cfg)
	if err != nil {
		t.Fatalf("Bootstrap (noisy): %v", err)
	}

	clean, err := Bootstrap(cleanX, cleanY, modelII, cfg)
	if err != nil {
		t.Fatalf("Bootstrap (clean): %v", err)
	}

	if clean.SlopeHigh-clean.SlopeLow >= noisy.SlopeHigh-noisy.SlopeLow {
		t.Errorf("clean interval width %v not narrower than noisy %v",
			clean.SlopeHigh-clean.SlopeLow, noisy.SlopeHigh-noisy.SlopeLow)
	}
}

func TestBootstrapInvalidConfig(t *testing.T) {
	x, y := testutil.NoisyLine(1, 20, 1, 0, 1)

	_, err := Bootstrap(x, y, modelII, BootstrapConfig{Resamples: -1})
	if !errors.Is(err, ErrResampleCount) {
		t.Errorf("negative resamples: got %v, want ErrResampleCount", err)
	}

	_, err = Bootstrap(x, y, modelII, BootstrapConfig{Confidence: 1.2})
	if !errors.Is(err, ErrConfidenceRange) {
		t.Errorf("confidence out of range: got %v, want ErrConfidenceRange", err)
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error %v does not wrap ErrInvalidInput", err)
	}
}

func TestBootstrapPropagatesFitError(t *testing.T) {
	_, err := Bootstrap([]float64{1, 2, 3}, []float64{1, 2}, modelII, BootstrapConfig{Resamples: 10})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

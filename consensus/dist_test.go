package consensus

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-regress/internal/testutil"
)

func TestTCDF(t *testing.T) {
	// Known closed forms: nu=1 is the Cauchy distribution,
	// CDF(x) = 1/2 + atan(x)/pi.
	testutil.RequireNear(t, "tCDF(1, 0)", tCDF(1, 0), 0.5, 1e-12)
	testutil.RequireNear(t, "tCDF(1, 1)", tCDF(1, 1), 0.75, 1e-12)
	testutil.RequireNear(t, "tCDF(1, -1)", tCDF(1, -1), 0.25, 1e-12)

	if got := tCDF(5, math.Inf(1)); got != 1 {
		t.Errorf("tCDF(5, +Inf): got %v, want 1", got)
	}

	if got := tCDF(5, math.Inf(-1)); got != 0 {
		t.Errorf("tCDF(5, -Inf): got %v, want 0", got)
	}

	if got := tCDF(0, 1); !math.IsNaN(got) {
		t.Errorf("tCDF(0, 1): got %v, want NaN outside parameter domain", got)
	}

	if got := tCDF(5, math.NaN()); !math.IsNaN(got) {
		t.Errorf("tCDF(5, NaN): got %v, want NaN", got)
	}
}

func TestFCDF(t *testing.T) {
	// F(1, 1) has median exactly 1: the ratio of two iid chi-squared
	// variables is below 1 with probability 1/2.
	testutil.RequireNear(t, "fCDF(1, 1, 1)", fCDF(1, 1, 1), 0.5, 1e-12)

	if got := fCDF(1, 22, math.Inf(1)); got != 1 {
		t.Errorf("fCDF(+Inf): got %v, want 1", got)
	}

	if got := fCDF(1, 22, 0); got != 0 {
		t.Errorf("fCDF(0): got %v, want 0", got)
	}

	if got := fCDF(1, 22, -3); got != 0 {
		t.Errorf("fCDF(-3): got %v, want 0", got)
	}

	if got := fCDF(1, 0, 0.5); !math.IsNaN(got) {
		t.Errorf("fCDF with d2=0: got %v, want NaN outside parameter domain", got)
	}

	if got := fCDF(1, 22, math.NaN()); !math.IsNaN(got) {
		t.Errorf("fCDF(NaN): got %v, want NaN", got)
	}
}

func TestTCDFMonotone(t *testing.T) {
	prev := 0.0

	for x := -8.0; x <= 8.0; x += 0.25 {
		got := tCDF(22, x)
		if got < prev {
			t.Fatalf("tCDF(22, %v) = %v decreased below %v", x, got, prev)
		}

		prev = got
	}
}

package testutil

import (
	"math"
	"testing"
)

// Near reports whether a and b agree within eps (absolute tolerance).
// Matching infinities of the same sign and matching NaNs count as equal,
// which the degenerate-fit tests rely on.
func Near(a, b, eps float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}

	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}

	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return math.Abs(a-b) <= eps
}

// RequireNear fails t if got and want disagree beyond eps.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()

	if !Near(got, want, eps) {
		t.Fatalf("%s: got %v, want %v (diff %v > eps %v)", name, got, want, math.Abs(got-want), eps)
	}
}

// CheckNear is the non-fatal variant of RequireNear.
func CheckNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()

	if !Near(got, want, eps) {
		t.Errorf("%s: got %v, want %v (diff %v > eps %v)", name, got, want, math.Abs(got-want), eps)
	}
}

package queue

import (
	"math"
	"testing"
)

// within fails the test unless got is within tol of want.
func within(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.9f, want %.9f (tol %g)", name, got, want, tol)
	}
}

// littleLaw verifies L = lambda*W and Lq = lambda*Wq for a stable
// single-class result.
func littleLaw(t *testing.T, res *Result, lambda float64) {
	t.Helper()
	within(t, "Little's Law L", res.L, lambda*res.W, 1e-9)
	within(t, "Little's Law Lq", res.Lq, lambda*res.Wq, 1e-9)
}

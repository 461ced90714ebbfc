package queue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMMSK_ProbabilityMassSumsToOne(t *testing.T) {
	lambda, mu, s, k := 5.0, 2.0, 3, 8
	var sum float64
	for n := 0; n <= k; n++ {
		res, err := MMSK(lambda, mu, s, k, QueryN(n))
		require.NoError(t, err)
		sum += *res.Pn
	}
	within(t, "sum p_n", sum, 1.0, 1e-12)
}

func TestMMSK_ClosedFormLqMatchesDirectSummation(t *testing.T) {
	// The truncated-geometric Lq must agree with sum_{n=s}^{K} (n-s) p_n.
	cases := []struct {
		lambda, mu float64
		s, k       int
	}{
		{5, 2, 3, 8},
		{2, 4, 2, 6},
		{9, 1, 10, 30},
	}
	for _, c := range cases {
		res, err := MMSK(c.lambda, c.mu, c.s, c.k, nil)
		require.NoError(t, err)

		var direct float64
		for n := c.s; n <= c.k; n++ {
			r, err := MMSK(c.lambda, c.mu, c.s, c.k, QueryN(n))
			require.NoError(t, err)
			direct += float64(n-c.s) * *r.Pn
		}
		within(t, "Lq closed form vs direct", res.Lq, direct, 1e-9)
	}
}

func TestMMSK_DirectLAgreesWithEffectiveRate(t *testing.T) {
	res, err := MMSK(5, 2, 3, 8, nil)
	require.NoError(t, err)

	within(t, "L = lambda_eff*W", res.L, res.LambdaEff*res.W, 1e-9)
	if res.LambdaEff > 5 {
		t.Errorf("lambda_eff = %v must be <= lambda", res.LambdaEff)
	}
	// L - Lq equals the expected busy servers lambda_eff/mu.
	within(t, "busy servers", res.L-res.Lq, res.LambdaEff/2.0, 1e-9)
}

func TestMMSK_LargeCapacityApproachesMMS(t *testing.T) {
	// With a big K and stable load the finite model converges to M/M/s.
	fin, err := MMSK(2, 3, 2, 80, nil)
	require.NoError(t, err)
	inf, err := MMS(2, 3, 2, nil)
	require.NoError(t, err)

	within(t, "L", fin.L, inf.L, 1e-9)
	within(t, "Lq", fin.Lq, inf.Lq, 1e-9)
	within(t, "p0", fin.P0, inf.P0, 1e-9)
}

func TestMMSK_CapacityEqualsServers(t *testing.T) {
	// K = s is the pure-loss (Erlang B) system: no queue at all.
	res, err := MMSK(4, 2, 3, 3, nil)
	require.NoError(t, err)
	if res.Lq != 0 {
		t.Errorf("K=s: Lq = %v, want 0", res.Lq)
	}
	if res.Wq != 0 {
		t.Errorf("K=s: Wq = %v, want 0", res.Wq)
	}
}

func TestMMSK_CriticalLoadIsLegal(t *testing.T) {
	// rho = 1 (lambda = s*mu) uses the removable-singularity Lq limit.
	res, err := MMSK(6, 3, 2, 10, nil)
	require.NoError(t, err)
	if math.IsNaN(res.Lq) || math.IsInf(res.Lq, 0) {
		t.Fatalf("Lq at rho=1: got %v", res.Lq)
	}

	var direct float64
	for n := 2; n <= 10; n++ {
		r, err := MMSK(6, 3, 2, 10, QueryN(n))
		require.NoError(t, err)
		direct += float64(n-2) * *r.Pn
	}
	within(t, "Lq at rho=1", res.Lq, direct, 1e-9)
}

func TestMMSK_LargeStateSpaceStaysFinite(t *testing.T) {
	res, err := MMSK(100, 1, 120, 400, nil)
	require.NoError(t, err)
	if math.IsNaN(res.L) || math.IsInf(res.L, 0) {
		t.Errorf("L for s=120, K=400: got %v", res.L)
	}
	within(t, "L = lambda_eff*W", res.L, res.LambdaEff*res.W, 1e-9)
}

func TestMMSK_DomainErrors(t *testing.T) {
	var domErr *DomainError
	_, err := MMSK(2, 3, 3, 2, nil)
	require.ErrorAs(t, err, &domErr, "K < s")

	_, err = MMSK(2, 3, 2, 6, QueryN(7))
	require.ErrorAs(t, err, &domErr, "n > K")
}

package queue

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMM1_WorkedReferenceCase(t *testing.T) {
	// GIVEN lambda=3 trucks/hour, mu=4 trucks/hour
	res, err := MM1(3, 4, nil)
	require.NoError(t, err)

	// THEN the textbook answers hold
	within(t, "rho", res.Rho, 0.75, 1e-12)
	within(t, "p0", res.P0, 0.25, 1e-12)
	within(t, "L", res.L, 3.0, 1e-9)
	within(t, "Lq", res.Lq, 2.25, 1e-9)
	within(t, "W", res.W, 1.0, 1e-9)
	within(t, "Wq", res.Wq, 0.75, 1e-9)
	littleLaw(t, res, 3)
}

func TestMM1_StateProbabilityQuery(t *testing.T) {
	res, err := MM1(2, 3, QueryN(2))
	require.NoError(t, err)
	require.NotNil(t, res.Pn)
	// p_n = (1-rho) rho^n with rho = 2/3
	within(t, "p2", *res.Pn, (1.0/3.0)*(2.0/3.0)*(2.0/3.0), 1e-12)
}

func TestMM1_WaitingTimeTails(t *testing.T) {
	res, err := MM1(3, 4, QueryT(1.0))
	require.NoError(t, err)
	require.NotNil(t, res.PWGtT)
	require.NotNil(t, res.PWqGtT)

	// P(W>t) = e^{-mu(1-rho)t} = e^{-1}, P(Wq>t) = rho * P(W>t)
	within(t, "P(W>t)", *res.PWGtT, math.Exp(-1), 1e-12)
	within(t, "P(Wq>t)", *res.PWqGtT, 0.75*math.Exp(-1), 1e-12)
}

func TestMM1_InstabilityRejection(t *testing.T) {
	for _, lambda := range []float64{4, 5} {
		res, err := MM1(lambda, 4, nil)
		var instErr *InstabilityError
		if !errors.As(err, &instErr) {
			t.Fatalf("MM1(%v, 4): got err %v, want InstabilityError", lambda, err)
		}
		if res != nil {
			t.Errorf("MM1(%v, 4): result must be nil on failure, got %v", lambda, res)
		}
	}
}

func TestMM1_ParameterValidation(t *testing.T) {
	var valErr *ValidationError
	var domErr *DomainError

	_, err := MM1(-1, 4, nil)
	require.ErrorAs(t, err, &valErr, "negative lambda")

	_, err = MM1(3, 0, nil)
	require.ErrorAs(t, err, &valErr, "zero mu")

	_, err = MM1(3, 4, QueryN(-1))
	require.ErrorAs(t, err, &domErr, "negative n")

	_, err = MM1(3, 4, QueryT(-0.5))
	require.ErrorAs(t, err, &domErr, "negative t")
}

func TestMM1_ZeroArrivals(t *testing.T) {
	res, err := MM1(0, 4, QueryN(0))
	require.NoError(t, err)
	if res.L != 0 || res.W != 0 || res.P0 != 1 {
		t.Errorf("MM1 with lambda=0: got %v, want empty system", res)
	}
	require.NotNil(t, res.Pn)
	within(t, "p0 query", *res.Pn, 1, 0)
}

func TestMM1_Idempotence(t *testing.T) {
	// Identical inputs must yield bit-for-bit identical outputs.
	a, err := MM1(3, 4, QueryT(0.25))
	require.NoError(t, err)
	b, err := MM1(3, 4, QueryT(0.25))
	require.NoError(t, err)

	if a.L != b.L || a.Lq != b.Lq || a.W != b.W || a.Wq != b.Wq ||
		*a.PWGtT != *b.PWGtT || *a.PWqGtT != *b.PWqGtT {
		t.Errorf("MM1 not idempotent: %v vs %v", a, b)
	}
}

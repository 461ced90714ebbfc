package queue

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial_SmallValues(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{0, 1}, {1, 1}, {2, 2}, {5, 120}, {10, 3628800},
	}
	for _, c := range cases {
		got, err := Factorial(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "factorial(%d)", c.n)
	}
}

func TestFactorial_RejectsOverflowRange(t *testing.T) {
	// GIVEN an argument past the float64 overflow point
	_, err := Factorial(171)

	// THEN a DomainError is returned rather than +Inf
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("Factorial(171): got %v, want DomainError", err)
	}

	if _, err := Factorial(-1); err == nil {
		t.Error("Factorial(-1): expected error, got nil")
	}
}

func TestBinomial_MatchesFactorialFormula(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for k := 0; k <= n; k++ {
			fn, _ := Factorial(n)
			fk, _ := Factorial(k)
			fnk, _ := Factorial(n - k)
			within(t, "binomial", Binomial(n, k), fn/(fk*fnk), 1e-6)
		}
	}
	assert.Zero(t, Binomial(5, 6))
	assert.Zero(t, Binomial(5, -1))
}

func TestBinomial_LargeArgumentsStayFinite(t *testing.T) {
	// C(500, 250) overflows any factorial-based evaluation but must still
	// come back finite through the log-gamma route.
	got := Binomial(500, 250)
	if math.IsInf(got, 0) || math.IsNaN(got) || got <= 0 {
		t.Errorf("Binomial(500, 250): got %v, want finite positive", got)
	}
}

func TestPowerOverFactorial_MatchesDirectEvaluation(t *testing.T) {
	for n := 0; n <= 20; n++ {
		want := math.Pow(2.5, float64(n))
		f, _ := Factorial(n)
		want /= f
		within(t, "a^n/n!", PowerOverFactorial(2.5, n), want, 1e-9*want+1e-12)
	}
}

func TestPowerOverFactorial_LargeNStaysFinite(t *testing.T) {
	// a^n and n! both overflow for n = 400; the ratio recurrence must not.
	got := PowerOverFactorial(300, 400)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("PowerOverFactorial(300, 400): got %v, want finite", got)
	}
}

func TestPowerFactorialSum_ConvergesToExp(t *testing.T) {
	// sum_{k=0}^{n} a^k/k! -> e^a as n grows
	for _, a := range []float64{0.5, 1, 3, 10} {
		within(t, "partial exp sum", PowerFactorialSum(a, 200), math.Exp(a), 1e-9*math.Exp(a))
	}
}

package queue

import "gonum.org/v1/gonum/stat/combin"

// maxFactorialArg is the largest n for which n! fits in a float64.
const maxFactorialArg = 170

// Factorial returns n! as a float64. Arguments above 170 overflow float64
// and are rejected; closed forms over large state spaces must use the
// incremental ratio helpers below instead of materializing factorials.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, domainf("factorial undefined for n = %d", n)
	}
	if n > maxFactorialArg {
		return 0, domainf("factorial(%d) overflows float64; use the ratio recurrence", n)
	}
	f := 1.0
	for k := 2; k <= n; k++ {
		f *= float64(k)
	}
	return f, nil
}

// Binomial returns the binomial coefficient C(n, k), evaluated through
// log-gamma so it stays finite well past the factorial overflow point.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return combin.GeneralizedBinomial(float64(n), float64(k))
}

// PowerOverFactorial returns a^n / n! via the ratio recurrence
// term_k = term_{k-1} * a/k, never forming a^n or n! separately.
func PowerOverFactorial(a float64, n int) float64 {
	term := 1.0
	for k := 1; k <= n; k++ {
		term *= a / float64(k)
	}
	return term
}

// PowerFactorialSum returns sum_{k=0}^{n} a^k / k! using the same
// incremental recurrence.
func PowerFactorialSum(a float64, n int) float64 {
	term := 1.0
	sum := 1.0
	for k := 1; k <= n; k++ {
		term *= a / float64(k)
		sum += term
	}
	return sum
}

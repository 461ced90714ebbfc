package queue

// ErlangC returns the probability that an arriving unit must wait in an
// M/M/s system:
//
//	Pw = [a^s/s! * 1/(1-rho)] / [sum_{k=0}^{s-1} a^k/k! + a^s/s! * 1/(1-rho)]
//
// with a = lambda/mu and rho = lambda/(s*mu). For s = 1 this reduces to
// Pw = rho.
func ErlangC(lambda, mu float64, s int) (float64, error) {
	if err := checkMu(mu); err != nil {
		return 0, err
	}
	if err := checkServers(s); err != nil {
		return 0, err
	}
	if err := checkLambda(lambda); err != nil {
		return 0, err
	}
	if lambda == 0 {
		return 0, nil
	}
	rho := lambda / (float64(s) * mu)
	if rho >= 1 {
		return 0, instabilityf(rho, 0, "Erlang C undefined: lambda = %v >= s*mu = %v (rho = %.6f)",
			lambda, float64(s)*mu, rho)
	}

	a := lambda / mu
	waiting := PowerOverFactorial(a, s) / (1 - rho)
	p0 := 1.0 / (PowerFactorialSum(a, s-1) + waiting)
	return waiting * p0, nil
}

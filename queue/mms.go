package queue

import "math"

// MMS solves the s-server, infinite-capacity M/M/s queue. With a =
// lambda/mu and rho = lambda/(s*mu):
//
//	p0 = 1 / [sum_{n=0}^{s-1} a^n/n! + a^s/s! * 1/(1-rho)]
//	Lq = p0 * a^s/s! * rho/(1-rho)^2    L = Lq + a
//
// Optional queries: p_n for any n >= 0, P(Wq>t) via the Erlang C waiting
// probability, and P(W>t) combining the served-immediately and must-wait
// branches (with the (s-1-a) -> 0 degenerate case handled separately).
func MMS(lambda, mu float64, s int, q *Query) (*Result, error) {
	if err := checkMu(mu); err != nil {
		return nil, err
	}
	if err := checkServers(s); err != nil {
		return nil, err
	}
	if err := checkLambda(lambda); err != nil {
		return nil, err
	}
	if err := checkQuery(q, -1); err != nil {
		return nil, err
	}
	if lambda == 0 {
		return emptySystem(q), nil
	}
	if err := checkStability(lambda, mu, s); err != nil {
		return nil, err
	}

	a := lambda / mu
	rho := lambda / (float64(s) * mu)
	termS := PowerOverFactorial(a, s) // a^s/s!
	p0 := 1.0 / (PowerFactorialSum(a, s-1) + termS/(1-rho))

	lq := p0 * termS * rho / ((1 - rho) * (1 - rho))
	l := lq + a
	res := &Result{
		Rho: rho,
		P0:  p0,
		L:   l,
		Lq:  lq,
		W:   l / lambda,
		Wq:  lq / lambda,
	}

	if q != nil && q.N != nil {
		pn := mmsStateProb(*q.N, a, s, p0)
		res.Pn = &pn
	}
	if q != nil && q.T != nil {
		t := *q.T
		c := termS / (1 - rho) * p0 // Erlang C
		pwq := c * math.Exp(-(1-rho)*float64(s)*mu*t)

		// P(W>t) = e^{-mu t} [1 + C (1 - e^{-mu t (s-1-a)}) / (s-1-a)],
		// taking the limit C*mu*t when s-1-a vanishes.
		denom := float64(s-1) - a
		var inner float64
		if math.Abs(denom) < 1e-8 {
			inner = c * mu * t
		} else {
			inner = c * (1 - math.Exp(-mu*t*denom)) / denom
		}
		pw := math.Exp(-mu*t) * (1 + inner)

		res.PWGtT = &pw
		res.PWqGtT = &pwq
	}
	return res, nil
}

// mmsStateProb returns p_n for the M/M/s queue: (a^n/n!) p0 below the
// server boundary, (a^s/s!)(a/s)^{n-s} p0 above it. The tail uses the
// ratio a/s per state so no large power or factorial is ever formed.
func mmsStateProb(n int, a float64, s int, p0 float64) float64 {
	if n <= s {
		return PowerOverFactorial(a, n) * p0
	}
	term := PowerOverFactorial(a, s)
	for k := s + 1; k <= n; k++ {
		term *= a / float64(s)
	}
	return term * p0
}

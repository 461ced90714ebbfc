package queue

import "math"

// MM1 solves the single-server, infinite-capacity M/M/1 queue:
//
//	rho = lambda/mu    p0 = 1-rho    L = rho/(1-rho)    Lq = L - rho
//
// Optional query outputs: p_n = (1-rho)*rho^n, P(W>t) = e^{-mu(1-rho)t}
// and P(Wq>t) = rho * P(W>t).
func MM1(lambda, mu float64, q *Query) (*Result, error) {
	if err := checkMu(mu); err != nil {
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

	rho := lambda / mu
	if err := checkStability(lambda, mu, 1); err != nil {
		return nil, err
	}

	p0 := 1 - rho
	l := rho / (1 - rho)
	lq := l - rho
	res := &Result{
		Rho: rho,
		P0:  p0,
		L:   l,
		Lq:  lq,
		W:   l / lambda,
		Wq:  lq / lambda,
	}

	if q != nil && q.N != nil {
		pn := p0 * math.Pow(rho, float64(*q.N))
		res.Pn = &pn
	}
	if q != nil && q.T != nil {
		pw := math.Exp(-mu * (1 - rho) * *q.T)
		pwq := rho * pw
		res.PWGtT = &pw
		res.PWqGtT = &pwq
	}
	return res, nil
}

// emptySystem is the degenerate lambda = 0 result shared by the infinite
// and finite models: the system is always empty.
func emptySystem(q *Query) *Result {
	res := &Result{Rho: 0, P0: 1}
	if q != nil && q.N != nil {
		pn := 0.0
		if *q.N == 0 {
			pn = 1.0
		}
		res.Pn = &pn
	}
	if q != nil && q.T != nil {
		pw, pwq := 0.0, 0.0
		res.PWGtT = &pw
		res.PWqGtT = &pwq
	}
	return res
}

package queue

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MMSK solves the s-server queue with finite capacity K. The unnormalized
// state weights follow the M/M/s birth-death recurrence, a = lambda/mu:
//
//	w_n = a^n/n!                 for n <= s
//	w_n = a^s/s! * (a/s)^{n-s}   for s < n <= K
//
// Lq uses the truncated-geometric closed form
//
//	Lq = p0 * a^s/s! * rho/(1-rho)^2 * [1 - rho^{K-s} - (K-s)(1-rho)rho^{K-s}]
//
// with the rho = 1 limit Lq = p0 * a^s/s! * (K-s)(K-s+1)/2. L comes from
// direct summation over the state probabilities; the two agree through
// L - Lq = lambda_eff/mu (expected busy servers).
func MMSK(lambda, mu float64, s, k int, q *Query) (*Result, error) {
	if err := checkMu(mu); err != nil {
		return nil, err
	}
	if err := checkServers(s); err != nil {
		return nil, err
	}
	if err := checkLambda(lambda); err != nil {
		return nil, err
	}
	if err := checkCapacity(k, s); err != nil {
		return nil, err
	}
	if err := checkQuery(q, k); err != nil {
		return nil, err
	}
	if lambda == 0 {
		return emptySystem(q), nil
	}

	a := lambda / mu
	rho := lambda / (float64(s) * mu)

	weights := make([]float64, k+1)
	weights[0] = 1
	for n := 1; n <= k; n++ {
		div := float64(n)
		if n > s {
			div = float64(s)
		}
		weights[n] = weights[n-1] * a / div
	}
	p0 := 1.0 / floats.Sum(weights)

	var l float64
	for n, w := range weights {
		l += float64(n) * w * p0
	}

	termS := PowerOverFactorial(a, s) // a^s/s!
	var lq float64
	if math.Abs(rho-1) < rhoOneTolerance {
		lq = p0 * termS * float64(k-s) * float64(k-s+1) / 2
	} else {
		tail := 1 - math.Pow(rho, float64(k-s)) -
			float64(k-s)*(1-rho)*math.Pow(rho, float64(k-s))
		lq = p0 * termS * rho / ((1 - rho) * (1 - rho)) * tail
	}

	pk := weights[k] * p0
	lambdaEff := lambda * (1 - pk)

	res := &Result{
		Rho:       rho,
		P0:        p0,
		L:         l,
		Lq:        lq,
		LambdaEff: lambdaEff,
		PBlock:    pk,
	}
	if lambdaEff > 0 {
		res.W = l / lambdaEff
		res.Wq = lq / lambdaEff
	}
	if q != nil && q.N != nil {
		pn := weights[*q.N] * p0
		res.Pn = &pn
	}
	return res, nil
}

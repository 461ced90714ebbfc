package queue

import "gonum.org/v1/gonum/floats"

// MMSN solves the finite-population model with s servers and a calling
// population of N units: birth rate (N-n)*lambda, death rate min(n,s)*mu.
// The state probabilities come from the birth-death product form
//
//	w_0 = 1,  w_n = w_{n-1} * (N-n+1)*lambda / (min(n,s)*mu)
//
// evaluated incrementally so the N!/(N-n)! growth never materializes.
//
// Extra outputs: LambdaEff = lambda*(N-L), LOperational = N-L (units
// outside the system) and PIdleServer = P(n < s).
func MMSN(lambda, mu float64, s, n int, q *Query) (*Result, error) {
	if err := checkMu(mu); err != nil {
		return nil, err
	}
	if err := checkServers(s); err != nil {
		return nil, err
	}
	if err := checkLambda(lambda); err != nil {
		return nil, err
	}
	if err := checkPopulation(n, s); err != nil {
		return nil, err
	}
	if err := checkQuery(q, n); err != nil {
		return nil, err
	}
	if lambda == 0 || n == 0 {
		res := emptySystem(q)
		res.LOperational = float64(n)
		res.PIdleServer = 1
		return res, nil
	}

	weights := make([]float64, n+1)
	weights[0] = 1
	for i := 1; i <= n; i++ {
		servers := float64(min(i, s))
		weights[i] = weights[i-1] * (float64(n-i+1) * lambda) / (servers * mu)
	}
	norm := floats.Sum(weights)

	p := make([]float64, n+1)
	for i, w := range weights {
		p[i] = w / norm
	}

	var l, busy float64
	for i, pi := range p {
		l += float64(i) * pi
		busy += float64(min(i, s)) * pi
	}
	lq := l - busy
	lambdaEff := lambda * (float64(n) - l)

	var pIdle float64
	for i := 0; i < min(s, n+1); i++ {
		pIdle += p[i]
	}

	res := &Result{
		Rho:          busy / float64(s),
		P0:           p[0],
		L:            l,
		Lq:           lq,
		LambdaEff:    lambdaEff,
		LOperational: float64(n) - l,
		PIdleServer:  pIdle,
	}
	if lambdaEff > 0 {
		res.W = l / lambdaEff
		res.Wq = lq / lambdaEff
	}
	if q != nil && q.N != nil {
		pn := p[*q.N]
		res.Pn = &pn
	}
	return res, nil
}

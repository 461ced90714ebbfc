package queue

import "math"

// rhoOneTolerance decides when rho is close enough to 1 that the finite
// models must switch to the removable-singularity closed forms.
const rhoOneTolerance = 1e-8

// MM1K solves the single-server queue with finite capacity K (including
// the unit in service). Because the state space is bounded the model is
// well defined for any rho, including rho >= 1; rho = 1 uses the uniform
// limit p0 = 1/(K+1), L = K/2.
//
// Extra outputs: PBlock = p_K (an arrival finding the system full is
// lost) and LambdaEff = lambda*(1 - p_K).
func MM1K(lambda, mu float64, k int, q *Query) (*Result, error) {
	if err := checkMu(mu); err != nil {
		return nil, err
	}
	if err := checkLambda(lambda); err != nil {
		return nil, err
	}
	if err := checkCapacity(k, 1); err != nil {
		return nil, err
	}
	if err := checkQuery(q, k); err != nil {
		return nil, err
	}
	if lambda == 0 {
		return emptySystem(q), nil
	}

	rho := lambda / mu
	var p0, l float64
	pn := func(n int) float64 { return p0 * math.Pow(rho, float64(n)) }
	if math.Abs(rho-1) < rhoOneTolerance {
		p0 = 1.0 / float64(k+1)
		pn = func(int) float64 { return p0 }
		l = float64(k) / 2
	} else {
		rhoK1 := math.Pow(rho, float64(k+1))
		p0 = (1 - rho) / (1 - rhoK1)
		l = rho * (1 - float64(k+1)*math.Pow(rho, float64(k)) + float64(k)*rhoK1) /
			((1 - rho) * (1 - rhoK1))
	}

	pk := pn(k)
	lambdaEff := lambda * (1 - pk)
	lq := l - (1 - p0)

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
		p := pn(*q.N)
		res.Pn = &p
	}
	return res, nil
}

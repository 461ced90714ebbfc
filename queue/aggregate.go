package queue

// aggregateClasses folds an ordered per-class metrics list into the
// system-level totals via Little's Law: L and Lq sum the class-only
// values, W = L/lambda_total, Wq = Lq/lambda_total. p0 uses 1-rho for a
// single server and the M/M/s empty-system formula otherwise, so the
// totals reproduce the aggregate single-class model for the merged
// stream.
//
// Callers guarantee lambda_total < s*mu; the per-class values are taken
// as finalized and are not recomputed here.
func aggregateClasses(classes []ClassMetrics, mu float64, s int) *Result {
	var total, l, lq float64
	for _, c := range classes {
		total += c.Lambda
		l += c.L
		lq += c.Lq
	}

	rho := total / (float64(s) * mu)
	var p0 float64
	if s == 1 {
		p0 = 1 - rho
	} else {
		a := total / mu
		p0 = 1.0 / (PowerFactorialSum(a, s-1) + PowerOverFactorial(a, s)/(1-rho))
	}

	res := &Result{
		Rho:         rho,
		P0:          p0,
		L:           l,
		Lq:          lq,
		LambdaTotal: total,
		Classes:     classes,
	}
	if total > 0 {
		res.W = l / total
		res.Wq = lq / total
	}
	return res
}

package queue

// PriorityNonPreemptive solves the multi-class head-of-line priority
// queue (service in progress always completes) over an M/M/1 or M/M/s
// substrate, with the same class ordering and cumulative-rate bookkeeping
// as PriorityPreemptive.
//
// s = 1 uses the mean residual-work form with A = sum_i lambda_i*E[S_i^2]
// (all classes share the exponential service, so E[S^2] = 2/mu^2):
//
//	Wq_k = A / (2 * (1 - R_{k-1}/mu) * (1 - R_k/mu))
//
// s > 1 uses the normalizing constant, r = lambda_total/mu:
//
//	B = s!*(s*mu - lambda_total)/r^s * sum_{j=0}^{s-1} r^j/j! + s*mu
//	W_k = 1 / (B * (1 - R_{k-1}/(s*mu)) * (1 - R_k/(s*mu))) + 1/mu
func PriorityNonPreemptive(rates []float64, mu float64, s int) (*Result, error) {
	if err := checkMu(mu); err != nil {
		return nil, err
	}
	if err := checkServers(s); err != nil {
		return nil, err
	}
	if err := checkClassRates(rates); err != nil {
		return nil, err
	}
	if allZero(rates) {
		return zeroClassResult(rates), nil
	}

	total := 0.0
	for _, lam := range rates {
		total += lam
	}
	capacity := float64(s) * mu

	// Residual-work numerator (s = 1) and normalizing constant (s > 1).
	residual := total * 2 / (mu * mu) // A = lambda_total * E[S^2]
	var b float64
	if s > 1 {
		r := total / mu
		termS := PowerOverFactorial(r, s) // r^s/s!
		b = (capacity-total)*PowerFactorialSum(r, s-1)/termS + capacity
	}

	classes := make([]ClassMetrics, 0, len(rates))
	cum := 0.0
	for k, lam := range rates {
		prev := cum
		cum += lam

		factorPrev := 1 - prev/capacity
		factorCum := 1 - cum/capacity
		if factorPrev <= 0 || factorCum <= 0 {
			return nil, instabilityf(cum/capacity, k+1,
				"priority prefix through class %d is unstable: R_%d = %.6f >= s*mu = %.6f",
				k+1, k+1, cum, capacity)
		}

		var w, wq float64
		if s == 1 {
			wq = residual / (2 * factorPrev * factorCum)
			w = wq + 1/mu
		} else {
			w = 1/(b*factorPrev*factorCum) + 1/mu
			wq = max(w-1/mu, 0)
		}

		pWait, err := ErlangC(cum, mu, s)
		if err != nil {
			return nil, err
		}
		classes = append(classes, ClassMetrics{
			Priority:     k + 1,
			Lambda:       lam,
			LambdaCum:    cum,
			Rho:          lam / capacity,
			W:            w,
			Wq:           wq,
			L:            lam * w,
			Lq:           max(lam*w-lam/mu, 0),
			LCumulative:  cum * w,
			LqCumulative: max(cum*w-cum/mu, 0),
			PWait:        pWait,
		})
	}

	return aggregateClasses(classes, mu, s), nil
}

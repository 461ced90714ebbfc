package queue

// PriorityPreemptive solves the multi-class preemptive-resume priority
// queue over an M/M/1 (s = 1) or M/M/s (s > 1) substrate. rates[i] is the
// arrival rate of priority class i+1; class 1 is the highest priority and
// all classes share the service rate mu.
//
// Classes are processed strictly left to right over the cumulative rates
// R_k = lambda_1 + ... + lambda_k:
//
//	s = 1:  W_k = mu / ((mu - R_{k-1}) * (mu - R_k))
//	s > 1:  W_k = (R_k * Wbar_k - sum_{j<k} lambda_j * W_j) / lambda_k
//
// where Wbar_k is the aggregate M/M/s time in system of the merged
// sub-stream with rate R_k. Each W_j is finalized before class j+1 is
// computed and never mutated afterward.
//
// A prefix whose cumulative rate reaches capacity makes that class and
// every lower one unstable; the returned InstabilityError names the first
// offending class rather than just rejecting the aggregate mix.
func PriorityPreemptive(rates []float64, mu float64, s int) (*Result, error) {
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

	classes := make([]ClassMetrics, 0, len(rates))
	waits := make([]float64, 0, len(rates)) // finalized W_j, j < k
	capacity := float64(s) * mu

	cum := 0.0
	for k, lam := range rates {
		prev := cum
		cum += lam
		if cum >= capacity {
			return nil, instabilityf(cum/capacity, k+1,
				"priority prefix through class %d is unstable: R_%d = %.6f >= s*mu = %.6f",
				k+1, k+1, cum, capacity)
		}

		var w float64
		if s == 1 {
			w = mu / ((mu - prev) * (mu - cum))
		} else {
			agg, err := MMS(cum, mu, s, nil)
			if err != nil {
				return nil, err
			}
			switch {
			case lam == 0:
				// A zero-rate probe class waits like the merged stream.
				w = agg.W
			case k == 0:
				w = agg.W
			default:
				numer := cum * agg.W
				for j := 0; j < k; j++ {
					numer -= rates[j] * waits[j]
				}
				w = numer / lam
			}
		}
		waits = append(waits, w)

		wq := max(w-1/mu, 0)
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
			Lq:           lam * wq,
			LCumulative:  cum * w,
			LqCumulative: max(cum*w-cum/mu, 0),
			PWait:        pWait,
		})
	}

	return aggregateClasses(classes, mu, s), nil
}

func allZero(rates []float64) bool {
	for _, r := range rates {
		if r != 0 {
			return false
		}
	}
	return true
}

// zeroClassResult is the degenerate all-idle result shared by both
// priority engines when every class rate is zero.
func zeroClassResult(rates []float64) *Result {
	classes := make([]ClassMetrics, len(rates))
	for i := range rates {
		classes[i] = ClassMetrics{Priority: i + 1}
	}
	return &Result{P0: 1, Classes: classes}
}

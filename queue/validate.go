package queue

// Parameter guards shared by every model. Checks run in a fixed order:
// service rate, server count, arrival rates, structural bounds (K >= s,
// N >= s), then stability. All guards are pure; none logs or retries.

func checkMu(mu float64) error {
	if mu <= 0 {
		return validationf("mu must be > 0, got %v", mu)
	}
	return nil
}

func checkLambda(lambda float64) error {
	if lambda < 0 {
		return validationf("lambda must be >= 0, got %v", lambda)
	}
	return nil
}

func checkServers(s int) error {
	if s < 1 {
		return validationf("s must be an integer >= 1, got %d", s)
	}
	return nil
}

func checkCapacity(k, s int) error {
	if k < s {
		return domainf("capacity K = %d must be >= server count s = %d", k, s)
	}
	return nil
}

func checkPopulation(n, s int) error {
	if n < 0 {
		return validationf("population N must be >= 0, got %d", n)
	}
	if n > 0 && n < s {
		return domainf("population N = %d must be >= server count s = %d", n, s)
	}
	return nil
}

// checkQuery validates an optional probability query. maxN < 0 means the
// state space is unbounded and any n >= 0 is acceptable.
func checkQuery(q *Query, maxN int) error {
	if q == nil {
		return nil
	}
	if q.N != nil {
		if *q.N < 0 {
			return domainf("queried n must be >= 0, got %d", *q.N)
		}
		if maxN >= 0 && *q.N > maxN {
			return domainf("queried n = %d outside state space [0, %d]", *q.N, maxN)
		}
	}
	if q.T != nil && *q.T < 0 {
		return domainf("queried t must be >= 0, got %v", *q.T)
	}
	return nil
}

// checkStability rejects lambda >= s*mu for infinite-capacity models.
func checkStability(lambda, mu float64, s int) error {
	rho := lambda / (float64(s) * mu)
	if rho >= 1 {
		return instabilityf(rho, 0, "unstable system: rho = %.6f >= 1 (lambda = %v, s*mu = %v)",
			rho, lambda, float64(s)*mu)
	}
	return nil
}

// checkClassRates validates a priority-class rate vector: non-empty with
// every rate non-negative. Stability is left to the engines' prefix
// recurrence: rates are non-negative, so the first prefix R_k at or above
// capacity is always found and the error can name the offending class,
// which an aggregate pre-flight cannot.
func checkClassRates(rates []float64) error {
	if len(rates) == 0 {
		return validationf("at least one priority class arrival rate is required")
	}
	for i, r := range rates {
		if r < 0 {
			return validationf("lambda_%d must be >= 0, got %v", i+1, r)
		}
	}
	return nil
}

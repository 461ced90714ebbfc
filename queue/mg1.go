package queue

// ServiceDistribution tags how the M/G/1 service-time variance is derived
// when it is not supplied directly.
type ServiceDistribution string

const (
	// DistPoisson assumes Var(S) = E[S].
	DistPoisson ServiceDistribution = "poisson"
	// DistExponential assumes Var(S) = E[S]^2, recovering M/M/1.
	DistExponential ServiceDistribution = "exponential"
	// DistDeterministic assumes Var(S) = 0, recovering M/D/1.
	DistDeterministic ServiceDistribution = "deterministic"
)

// MG1 solves the single-server M/G/1 queue via the Pollaczek-Khinchine
// formula, given the service-time variance:
//
//	E[S] = 1/mu    E[S^2] = variance + E[S]^2    rho = lambda*E[S]
//	Wq = lambda*E[S^2] / (2*(1-rho))    Lq = lambda*Wq
//
// The result also carries the service moments (MeanService, SecondMoment,
// Variance, SCV) used in the computation.
func MG1(lambda, mu, variance float64) (*Result, error) {
	if err := checkMu(mu); err != nil {
		return nil, err
	}
	if err := checkLambda(lambda); err != nil {
		return nil, err
	}
	if variance < 0 {
		return nil, validationf("service-time variance must be >= 0, got %v", variance)
	}

	meanService := 1.0 / mu
	secondMoment := variance + meanService*meanService
	scv := variance / (meanService * meanService)

	if lambda == 0 {
		return &Result{
			Rho:          0,
			P0:           1,
			W:            meanService,
			MeanService:  meanService,
			SecondMoment: secondMoment,
			Variance:     variance,
			SCV:          scv,
		}, nil
	}

	rho := lambda * meanService
	if err := checkStability(lambda, mu, 1); err != nil {
		return nil, err
	}

	wq := lambda * secondMoment / (2 * (1 - rho))
	lq := lambda * wq
	return &Result{
		Rho:          rho,
		P0:           1 - rho,
		L:            lq + rho,
		Lq:           lq,
		W:            wq + meanService,
		Wq:           wq,
		MeanService:  meanService,
		SecondMoment: secondMoment,
		Variance:     variance,
		SCV:          scv,
	}, nil
}

// MG1Dist solves the M/G/1 queue with the variance derived from a named
// service-time distribution tag.
func MG1Dist(lambda, mu float64, dist ServiceDistribution) (*Result, error) {
	if err := checkMu(mu); err != nil {
		return nil, err
	}
	meanService := 1.0 / mu
	var variance float64
	switch dist {
	case DistPoisson:
		variance = meanService
	case DistExponential:
		variance = meanService * meanService
	case DistDeterministic:
		variance = 0
	default:
		return nil, validationf("unknown service distribution %q", dist)
	}
	return MG1(lambda, mu, variance)
}

package queue

// MM1N solves the single-server finite-population model (machine-repair
// with one repair channel): birth rate (N-n)*lambda, death rate mu. It is
// the s = 1 case of the general birth-death product form in MMSN, where
// the state weights reduce to N!/(N-n)! * (lambda/mu)^n.
func MM1N(lambda, mu float64, n int, q *Query) (*Result, error) {
	return MMSN(lambda, mu, 1, n, q)
}

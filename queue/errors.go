package queue

import "fmt"

// ValidationError reports a malformed, missing or negative parameter.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DomainError reports a structurally invalid request: capacity or
// population smaller than the server count, a queried n outside the state
// space, or a negative t.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

func domainf(format string, args ...any) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// InstabilityError reports that a model's stability condition fails:
// aggregate utilization at or above 1, or a priority prefix whose
// cumulative rate reaches its local capacity. Class is the 1-based index
// of the offending priority class, or 0 for an aggregate rejection.
type InstabilityError struct {
	Rho   float64 // offending utilization
	Class int     // 1-based priority class, 0 = aggregate
	Msg   string
}

func (e *InstabilityError) Error() string { return e.Msg }

func instabilityf(rho float64, class int, format string, args ...any) error {
	return &InstabilityError{Rho: rho, Class: class, Msg: fmt.Sprintf(format, args...)}
}

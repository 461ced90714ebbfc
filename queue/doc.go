// Package queue computes steady-state performance metrics for Markovian
// and semi-Markovian queueing models.
//
// # Reading Guide
//
// Start with these three files to understand the analytic core:
//   - result.go: the Result and ClassMetrics records every model returns
//   - validate.go: parameter guards and stability checks run before any model
//   - combinatorics.go: the incremental power/factorial ratio helpers that
//     keep the closed forms numerically stable for large s, K and N
//
// # Models
//
// One pure function per model, named by queueing notation:
//   - MM1, MMS: infinite capacity, one or s servers
//   - MG1: general service time via Pollaczek-Khinchine (two moments)
//   - MM1K, MMSK: finite capacity K (the only family where rho >= 1 is legal)
//   - MM1N, MMSN: finite calling population N with state-dependent arrivals
//   - PriorityPreemptive, PriorityNonPreemptive: multi-class priority
//     variants over the M/M/1 and M/M/s substrates
//
// Every function is a pure mapping from its parameters to a *Result: no
// caches, no singletons, no retained state between calls. Identical inputs
// yield bit-for-bit identical outputs, so concurrent callers need no
// locking.
//
// # Errors
//
// Failures are returned, never encoded in a Result. See errors.go for the
// taxonomy: ValidationError (malformed parameter), DomainError (structural
// violation such as K < s), InstabilityError (utilization at or above
// capacity, with the offending priority class index when applicable).
package queue

package queue

import (
	"fmt"
	"math"
	"strings"
)

// Query selects optional probability outputs. Both fields are optional;
// a nil *Query asks for none of them.
type Query struct {
	N *int     // P(exactly N units in system)
	T *float64 // P(W > T) and P(Wq > T), where supported
}

// QueryN builds a query for the probability of exactly n in system.
func QueryN(n int) *Query { return &Query{N: &n} }

// QueryT builds a query for the waiting-time tail probabilities at t.
func QueryT(t float64) *Query { return &Query{T: &t} }

// ClassMetrics holds the steady-state metrics of a single priority class.
// Classes are reported in priority order, 1 = highest.
//
// L and Lq are the metrics of this class alone (L = lambda_k * W_k).
// LCumulative and LqCumulative are the metrics of the merged sub-stream of
// classes 1..k (R_k * W_k); some textbook answer keys report those instead,
// so both are populated.
type ClassMetrics struct {
	Priority     int     // 1-based priority index, 1 = highest
	Lambda       float64 // class arrival rate
	LambdaCum    float64 // cumulative rate R_k through this class
	Rho          float64 // class utilization lambda_k / (s*mu)
	W            float64 // mean time in system
	Wq           float64 // mean time in queue
	L            float64 // mean number in system, this class alone
	Lq           float64 // mean number in queue, this class alone
	LCumulative  float64 // mean number in system, classes 1..k merged
	LqCumulative float64 // mean number in queue, classes 1..k merged
	PWait        float64 // Erlang C waiting probability of the 1..k sub-stream
}

// Result is the steady-state metrics record returned by every model.
// Optional outputs are nil or zero unless the model populates them.
type Result struct {
	Rho float64 // utilization
	P0  float64 // probability of an empty system
	L   float64 // mean number in system
	Lq  float64 // mean number in queue
	W   float64 // mean time in system
	Wq  float64 // mean time in queue

	LambdaEff    float64 // effective arrival rate (finite-capacity/population models)
	PBlock       float64 // probability an arrival is lost, p_K (finite-capacity models)
	LOperational float64 // N - L, units outside the system (finite-population models)
	PIdleServer  float64 // P(at least one idle server) (M/M/s/N)

	// Service-time moments (M/G/1 only).
	MeanService  float64 // E[S] = 1/mu
	SecondMoment float64 // E[S^2]
	Variance     float64 // Var(S)
	SCV          float64 // squared coefficient of variation Var(S)/E[S]^2

	// Optional query outputs; nil unless requested.
	Pn     *float64 // P(exactly n in system)
	PWGtT  *float64 // P(W > t)
	PWqGtT *float64 // P(Wq > t)

	// Priority models only.
	LambdaTotal float64        // sum of class arrival rates
	Classes     []ClassMetrics // per-class metrics in priority order
}

// Round6 rounds x to 6 decimal places, the precision used for display and
// golden-output comparisons.
func Round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}

func (c ClassMetrics) String() string {
	return fmt.Sprintf("{k=%d, lambda=%.6f, rho=%.6f, W=%.6f, Wq=%.6f, L=%.6f, Lq=%.6f}",
		c.Priority, c.Lambda, c.Rho, c.W, c.Wq, c.L, c.Lq)
}

func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{rho=%.6f, p0=%.6f, L=%.6f, Lq=%.6f, W=%.6f, Wq=%.6f",
		r.Rho, r.P0, r.L, r.Lq, r.W, r.Wq)
	if r.Pn != nil {
		fmt.Fprintf(&b, ", pn=%.6f", *r.Pn)
	}
	if r.PWGtT != nil {
		fmt.Fprintf(&b, ", P(W>t)=%.6f", *r.PWGtT)
	}
	if r.PWqGtT != nil {
		fmt.Fprintf(&b, ", P(Wq>t)=%.6f", *r.PWqGtT)
	}
	if len(r.Classes) > 0 {
		fmt.Fprintf(&b, ", classes=%d", len(r.Classes))
	}
	b.WriteString("}")
	return b.String()
}

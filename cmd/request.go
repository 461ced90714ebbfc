package cmd

import (
	"fmt"
	"strings"

	queue "github.com/queuemath/queuemath/queue"
)

// ModelRequest is one model invocation, assembled either from CLI flags
// (solve) or from a scenario file entry (batch). Optional fields are
// pointers so "absent" and "zero" stay distinguishable in YAML.
type ModelRequest struct {
	Name       string    `yaml:"name"`                 // scenario label, optional
	Model      string    `yaml:"model"`                // mm1, mms, mg1, mm1k, mmsk, mm1n, mmsn, priority_preemptive, priority_non_preemptive
	Lambda     float64   `yaml:"lambda"`               // arrival rate (single-class models)
	ClassRates []float64 `yaml:"class_rates"`          // per-class arrival rates (priority models)
	Mu         float64   `yaml:"mu"`                   // service rate
	Servers    int       `yaml:"servers"`              // server count s (default 1)
	Capacity   int       `yaml:"capacity"`             // system capacity K (mm1k, mmsk)
	Population int       `yaml:"population"`           // calling population N (mm1n, mmsn)
	Variance   *float64  `yaml:"variance"`             // service-time variance (mg1)
	Dist       string    `yaml:"service_distribution"` // mg1 variance tag when variance absent
	N          *int      `yaml:"n"`                    // optional P(n in system) query
	T          *float64  `yaml:"t"`                    // optional P(W>t)/P(Wq>t) query
}

// query assembles the optional probability query, nil when neither field
// was given.
func (r *ModelRequest) query() *queue.Query {
	if r.N == nil && r.T == nil {
		return nil
	}
	return &queue.Query{N: r.N, T: r.T}
}

// Run dispatches the request to the matching model function.
func (r *ModelRequest) Run() (*queue.Result, error) {
	s := r.Servers
	if s == 0 {
		s = 1
	}
	model := strings.ReplaceAll(strings.ToLower(r.Model), "-", "_")
	switch model {
	case "mm1":
		return queue.MM1(r.Lambda, r.Mu, r.query())
	case "mms":
		return queue.MMS(r.Lambda, r.Mu, s, r.query())
	case "mg1":
		if r.Variance != nil {
			return queue.MG1(r.Lambda, r.Mu, *r.Variance)
		}
		return queue.MG1Dist(r.Lambda, r.Mu, queue.ServiceDistribution(r.Dist))
	case "mm1k":
		return queue.MM1K(r.Lambda, r.Mu, r.Capacity, r.query())
	case "mmsk":
		return queue.MMSK(r.Lambda, r.Mu, s, r.Capacity, r.query())
	case "mm1n":
		return queue.MM1N(r.Lambda, r.Mu, r.Population, r.query())
	case "mmsn":
		return queue.MMSN(r.Lambda, r.Mu, s, r.Population, r.query())
	case "priority_preemptive":
		return queue.PriorityPreemptive(r.ClassRates, r.Mu, s)
	case "priority_non_preemptive":
		return queue.PriorityNonPreemptive(r.ClassRates, r.Mu, s)
	default:
		return nil, fmt.Errorf("unknown model %q", r.Model)
	}
}

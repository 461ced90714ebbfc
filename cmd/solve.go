package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags mirroring ModelRequest
	model      string    // model name in queueing notation
	lambda     float64   // arrival rate
	classRates []float64 // per-class arrival rates for priority models
	mu         float64   // service rate
	servers    int       // server count s
	capacityK  int       // system capacity K
	population int       // calling population N
	variance   float64   // mg1 service-time variance
	dist       string    // mg1 service distribution tag
	queryN     int       // state probability query, -1 = off
	queryT     float64   // waiting-time tail query, negative = off
)

// solveCmd runs a single model from CLI flags
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one queueing model from flags",
	Run: func(cmd *cobra.Command, args []string) {
		req := &ModelRequest{
			Model:      model,
			Lambda:     lambda,
			ClassRates: classRates,
			Mu:         mu,
			Servers:    servers,
			Capacity:   capacityK,
			Population: population,
			Dist:       dist,
		}
		if cmd.Flags().Changed("variance") {
			req.Variance = &variance
		}
		if queryN >= 0 {
			req.N = &queryN
		}
		if queryT >= 0 {
			req.T = &queryT
		}

		logrus.Debugf("solving %s with lambda=%v mu=%v s=%v", model, lambda, mu, servers)
		res, err := req.Run()
		if err != nil {
			logrus.Fatalf("%s: %v", model, err)
		}
		printResult(os.Stdout, "", res)
	},
}

func init() {
	solveCmd.Flags().StringVar(&model, "model", "mm1",
		"Model: mm1, mms, mg1, mm1k, mmsk, mm1n, mmsn, priority_preemptive, priority_non_preemptive")
	solveCmd.Flags().Float64Var(&lambda, "lambda", 0, "Arrival rate")
	solveCmd.Flags().Float64SliceVar(&classRates, "class-rates", nil,
		"Comma-separated per-class arrival rates, highest priority first")
	solveCmd.Flags().Float64Var(&mu, "mu", 1, "Service rate per server")
	solveCmd.Flags().IntVar(&servers, "servers", 1, "Number of servers s")
	solveCmd.Flags().IntVar(&capacityK, "capacity", 0, "System capacity K (mm1k, mmsk)")
	solveCmd.Flags().IntVar(&population, "population", 0, "Calling population N (mm1n, mmsn)")
	solveCmd.Flags().Float64Var(&variance, "variance", 0, "Service-time variance (mg1)")
	solveCmd.Flags().StringVar(&dist, "service-distribution", "exponential",
		"mg1 variance tag when --variance is absent: poisson, exponential, deterministic")
	solveCmd.Flags().IntVar(&queryN, "n", -1, "Report P(exactly n in system)")
	solveCmd.Flags().Float64Var(&queryT, "t", -1, "Report P(W>t) and P(Wq>t)")

	rootCmd.AddCommand(solveCmd)
}

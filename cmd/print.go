package cmd

import (
	"fmt"
	"io"

	queue "github.com/queuemath/queuemath/queue"
)

// printResult writes a result record with every value rounded to 6
// decimal places, the fixed display precision.
func printResult(w io.Writer, label string, res *queue.Result) {
	if label != "" {
		fmt.Fprintf(w, "=== %s ===\n", label)
	}
	fmt.Fprintf(w, "rho  = %.6f\n", queue.Round6(res.Rho))
	fmt.Fprintf(w, "p0   = %.6f\n", queue.Round6(res.P0))
	fmt.Fprintf(w, "L    = %.6f\n", queue.Round6(res.L))
	fmt.Fprintf(w, "Lq   = %.6f\n", queue.Round6(res.Lq))
	fmt.Fprintf(w, "W    = %.6f\n", queue.Round6(res.W))
	fmt.Fprintf(w, "Wq   = %.6f\n", queue.Round6(res.Wq))

	if res.LambdaEff != 0 {
		fmt.Fprintf(w, "lambda_eff = %.6f\n", queue.Round6(res.LambdaEff))
	}
	if res.PBlock != 0 {
		fmt.Fprintf(w, "p_block    = %.6f\n", queue.Round6(res.PBlock))
	}
	if res.LOperational != 0 {
		fmt.Fprintf(w, "L_operational = %.6f\n", queue.Round6(res.LOperational))
	}
	if res.PIdleServer != 0 {
		fmt.Fprintf(w, "P(idle server) = %.6f\n", queue.Round6(res.PIdleServer))
	}
	if res.Pn != nil {
		fmt.Fprintf(w, "p_n    = %.6f\n", queue.Round6(*res.Pn))
	}
	if res.PWGtT != nil {
		fmt.Fprintf(w, "P(W>t)  = %.6f\n", queue.Round6(*res.PWGtT))
	}
	if res.PWqGtT != nil {
		fmt.Fprintf(w, "P(Wq>t) = %.6f\n", queue.Round6(*res.PWqGtT))
	}

	for _, c := range res.Classes {
		fmt.Fprintf(w, "class %d: lambda=%.6f W=%.6f Wq=%.6f L=%.6f Lq=%.6f\n",
			c.Priority, queue.Round6(c.Lambda), queue.Round6(c.W),
			queue.Round6(c.Wq), queue.Round6(c.L), queue.Round6(c.Lq))
	}
}

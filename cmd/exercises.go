package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// workedExercises are the canned textbook cases used as a smoke check of
// the whole engine; the expected answers live in the package tests.
func workedExercises() []ModelRequest {
	variance := 16.0
	return []ModelRequest{
		{Name: "Ex. 5  - loading dock (M/M/1)", Model: "mm1", Lambda: 3, Mu: 4},
		{Name: "Ex. 7  - clinic, 1 doctor (M/M/1)", Model: "mm1", Lambda: 2, Mu: 3},
		{Name: "Ex. 7  - clinic, 2 doctors (M/M/s)", Model: "mms", Lambda: 2, Mu: 3, Servers: 2},
		{Name: "Ex. 15 - toll booths (M/M/s)", Model: "mms", Lambda: 2, Mu: 1, Servers: 4},
		{Name: "Ex. 2  - parking lot (M/M/1/K)", Model: "mm1k", Lambda: 2, Mu: 4, Capacity: 5},
		{Name: "Ex. 4  - repair shop (M/G/1)", Model: "mg1", Lambda: 0.2, Mu: 0.25, Variance: &variance},
		{Name: "Ex. 9  - machine pool (M/M/s/N)", Model: "mmsn", Lambda: 0.5, Mu: 2, Servers: 3, Population: 10},
		{Name: "Ex. 11 - job classes, preemptive", Model: "priority_preemptive",
			ClassRates: []float64{2, 4, 2}, Mu: 10, Servers: 1},
		{Name: "Ex. 11 - job classes, head-of-line", Model: "priority_non_preemptive",
			ClassRates: []float64{2, 4, 2}, Mu: 10, Servers: 1},
	}
}

// exercisesCmd runs the canned worked reference cases
var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Run the canned worked reference cases",
	Run: func(cmd *cobra.Command, args []string) {
		for _, req := range workedExercises() {
			res, err := req.Run()
			if err != nil {
				logrus.Fatalf("%s: %v", req.Name, err)
			}
			printResult(os.Stdout, req.Name, res)
		}
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
}

package queue_test

import (
	"fmt"

	"github.com/queuemath/queuemath/queue"
)

func ExampleMM1() {
	res, err := queue.MM1(3, 4, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("L=%.6f Lq=%.6f W=%.6f Wq=%.6f\n", res.L, res.Lq, res.W, res.Wq)
	// Output: L=3.000000 Lq=2.250000 W=1.000000 Wq=0.750000
}

func ExamplePriorityPreemptive() {
	res, err := queue.PriorityPreemptive([]float64{2, 4, 2}, 10, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range res.Classes {
		fmt.Printf("class %d: W=%.6f\n", c.Priority, c.W)
	}
	// Output:
	// class 1: W=0.125000
	// class 2: W=0.312500
	// class 3: W=1.250000
}

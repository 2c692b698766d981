package sim_test

import (
	"fmt"

	"github.com/inference-sim/mixology-sim/sim"
)

func ExampleEvaluate() {
	orders := []sim.Order{
		sim.NewOrder(sim.MMM, sim.MMM, sim.MMM),
		sim.NewOrder(sim.MAL, sim.AAA, sim.MAL),
	}
	for _, s := range []sim.Strategy{sim.CompleteAll{}, sim.BestUnlessSpecial{}} {
		totals, err := sim.Evaluate(orders, s)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s\n  in:  %s\n  out: %s\n", s.Name(), totals.Input, totals.Output)
	}
	// Output:
	// complete-all
	//   in:  M: 110, A: 50, L: 20
	//   out: M: 140, A: 84, L: 56
	// best-unless-mal
	//   in:  M: 50, A: 20, L: 20
	//   out: M: 68, A: 48, L: 48
}

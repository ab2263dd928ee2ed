package equilibrium_test

import (
	"fmt"

	"github.com/mtod92/equpy/equilibrium"
)

// ExampleSystemFromEquations parses a tiny association equilibrium and
// shows the deterministic lexicographic column order.
func ExampleSystemFromEquations() {
	sys, err := equilibrium.SystemFromEquations(
		[]string{"A+B=C"}, // A and B associate into C
		[]string{"A+C", "B+C"},
	)
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	fmt.Println("species:", sys.Species().Names())
	fmt.Println("strategy:", sys.Strategy())
	// Output:
	// species: [A B C]
	// strategy: exact
}

// ExampleSession_Solve computes the symmetric two-species equilibrium
// A = B with K = 1 and total mass 2: the analytic answer is one unit of
// each.
func ExampleSession_Solve() {
	sys, err := equilibrium.SystemFromEquations([]string{"A=B"}, []string{"A+B"})
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}
	ses, err := equilibrium.NewSession(sys, []float64{1}, []float64{2})
	if err != nil {
		fmt.Println("session failed:", err)

		return
	}

	res, err := ses.Solve(50, 1e6, 0)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	for i, name := range sys.Species().Names() {
		fmt.Printf("%s = %.2f\n", name, res.Concentrations[i])
	}
	// Output:
	// A = 1.00
	// B = 1.00
}

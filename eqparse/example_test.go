package eqparse_test

import (
	"fmt"

	"github.com/mtod92/equpy/eqparse"
)

// ExampleBuild parses a proton/ligand association and shows how terms
// land in the matrices: lexicographic columns, reactants negative,
// products positive, conservation coefficients as written.
func ExampleBuild() {
	n, c, reg, err := eqparse.Build(
		[]string{"2H+L=H2L"},
		[]string{"2*H2L + H", "L + H2L"},
	)
	if err != nil {
		fmt.Println("parse failed:", err)

		return
	}

	fmt.Println("species:", reg.Names())
	rows, cols := n.Dims()
	fmt.Printf("N is %dx%d, H column: %g\n", rows, cols, n.At(0, 0))
	fmt.Printf("first law H2L coefficient: %g\n", c.At(0, 1))
	// Output:
	// species: [H H2L L]
	// N is 1x3, H column: -2
	// first law H2L coefficient: 2
}

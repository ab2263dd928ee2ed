// Package equilibrium computes equilibrium concentrations for systems of
// reversible reactions constrained by mass-conservation laws.
//
// A System bundles the immutable problem description: a stoichiometric
// matrix N (#reactions × #species, signed coefficients), a conservation
// matrix C (#laws × #species, non-negative coefficients) and an optional
// species registry naming the columns. A Session adds the equilibrium
// constants K and total masses S and owns the iterative solve.
//
// The solve is a damped fixed-point iteration in log-concentration space.
// Each step:
//
//  1. Scales every conservation row by the current concentrations and
//     normalizes it, producing row-stochastic weights W.
//  2. Folds the total masses into effective constants
//     Ks[r] = S[r] · Π_j (W[r,j]/C[r,j])^W[r,j].
//  3. Stacks M = [N; W], takes y = log(K ++ Ks), and records the residual
//     ‖M·x − y‖₂ of the incoming iterate.
//  4. Solves M·x' = y — exactly (LU) when M is square, by SVD
//     pseudo-inverse (minimum-norm least squares) otherwise — and blends
//     x' with the previous iterate under the relaxation weight.
//
// Iteration stops once residual < tolerance × ‖x‖₂ × 2.2e-16, i.e. the
// tolerance counts multiples of the floating-point precision floor.
// Hitting the iteration cap is not an error: the best-available result is
// returned together with a NonConvergence warning, and judging it is the
// caller's responsibility.
//
// Session lifecycle: Initialized → Iterating → Converged | Exhausted.
// Warnings (zero-mass substitutions, non-convergence) are ordinary values
// on the Result and the Session; an injected slog.Logger additionally
// mirrors them as structured log output.
//
// Errors (sentinel):
//
//	– ErrNilSystem         nil system at session construction
//	– ErrNilMatrix         nil matrix at system construction
//	– ErrDimensionMismatch shapes/lengths disagree on a species count
//	– ErrEmptyConservation a conservation row with no non-zero entry
//	– ErrBadSolveParam     solve parameter outside its domain
//	– ErrSingularSystem    exact path hit a singular combined matrix
//
// Example:
//
//	sys, err := equilibrium.SystemFromEquations(
//	    []string{"A=B"},
//	    []string{"A+B"},
//	)
//	if err != nil { ... }
//	ses, err := equilibrium.NewSession(sys, []float64{1}, []float64{2})
//	if err != nil { ... }
//	res, err := ses.Solve(100, 1e4, 1)
//	if err != nil { ... }
//	fmt.Println(res.Concentrations) // ≈ [1 1]
package equilibrium

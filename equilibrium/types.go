package equilibrium

// Strategy names the linear-solve path used inside every solver step. It
// is derived once per Solve call from the shape of the combined system and
// never recomputed mid-iteration.
type Strategy int

const (
	// ExactSolve is used when the combined matrix is square
	// (#species == #reactions + #conservation laws): an LU solve that
	// fails hard with ErrSingularSystem on a singular matrix.
	ExactSolve Strategy = iota
	// MinimumNormSolve is used for non-square systems: an SVD
	// pseudo-inverse yielding the least-squares solution of minimum norm.
	// Rank deficiency degrades gracefully instead of failing.
	MinimumNormSolve
)

// String returns a short human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case ExactSolve:
		return "exact"
	case MinimumNormSolve:
		return "minimum-norm"
	default:
		return "unknown"
	}
}

// State is the lifecycle position of a Session.
type State int

const (
	// Initialized: constructed, no solve has completed yet.
	Initialized State = iota
	// Iterating: a solve call is in progress and owns the working state.
	Iterating
	// Converged: the latest solve met its tolerance.
	Converged
	// Exhausted: the latest solve hit its iteration cap without meeting
	// the tolerance; a best-effort result is still available.
	Exhausted
)

// String returns a short human-readable state name.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// WarningKind classifies non-fatal diagnostics.
type WarningKind int

const (
	// DegenerateMass: a zero total mass was replaced with a tiny positive
	// epsilon at session construction.
	DegenerateMass WarningKind = iota
	// NonConvergence: the iteration cap was reached before the tolerance;
	// the returned result is the best available, not a converged one.
	NonConvergence
)

// String returns a short human-readable kind name.
func (k WarningKind) String() string {
	switch k {
	case DegenerateMass:
		return "degenerate-mass"
	case NonConvergence:
		return "non-convergence"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal diagnostic carried alongside results. Warnings
// are ordinary values: they are never routed through global state, and
// ignoring them is the caller's deliberate choice.
type Warning struct {
	Kind    WarningKind
	Message string
}

// Result bundles everything one Solve call produces: the concentration
// vector (linear space, one entry per species index), the full residual
// history (one entry per solver step), any warnings in effect, and the
// terminal state and solve strategy. All slices are private copies.
type Result struct {
	Concentrations []float64
	Residuals      []float64
	Warnings       []Warning
	State          State
	Strategy       Strategy
}

package equilibrium

import "errors"

var (
	// ErrNilSystem indicates a nil *System passed to session construction.
	ErrNilSystem = errors.New("equilibrium: system is nil")
	// ErrNilMatrix indicates a nil matrix passed to system construction.
	ErrNilMatrix = errors.New("equilibrium: stoichiometric and conservation matrices must be non-nil")
	// ErrDimensionMismatch indicates matrix shapes, registry size, or
	// constant/mass lengths that do not agree on a common species count.
	ErrDimensionMismatch = errors.New("equilibrium: dimension mismatch")
	// ErrEmptyConservation indicates a conservation row with no non-zero
	// coefficient; such a row constrains nothing and cannot be normalized.
	ErrEmptyConservation = errors.New("equilibrium: conservation row has no non-zero coefficient")
	// ErrBadSolveParam indicates solve parameters outside their domain:
	// iterations < 1, tolerance <= 0, or a negative relaxation weight.
	ErrBadSolveParam = errors.New("equilibrium: invalid solve parameter")
	// ErrSingularSystem indicates the combined matrix could not be solved
	// on the exact path (singular or numerically unsolvable). The
	// minimum-norm path never returns it for mere rank deficiency.
	ErrSingularSystem = errors.New("equilibrium: combined system is singular")
)

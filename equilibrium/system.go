package equilibrium

import (
	"fmt"

	"github.com/mtod92/equpy/eqparse"
	"github.com/mtod92/equpy/species"
	"gonum.org/v1/gonum/mat"
)

// System is the immutable description of an equilibrium problem: a
// stoichiometric matrix (#reactions × #species, signed coefficients), a
// conservation matrix (#laws × #species, non-negative coefficients) and an
// optional species registry naming the columns. Once built, a System never
// changes and may safely back any number of concurrent sessions.
type System struct {
	stoich  *mat.Dense
	conserv *mat.Dense
	reg     *species.Registry // nil: species identified by bare indices

	nReactions int
	nLaws      int
	nSpecies   int
}

// NewSystem validates and deep-copies the given matrices. The registry is
// optional; when nil, species are addressed purely by column index.
//
// Returns ErrNilMatrix for nil inputs, ErrDimensionMismatch when the two
// matrices (or the registry) disagree on the species count, and
// ErrEmptyConservation when a conservation row has no non-zero entry.
// Complexity: O(rows × columns).
func NewSystem(stoich, conserv *mat.Dense, reg *species.Registry) (*System, error) {
	if stoich == nil || conserv == nil {
		return nil, ErrNilMatrix
	}
	nReactions, nSpecies := stoich.Dims()
	nLaws, cols := conserv.Dims()
	if cols != nSpecies {
		return nil, fmt.Errorf("%w: stoichiometric matrix has %d species columns, conservation matrix has %d",
			ErrDimensionMismatch, nSpecies, cols)
	}
	if reg != nil && reg.Len() != nSpecies {
		return nil, fmt.Errorf("%w: matrices have %d species columns, registry has %d names",
			ErrDimensionMismatch, nSpecies, reg.Len())
	}
	for r := 0; r < nLaws; r++ {
		empty := true
		for j := 0; j < nSpecies && empty; j++ {
			empty = conserv.At(r, j) == 0
		}
		if empty {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyConservation, r)
		}
	}

	sys := &System{
		stoich:     &mat.Dense{},
		conserv:    &mat.Dense{},
		reg:        reg,
		nReactions: nReactions,
		nLaws:      nLaws,
		nSpecies:   nSpecies,
	}
	// Deep copies detach the system from caller-held matrices.
	sys.stoich.CloneFrom(stoich)
	sys.conserv.CloneFrom(conserv)

	return sys, nil
}

// SystemFromEquations parses reaction and conservation text (see package
// eqparse for the grammar) and builds the corresponding System. Species
// columns follow the lexicographic registry order produced by discovery.
func SystemFromEquations(reactions, conservations []string) (*System, error) {
	stoich, conserv, reg, err := eqparse.Build(reactions, conservations)
	if err != nil {
		return nil, err
	}

	return NewSystem(stoich, conserv, reg)
}

// NumSpecies returns the species (column) count.
func (sys *System) NumSpecies() int { return sys.nSpecies }

// NumReactions returns the reaction (stoichiometric row) count.
func (sys *System) NumReactions() int { return sys.nReactions }

// NumConservations returns the conservation-law row count.
func (sys *System) NumConservations() int { return sys.nLaws }

// Species returns the registry naming the columns, or nil when the system
// was built without one.
func (sys *System) Species() *species.Registry { return sys.reg }

// Stoichiometry returns a deep copy of the stoichiometric matrix.
func (sys *System) Stoichiometry() *mat.Dense {
	out := &mat.Dense{}
	out.CloneFrom(sys.stoich)

	return out
}

// Conservation returns a deep copy of the conservation matrix.
func (sys *System) Conservation() *mat.Dense {
	out := &mat.Dense{}
	out.CloneFrom(sys.conserv)

	return out
}

// Strategy reports which linear-solve path every step of a Solve call on
// this system will take: ExactSolve when the stacked reaction and
// conservation rows form a square matrix, MinimumNormSolve otherwise. The
// asymmetry is deliberate and preserved: the exact path hard-fails on a
// singular matrix while the minimum-norm path degrades gracefully.
func (sys *System) Strategy() Strategy {
	if sys.nSpecies == sys.nReactions+sys.nLaws {
		return ExactSolve
	}

	return MinimumNormSolve
}

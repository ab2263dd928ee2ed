package eqparse_test

import (
	"errors"
	"testing"

	"github.com/mtod92/equpy/eqparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestBuild_RoundTrip verifies the canonical small system: species columns
// come out lexicographic, left-side terms negative, right-side positive,
// and conservation rows cover exactly the mentioned species.
func TestBuild_RoundTrip(t *testing.T) {
	n, c, reg, err := eqparse.Build([]string{"A+B=C"}, []string{"A+C"})
	require.NoError(t, err, "well-formed input must parse")

	assert.Equal(t, []string{"A", "B", "C"}, reg.Names(), "columns ordered lexicographically")

	wantN := mat.NewDense(1, 3, []float64{-1, -1, 1})
	assert.True(t, mat.Equal(wantN, n), "stoichiometry: A and B consumed, C produced; got %v", mat.Formatted(n))

	wantC := mat.NewDense(1, 3, []float64{1, 0, 1})
	assert.True(t, mat.Equal(wantC, c), "conservation covers A and C only; got %v", mat.Formatted(c))
}

// TestBuild_Coefficients covers integer reaction coefficients, names with
// interior digits, and decimal conservation coefficients with the optional
// "*" separator.
func TestBuild_Coefficients(t *testing.T) {
	n, c, reg, err := eqparse.Build(
		[]string{"2H+L=H2L"},
		[]string{"0.5*H + 2L", "H2L"},
	)
	require.NoError(t, err)

	// Lexicographic: H < H2L < L.
	require.Equal(t, []string{"H", "H2L", "L"}, reg.Names())

	wantN := mat.NewDense(1, 3, []float64{-2, 1, -1})
	assert.True(t, mat.Equal(wantN, n), "leading digit run is the coefficient; got %v", mat.Formatted(n))

	wantC := mat.NewDense(2, 3, []float64{
		0.5, 0, 2,
		0, 1, 0,
	})
	assert.True(t, mat.Equal(wantC, c), "decimal and starred coefficients; got %v", mat.Formatted(c))
}

// TestBuild_Deterministic verifies that identical text yields identical
// matrices and registries across calls.
func TestBuild_Deterministic(t *testing.T) {
	reactions := []string{"M+L=ML", "ML+L=ML2"}
	laws := []string{"M+ML+ML2", "L+ML+2ML2"}

	n1, c1, reg1, err := eqparse.Build(reactions, laws)
	require.NoError(t, err)
	n2, c2, reg2, err := eqparse.Build(reactions, laws)
	require.NoError(t, err)

	assert.Equal(t, reg1.Names(), reg2.Names(), "registry order is reproducible")
	assert.True(t, mat.Equal(n1, n2), "stoichiometric matrix is reproducible")
	assert.True(t, mat.Equal(c1, c2), "conservation matrix is reproducible")
}

// TestReactions_MalformedEquation rejects reactions without exactly one "=".
func TestReactions_MalformedEquation(t *testing.T) {
	for _, bad := range []string{"A+B", "A=B=C"} {
		_, _, _, err := eqparse.Build([]string{bad}, []string{"A"})
		assert.ErrorIs(t, err, eqparse.ErrMalformedReaction, "reaction %q must be rejected", bad)
	}
}

// TestBuild_BadTerms rejects tokens that are not (coefficient, species):
// empty terms, all-digit terms, zero coefficients, embedded whitespace.
func TestBuild_BadTerms(t *testing.T) {
	for _, bad := range []string{"A++B=C", "2=B", "A=3", "0A=B", "A B=C"} {
		_, _, _, err := eqparse.Build([]string{bad}, []string{"A"})
		assert.ErrorIs(t, err, eqparse.ErrBadTerm, "reaction %q must be rejected", bad)
	}

	_, _, _, err := eqparse.Build([]string{"A=B"}, []string{"1.2.3A"})
	assert.ErrorIs(t, err, eqparse.ErrBadTerm, "unparsable decimal coefficient must be rejected")
}

// TestConservations_UnknownSpecies rejects laws naming species absent from
// the reactions.
func TestConservations_UnknownSpecies(t *testing.T) {
	_, _, _, err := eqparse.Build([]string{"A=B"}, []string{"A+Z"})
	assert.ErrorIs(t, err, eqparse.ErrUnknownSpecies, "Z never appears in a reaction")

	var terr *eqparse.TermError
	require.ErrorAs(t, err, &terr, "context must travel with the failure")
	assert.Equal(t, "Z", terr.Term)
	assert.Equal(t, "A+Z", terr.Input)
	assert.Equal(t, 0, terr.Index)
}

// TestParse_EmptyInputs covers the list-level sentinels.
func TestParse_EmptyInputs(t *testing.T) {
	_, err := eqparse.Species(nil)
	assert.ErrorIs(t, err, eqparse.ErrNoReactions)

	_, _, _, err = eqparse.Build([]string{"A=B"}, nil)
	assert.ErrorIs(t, err, eqparse.ErrNoConservations)

	_, err = eqparse.Reactions([]string{"A=B"}, nil)
	assert.ErrorIs(t, err, eqparse.ErrNilRegistry)

	_, err = eqparse.Conservations([]string{"A"}, nil)
	assert.ErrorIs(t, err, eqparse.ErrNilRegistry)
}

// TestReactions_DuplicateTermKeepsLast documents the assignment semantics:
// a species repeated on one side is not accumulated, the last term wins.
func TestReactions_DuplicateTermKeepsLast(t *testing.T) {
	n, _, reg, err := eqparse.Build([]string{"A+2A=B"}, []string{"A+B"})
	require.NoError(t, err)

	col, ok := reg.IndexOf("A")
	require.True(t, ok)
	assert.Equal(t, -2.0, n.At(0, col), "the later term 2A overwrites the earlier A")
}

// TestTermError_Message checks the rendered failure keeps the sentinel
// prefix plus the offending line.
func TestTermError_Message(t *testing.T) {
	_, _, _, err := eqparse.Build([]string{"A+=B"}, []string{"A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, eqparse.ErrBadTerm)
	assert.Contains(t, err.Error(), `"A+=B"`, "message names the offending line")

	var terr *eqparse.TermError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, eqparse.ErrBadTerm, terr.Err)
}

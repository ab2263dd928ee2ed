package csvload_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mtod92/equpy/csvload"
	"github.com/mtod92/equpy/equilibrium"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	reactionCSV     = "L,M,ML,K\n-1,-1,1,1000\n"
	conservationCSV = "L,M,ML,S\n1,0,1,0.003\n0,1,1,0.001\n"
)

// TestRead_WellFormed parses the in-memory two-file format and checks
// every piece lands where it should.
func TestRead_WellFormed(t *testing.T) {
	data, err := csvload.Read(strings.NewReader(reactionCSV), strings.NewReader(conservationCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"L", "M", "ML"}, data.Species, "species come from the reaction header")
	assert.True(t, mat.Equal(mat.NewDense(1, 3, []float64{-1, -1, 1}), data.Stoichiometry),
		"coefficients without the trailing K column")
	assert.Equal(t, []float64{1000}, data.Constants, "K is the last reaction column")
	assert.True(t, mat.Equal(mat.NewDense(2, 3, []float64{1, 0, 1, 0, 1, 1}), data.Conservation))
	assert.Equal(t, []float64{0.003, 0.001}, data.Masses, "S is the last conservation column")
}

// TestLoad_Files runs the full pipeline from testdata to a completed
// solve: load, adapt into a session, iterate.
func TestLoad_Files(t *testing.T) {
	data, err := csvload.Load(
		filepath.Join("testdata", "reactions.csv"),
		filepath.Join("testdata", "conservations.csv"),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"L", "M", "ML", "ML2"}, data.Species)

	ses, err := data.Session()
	require.NoError(t, err, "loaded data must adapt into a session")
	assert.Equal(t, equilibrium.ExactSolve, ses.System().Strategy(), "4 species, 2+2 rows")

	res, err := ses.Solve(300, 1e6, 2)
	require.NoError(t, err)
	assert.Len(t, res.Concentrations, 4)
}

// TestRead_StripsBOM handles spreadsheet exports that prepend a UTF-8
// byte-order mark to the first header cell.
func TestRead_StripsBOM(t *testing.T) {
	data, err := csvload.Read(
		strings.NewReader("\uFEFF"+reactionCSV),
		strings.NewReader(conservationCSV),
	)
	require.NoError(t, err)
	assert.Equal(t, "L", data.Species[0], "BOM must not become part of the first species name")
}

// TestRead_FormatErrors covers the malformed-input taxonomy.
func TestRead_FormatErrors(t *testing.T) {
	ok := strings.NewReader // shorthand for fresh conservation readers below

	_, err := csvload.Read(strings.NewReader("L,M,ML,K\n-1,-1,1\n"), ok(conservationCSV))
	assert.ErrorIs(t, err, csvload.ErrRaggedRow, "short data row")

	_, err = csvload.Read(strings.NewReader("L,M,ML,K\n-1,-1,x,1000\n"), ok(conservationCSV))
	assert.ErrorIs(t, err, csvload.ErrBadNumber, "non-numeric cell")
	assert.Contains(t, err.Error(), "row 2", "failure is located for the user")

	_, err = csvload.Read(strings.NewReader("L,M,ML,K\n"), ok(conservationCSV))
	assert.ErrorIs(t, err, csvload.ErrEmptyFile, "header without data rows")

	_, err = csvload.Read(strings.NewReader(""), ok(conservationCSV))
	assert.ErrorIs(t, err, csvload.ErrEmptyFile, "empty reader")

	_, err = csvload.Read(strings.NewReader(reactionCSV), ok("L,M,ML,Extra,S\n1,0,1,1,0.003\n"))
	assert.ErrorIs(t, err, csvload.ErrShapeMismatch, "files disagree on species columns")
}

// TestData_SessionValidation: file-level parsing can succeed while the
// adapted matrices still fail equilibrium validation; the sentinel must
// come through unchanged.
func TestData_SessionValidation(t *testing.T) {
	// Conservation row of zeros constrains nothing.
	data, err := csvload.Read(
		strings.NewReader(reactionCSV),
		strings.NewReader("L,M,ML,S\n0,0,0,0.001\n"),
	)
	require.NoError(t, err, "format-level parse succeeds")

	_, err = data.System()
	assert.ErrorIs(t, err, equilibrium.ErrEmptyConservation)
}

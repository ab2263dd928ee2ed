// Package csvload reads equilibrium problems from tabular files, as an
// alternative to reaction text (package eqparse) and direct matrix
// construction.
//
// Two CSV files describe one problem. The reaction file holds the
// stoichiometric coefficients with the equilibrium constant K in the last
// column; its header names the species columns (the last header cell
// labels the constants column and is ignored). The conservation file has
// the same species columns with the total mass S in the last column:
//
//	reactions.csv                 conservations.csv
//	L,M,ML,ML2,K                  L,M,ML,ML2,S
//	-1,-1,1,0,1000                0,1,1,1,0.001
//	-1,0,-1,1,100                 1,0,1,2,0.003
//
// A UTF-8 byte-order mark on the first header cell (common in
// spreadsheet exports) is stripped. The loaded Data adapts directly into
// the equilibrium package via Data.System and Data.Session.
package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mtod92/equpy/equilibrium"
	"github.com/mtod92/equpy/species"
	"gonum.org/v1/gonum/mat"
)

// Data is a fully parsed equilibrium problem: the two matrices, their
// right-hand values, and the species names taken from the reaction file
// header (index order matches the matrix columns).
type Data struct {
	Stoichiometry *mat.Dense
	Conservation  *mat.Dense
	Constants     []float64 // K, one per reaction row
	Masses        []float64 // S, one per conservation row
	Species       []string
}

// Load reads and parses both files. See the package documentation for the
// format. Returns ErrEmptyFile, ErrRaggedRow, ErrBadNumber or
// ErrShapeMismatch, plus wrapped I/O failures.
func Load(reactionPath, conservationPath string) (*Data, error) {
	rf, err := os.Open(reactionPath)
	if err != nil {
		return nil, fmt.Errorf("csvload: %w", err)
	}
	defer rf.Close()

	cf, err := os.Open(conservationPath)
	if err != nil {
		return nil, fmt.Errorf("csvload: %w", err)
	}
	defer cf.Close()

	return Read(rf, cf)
}

// Read is the stream-level form of Load.
func Read(reactions, conservations io.Reader) (*Data, error) {
	stoich, constants, names, err := readBlock(reactions)
	if err != nil {
		return nil, err
	}
	conserv, masses, _, err := readBlock(conservations)
	if err != nil {
		return nil, err
	}
	_, rCols := stoich.Dims()
	_, cCols := conserv.Dims()
	if rCols != cCols {
		return nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, rCols, cCols)
	}

	return &Data{
		Stoichiometry: stoich,
		Conservation:  conserv,
		Constants:     constants,
		Masses:        masses,
		Species:       names,
	}, nil
}

// System builds the immutable equilibrium system, registering the header
// names as species.
func (d *Data) System() (*equilibrium.System, error) {
	reg, err := species.New(d.Species)
	if err != nil {
		return nil, err
	}

	return equilibrium.NewSystem(d.Stoichiometry, d.Conservation, reg)
}

// Session builds a ready-to-solve session over System with the loaded
// constants and masses.
func (d *Data) Session(opts ...equilibrium.Option) (*equilibrium.Session, error) {
	sys, err := d.System()
	if err != nil {
		return nil, err
	}

	return equilibrium.NewSession(sys, d.Constants, d.Masses, opts...)
}

// readBlock parses one file: coefficient matrix, last-column values, and
// the header's species names.
func readBlock(r io.Reader) (*mat.Dense, []float64, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, nil, nil, fmt.Errorf("%w: %v", ErrRaggedRow, err)
		}

		return nil, nil, nil, fmt.Errorf("csvload: %w", err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, nil, nil, ErrEmptyFile
	}

	header := records[0]
	// Spreadsheet exports often prepend a BOM to the first cell.
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	cols := len(header) - 1
	rows := len(records) - 1

	m := mat.NewDense(rows, cols, nil)
	values := make([]float64, rows)
	for i, record := range records[1:] {
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%w: row %d, column %d: %q", ErrBadNumber, i+2, j+1, cell)
			}
			if j == cols {
				values[i] = v
			} else {
				m.Set(i, j, v)
			}
		}
	}

	names := make([]string, cols)
	for i, name := range header[:cols] {
		names[i] = strings.TrimSpace(name)
	}

	return m, values, names, nil
}

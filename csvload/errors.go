package csvload

import "errors"

var (
	// ErrEmptyFile indicates a file without a header row, without data
	// rows, or without at least one species column.
	ErrEmptyFile = errors.New("csvload: file needs a header row, at least one data row and at least one species column")
	// ErrRaggedRow indicates rows of differing column counts.
	ErrRaggedRow = errors.New("csvload: all rows must have the same number of columns")
	// ErrBadNumber indicates a cell that does not parse as a float.
	ErrBadNumber = errors.New("csvload: cell is not a number")
	// ErrShapeMismatch indicates reaction and conservation files that
	// disagree on the species column count.
	ErrShapeMismatch = errors.New("csvload: reaction and conservation files disagree on species columns")
)

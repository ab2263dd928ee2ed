package species

import "errors"

var (
	// ErrNoSpecies indicates an attempt to build a registry from zero names.
	ErrNoSpecies = errors.New("species: registry requires at least one species name")
	// ErrEmptyName indicates a species name that is the empty string.
	ErrEmptyName = errors.New("species: species name must be non-empty")
	// ErrDuplicateName indicates the same species name appearing twice.
	ErrDuplicateName = errors.New("species: duplicate species name")
)

package eqparse

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReactions indicates an empty reaction list.
	ErrNoReactions = errors.New("eqparse: at least one reaction is required")
	// ErrNoConservations indicates an empty conservation-law list.
	ErrNoConservations = errors.New("eqparse: at least one conservation law is required")
	// ErrNilRegistry indicates a nil species registry passed to matrix construction.
	ErrNilRegistry = errors.New("eqparse: species registry is nil")
	// ErrMalformedReaction indicates a reaction without exactly one "=".
	ErrMalformedReaction = errors.New("eqparse: reaction must contain exactly one \"=\"")
	// ErrBadTerm indicates a term that cannot be decomposed into a
	// (coefficient, species) pair.
	ErrBadTerm = errors.New("eqparse: term must be an optional coefficient followed by a species name")
	// ErrUnknownSpecies indicates a term referencing a species the registry
	// does not contain.
	ErrUnknownSpecies = errors.New("eqparse: unknown species")
)

// TermError reports a parse failure with its surrounding context: the
// sentinel cause, the offending term (empty for line-level failures such as
// ErrMalformedReaction), the full input line and its position in the input
// slice. TermError wraps the sentinel, so errors.Is sees through it.
type TermError struct {
	Err   error  // sentinel cause
	Term  string // offending term, "" when the whole line is at fault
	Input string // full reaction or conservation line
	Index int    // position of Input in the caller's slice
}

// Error formats the failure with term and line context.
func (e *TermError) Error() string {
	if e.Term == "" {
		return fmt.Sprintf("%v in %q", e.Err, e.Input)
	}

	return fmt.Sprintf("%v: term %q in %q", e.Err, e.Term, e.Input)
}

// Unwrap exposes the sentinel cause to errors.Is and errors.As.
func (e *TermError) Unwrap() error { return e.Err }

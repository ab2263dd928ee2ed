// Package eqparse converts human-written reaction and mass-conservation
// text into the dense matrices consumed by the equilibrium solver, together
// with a deterministic species registry.
//
// Grammar (informal):
//
//	reaction     = left "=" right
//	left, right  = term *( "+" term )
//	term         = [ integer ] name            e.g. "HL", "2H", "3OH"
//	conservation = cterm *( "+" cterm )
//	cterm        = [ number [ "*" ] ] name     e.g. "L", "2*H", "0.5Cl"
//
// A term's optional leading digit run is its coefficient; everything after
// it is the species name. Absence of a coefficient means 1. Reaction
// coefficients are positive integers; conservation coefficients may be
// non-negative decimals, and the "*" separator is optional (it is stripped
// before parsing).
//
// Species discovery scans every reaction, splits on "+" and "=", strips
// leading coefficients and collects the distinct names; names are then
// sorted lexicographically and assigned dense indices 0..n-1, so identical
// input text always produces identical matrix columns.
//
// Constraint on names: a species name must not begin with a digit. The
// tokenizer always reads a leading digit run as a coefficient, so a species
// literally named "2B" cannot be expressed in text form (build the matrices
// directly and register names with the species package instead).
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrNoReactions       no reaction strings supplied
//	– ErrNoConservations   no conservation strings supplied
//	– ErrNilRegistry       a nil registry passed to matrix construction
//	– ErrMalformedReaction a reaction without exactly one "="
//	– ErrBadTerm           a term that is not (coefficient, name)
//	– ErrUnknownSpecies    a term naming a species the registry lacks
//
// Failures carry the offending term and input line through *TermError,
// which wraps the sentinel.
//
// All functions are pure: identical input yields identical output, and no
// state is shared between calls.
package eqparse

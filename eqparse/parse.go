package eqparse

import (
	"strconv"
	"strings"

	"github.com/mtod92/equpy/species"
	"gonum.org/v1/gonum/mat"
)

// Species discovers every species named by the reaction strings and builds
// the registry for them: each reaction is split on "+" and "=", each token
// is stripped of its leading coefficient, and the distinct names are sorted
// lexicographically before dense indices are assigned.
//
// Returns ErrNoReactions for an empty input and a *TermError wrapping
// ErrBadTerm when a token cannot be decomposed.
// Complexity: O(total input length + n log n) for n distinct species.
func Species(reactions []string) (*species.Registry, error) {
	if len(reactions) == 0 {
		return nil, ErrNoReactions
	}
	set := make(map[string]struct{})
	for i, reaction := range reactions {
		// Sides do not matter for discovery; treat "=" like "+".
		for _, tok := range strings.Split(strings.ReplaceAll(reaction, "=", "+"), "+") {
			_, name, err := reactionTerm(tok)
			if err != nil {
				return nil, &TermError{Err: err, Term: tok, Input: reaction, Index: i}
			}
			set[name] = struct{}{}
		}
	}

	return species.FromSet(set), nil
}

// Reactions builds the stoichiometric matrix for the given reactions over
// the registry's species columns: left-side terms enter with negative
// coefficients (consumed), right-side terms with positive coefficients
// (produced), untouched entries stay zero. A species mentioned twice on
// one side keeps the coefficient of its last term.
//
// Returns ErrNoReactions, ErrNilRegistry, or a *TermError wrapping
// ErrMalformedReaction, ErrBadTerm or ErrUnknownSpecies.
// Complexity: O(#reactions × #species) memory, O(total input length) parsing.
func Reactions(reactions []string, reg *species.Registry) (*mat.Dense, error) {
	if len(reactions) == 0 {
		return nil, ErrNoReactions
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	n := mat.NewDense(len(reactions), reg.Len(), nil)
	for i, reaction := range reactions {
		sides := strings.Split(reaction, "=")
		if len(sides) != 2 {
			return nil, &TermError{Err: ErrMalformedReaction, Input: reaction, Index: i}
		}
		if err := fillSide(n, i, sides[0], -1, reg, reaction); err != nil {
			return nil, err
		}
		if err := fillSide(n, i, sides[1], +1, reg, reaction); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Conservations builds the conservation matrix for the given laws over the
// registry's species columns. Coefficients default to 1, may be decimal,
// and the optional "*" between coefficient and name is stripped before
// parsing. Species a law does not mention stay zero in its row.
//
// Returns ErrNoConservations, ErrNilRegistry, or a *TermError wrapping
// ErrBadTerm or ErrUnknownSpecies.
// Complexity: O(#laws × #species) memory, O(total input length) parsing.
func Conservations(laws []string, reg *species.Registry) (*mat.Dense, error) {
	if len(laws) == 0 {
		return nil, ErrNoConservations
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	c := mat.NewDense(len(laws), reg.Len(), nil)
	for i, law := range laws {
		cleaned := strings.ReplaceAll(law, "*", "")
		for _, tok := range strings.Split(cleaned, "+") {
			coeff, name, err := conservationTerm(tok)
			if err != nil {
				return nil, &TermError{Err: err, Term: tok, Input: law, Index: i}
			}
			col, ok := reg.IndexOf(name)
			if !ok {
				return nil, &TermError{Err: ErrUnknownSpecies, Term: name, Input: law, Index: i}
			}
			c.Set(i, col, coeff)
		}
	}

	return c, nil
}

// Build runs the full pipeline: species discovery, stoichiometric matrix,
// conservation matrix. It is the text-input entry point used by the
// equilibrium package.
func Build(reactions, conservations []string) (n, c *mat.Dense, reg *species.Registry, err error) {
	if reg, err = Species(reactions); err != nil {
		return nil, nil, nil, err
	}
	if n, err = Reactions(reactions, reg); err != nil {
		return nil, nil, nil, err
	}
	if c, err = Conservations(conservations, reg); err != nil {
		return nil, nil, nil, err
	}

	return n, c, reg, nil
}

// fillSide parses one "+"-separated reaction side into row `row` of n,
// applying sign to every coefficient.
func fillSide(n *mat.Dense, row int, side string, sign float64, reg *species.Registry, line string) error {
	for _, tok := range strings.Split(side, "+") {
		coeff, name, err := reactionTerm(tok)
		if err != nil {
			return &TermError{Err: err, Term: tok, Input: line, Index: row}
		}
		col, ok := reg.IndexOf(name)
		if !ok {
			return &TermError{Err: ErrUnknownSpecies, Term: name, Input: line, Index: row}
		}
		n.Set(row, col, sign*float64(coeff))
	}

	return nil
}

// reactionTerm decomposes one reaction term into its positive integer
// coefficient (default 1) and species name. The leading digit run is the
// coefficient; the remainder is the name.
func reactionTerm(token string) (int, string, error) {
	term := strings.TrimSpace(token)
	if term == "" {
		return 0, "", ErrBadTerm
	}
	cut := 0
	for cut < len(term) && isDigit(term[cut]) {
		cut++
	}
	name := term[cut:]
	if name == "" || strings.ContainsAny(name, " \t") {
		return 0, "", ErrBadTerm
	}
	coeff := 1
	if cut > 0 {
		v, err := strconv.Atoi(term[:cut])
		if err != nil || v < 1 {
			return 0, "", ErrBadTerm
		}
		coeff = v
	}

	return coeff, name, nil
}

// conservationTerm decomposes one conservation term into its non-negative
// decimal coefficient (default 1) and species name. The "*" separator has
// already been stripped by the caller.
func conservationTerm(token string) (float64, string, error) {
	term := strings.TrimSpace(token)
	if term == "" {
		return 0, "", ErrBadTerm
	}
	cut := 0
	for cut < len(term) && (isDigit(term[cut]) || term[cut] == '.') {
		cut++
	}
	name := term[cut:]
	if name == "" || strings.ContainsAny(name, " \t") {
		return 0, "", ErrBadTerm
	}
	coeff := 1.0
	if cut > 0 {
		v, err := strconv.ParseFloat(term[:cut], 64)
		if err != nil {
			return 0, "", ErrBadTerm
		}
		coeff = v
	}

	return coeff, name, nil
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Package species provides an immutable bidirectional registry mapping
// chemical species names to dense, stable integer indices.
//
// The registry is the single owner of the name↔index relation used across
// the solver: stoichiometric and conservation matrix columns are addressed
// by registry index, and presentation layers translate indices back to
// names. Once built, a Registry never changes; it is safe for concurrent
// readers and may back any number of solver sessions.
//
// Indices are dense over 0..Len()-1: every index maps to exactly one name
// and every name to exactly one index (a bijection, validated at
// construction).
package species

import "sort"

// Registry is an immutable bijection between species names and the index
// range 0..Len()-1. The zero value is unusable; build one with New or
// FromSet.
type Registry struct {
	names []string
	index map[string]int
}

// New builds a Registry assigning indices in the order names are given:
// names[0] gets index 0, names[1] index 1, and so on. The input slice is
// copied, so later mutation by the caller cannot affect the registry.
//
// Returns ErrNoSpecies for an empty input, ErrEmptyName if any name is
// the empty string, ErrDuplicateName if a name repeats.
// Complexity: O(n).
func New(names []string) (*Registry, error) {
	if len(names) == 0 {
		return nil, ErrNoSpecies
	}
	r := &Registry{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, seen := r.index[name]; seen {
			return nil, ErrDuplicateName
		}
		r.names[i] = name
		r.index[name] = i
	}

	return r, nil
}

// FromSet builds a Registry from a set of names, ordering them
// lexicographically before assigning indices. This is the deterministic
// ordering used when species are discovered from reaction text: identical
// input text always yields identical indices.
//
// Empty names and an empty set are skipped by construction upstream, so
// FromSet never fails; a nil or empty set yields a registry of length 0
// only through misuse and is guarded by the callers.
// Complexity: O(n log n).
func FromSet(names map[string]struct{}) *Registry {
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	r := &Registry{
		names: ordered,
		index: make(map[string]int, len(ordered)),
	}
	for i, name := range ordered {
		r.index[name] = i
	}

	return r
}

// Len returns the number of registered species.
// Complexity: O(1).
func (r *Registry) Len() int {
	return len(r.names)
}

// IndexOf returns the dense index of name and whether the name is known.
// Complexity: O(1).
func (r *Registry) IndexOf(name string) (int, bool) {
	i, ok := r.index[name]

	return i, ok
}

// NameOf returns the name registered at index and whether the index is in
// range. Complexity: O(1).
func (r *Registry) NameOf(index int) (string, bool) {
	if index < 0 || index >= len(r.names) {
		return "", false
	}

	return r.names[index], true
}

// Names returns all species names in index order. The returned slice is a
// copy; mutating it cannot affect the registry.
// Complexity: O(n).
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

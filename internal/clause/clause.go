/*
Package clause implements signed atoms, clauses, and the clause set — the
data structures the resolution engine (package resolution) operates over.

A Clause is a sorted set of SignedAtom; a ClauseSet is a BTree-indexed
(red-black tree) mapping from Clause to Provenance, backed by
github.com/emirpasic/gods/maps/treemap so iteration and the test-observed
display order fall out of the tree's in-order walk for free.
*/
package clause

import (
	"sort"
	"strings"

	"github.com/go-logic/resolve/internal/atom"
)

// SignedAtom is an atom together with a polarity.
type SignedAtom struct {
	Handle   *atom.Handle
	Negative bool
}

// Positive builds a positive signed atom.
func Positive(h *atom.Handle) SignedAtom { return SignedAtom{Handle: h} }

// Negative builds a negative signed atom.
func Negative(h *atom.Handle) SignedAtom { return SignedAtom{Handle: h, Negative: true} }

// Opposite flips the sign without reallocating the handle.
func (s SignedAtom) Opposite() SignedAtom {
	return SignedAtom{Handle: s.Handle, Negative: !s.Negative}
}

// Less totally orders signed atoms: every positive literal precedes every
// negative literal, and within the same polarity atoms are ordered by their
// identifier's lexical value. (Positive-before-negative is a partition of
// the whole clause, not a per-atom tiebreak: {b, ~a} sorts with b first even
// though "a" < "b", because sign is the primary key.)
func (s SignedAtom) Less(o SignedAtom) bool {
	if s.Negative != o.Negative {
		return !s.Negative
	}
	return atom.Less(s.Handle, o.Handle)
}

func (s SignedAtom) String() string {
	if s.Negative {
		return "~" + s.Handle.Name()
	}
	return s.Handle.Name()
}

// Clause is a sorted, duplicate-free, non-tautological set of signed atoms.
// The empty clause (⊥) is represented by a Clause with zero literals. Clause
// values are immutable after construction by New and are safe to share (a
// ClauseSet's Provenance back-references simply copy them).
type Clause struct {
	atoms []SignedAtom // kept sorted by SignedAtom.Less
}

// Empty is the empty clause, ⊥.
var Empty = Clause{}

// New builds a clause from literals, sorting them and absorbing exact
// duplicates. It does NOT perform tautology pruning — that happens earlier,
// while a clause is being assembled from a CNF OR-spine (see FromFormula),
// where a tautological candidate clause must be dropped wholesale rather
// than simplified.
func New(literals ...SignedAtom) Clause {
	if len(literals) == 0 {
		return Empty
	}
	sorted := append([]SignedAtom(nil), literals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	out := sorted[:1]
	for _, l := range sorted[1:] {
		last := out[len(out)-1]
		if last.Handle == l.Handle && last.Negative == l.Negative {
			continue // duplicate
		}
		out = append(out, l)
	}
	return Clause{atoms: out}
}

// Literals returns the clause's signed atoms in sorted order. The returned
// slice must not be mutated by the caller.
func (c Clause) Literals() []SignedAtom { return c.atoms }

// Len returns the number of literals; 0 iff c is ⊥.
func (c Clause) Len() int { return len(c.atoms) }

// IsEmpty reports whether c is ⊥.
func (c Clause) IsEmpty() bool { return len(c.atoms) == 0 }

// Contains reports whether l occurs in c.
func (c Clause) Contains(l SignedAtom) bool {
	for _, x := range c.atoms {
		if x.Handle == l.Handle && x.Negative == l.Negative {
			return true
		}
	}
	return false
}

// Compare totally orders two clauses by the lexicographic order on their
// sorted literal sequences — used as the ClauseSet index key. (`resolve`
// decides which operand is "smaller" by literal count, not by Compare.)
func Compare(a, b Clause) int {
	for i := 0; i < len(a.atoms) && i < len(b.atoms); i++ {
		if a.atoms[i] == b.atoms[i] {
			continue
		}
		if a.atoms[i].Less(b.atoms[i]) {
			return -1
		}
		return 1
	}
	return len(a.atoms) - len(b.atoms)
}

// String renders a clause as "{a, b, ~c}" — atoms comma-separated,
// positive-before-negative, alphabetical by identifier within each polarity.
func (c Clause) String() string {
	if c.IsEmpty() {
		return "{}"
	}
	parts := make([]string, len(c.atoms))
	for i, l := range c.atoms {
		parts[i] = l.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

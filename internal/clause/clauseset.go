package clause

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/go-logic/resolve/internal/formula"
)

// Provenance records how a clause entered a ClauseSet: either directly from
// a user formula (Axiom), or by resolving two parent clauses (Derived).
// Parents are stored by value (a Clause is an immutable sorted literal
// slice) — a non-owning back-reference in the sense that copying a Clause
// value aliases nothing and so can never form a reference cycle with the
// ClauseSet that owns the clauses themselves.
type Provenance struct {
	Derived          bool
	Parent1, Parent2 Clause
}

// Axiom is the provenance of a clause that came directly from a user
// formula.
var Axiom = Provenance{}

// DerivedFrom builds the provenance of a clause resolved from two parents.
func DerivedFrom(p1, p2 Clause) Provenance {
	return Provenance{Derived: true, Parent1: p1, Parent2: p2}
}

func clauseComparator(a, b interface{}) int {
	return Compare(a.(Clause), b.(Clause))
}

// Set is a mapping from Clause to Provenance, ordered by Clause.Compare and
// indexed by a red-black tree (github.com/emirpasic/gods/maps/treemap) —
// the BTree-indexed clause set called for in the design notes.
type Set struct {
	tree *treemap.Map
}

// NewSet returns an empty clause set.
func NewSet() *Set {
	return &Set{tree: treemap.NewWith(clauseComparator)}
}

// Insert adds c with provenance p, unless c is already present (in which
// case the existing provenance is left untouched — resolve() relies on this
// to avoid re-deriving an axiom). Reports whether c was newly inserted.
func (s *Set) Insert(c Clause, p Provenance) bool {
	if _, found := s.tree.Get(c); found {
		return false
	}
	s.tree.Put(c, p)
	return true
}

// Get returns the provenance stored for c, if present.
func (s *Set) Get(c Clause) (Provenance, bool) {
	v, found := s.tree.Get(c)
	if !found {
		return Provenance{}, false
	}
	return v.(Provenance), true
}

// Contains reports whether c is present in the set.
func (s *Set) Contains(c Clause) bool {
	_, found := s.tree.Get(c)
	return found
}

// Size returns the number of clauses in the set.
func (s *Set) Size() int { return s.tree.Size() }

// Clauses returns every clause in the set, in the tree's sorted
// (Clause.Compare) order.
func (s *Set) Clauses() []Clause {
	keys := s.tree.Keys()
	out := make([]Clause, len(keys))
	for i, k := range keys {
		out[i] = k.(Clause)
	}
	return out
}

// HasEmpty reports whether ⊥ is present in the set.
func (s *Set) HasEmpty() bool {
	return s.Contains(Empty)
}

// Clone returns an independent copy of s; mutating the clone never affects
// s. (Context.Snapshot gets its fresh, independent set from Merge instead.)
func (s *Set) Clone() *Set {
	out := NewSet()
	s.tree.Each(func(k, v interface{}) {
		out.tree.Put(k, v)
	})
	return out
}

// Merge is the set-union of cs's clause-provenance maps into a fresh Set.
// Later sets win ties on an identical clause, but in practice this is a
// no-op: axioms of an identical clause always carry identical (empty)
// provenance.
func Merge(sets ...*Set) *Set {
	out := NewSet()
	for _, cs := range sets {
		if cs == nil {
			continue
		}
		cs.tree.Each(func(k, v interface{}) {
			out.tree.Put(k, v)
		})
	}
	return out
}

// FromFormula builds a ClauseSet from a CNF formula (package cnf's output):
// walk the AND-spine, emit one candidate clause per OR-spine, absorbing
// duplicate literals and dropping any candidate that turns out to be a
// tautology (both p and ~p present).
func FromFormula(f *formula.Formula) *Set {
	s := NewSet()
	addClauses(s, f)
	return s
}

func addClauses(s *Set, f *formula.Formula) {
	if f.Op() == formula.OpAnd {
		addClauses(s, f.Left())
		addClauses(s, f.Right())
		return
	}
	if lits, ok := collectClause(f); ok {
		s.Insert(New(lits...), Axiom)
	}
}

// collectClause walks f's OR-spine left to right, collecting literals. It
// returns ok=false if the candidate is a tautology (a literal and its
// complement both appear), in which case the whole candidate is dropped.
func collectClause(f *formula.Formula) ([]SignedAtom, bool) {
	var lits []SignedAtom
	var walk func(*formula.Formula) bool
	walk = func(n *formula.Formula) bool {
		if n.Op() == formula.OpOr {
			return walk(n.Left()) && walk(n.Right())
		}
		var lit SignedAtom
		switch n.Op() {
		case formula.OpLeaf:
			lit = Positive(n.Atom())
		case formula.OpNot:
			lit = Negative(n.Right().Atom())
		}
		for _, existing := range lits {
			if existing.Handle == lit.Handle && existing.Negative == lit.Negative {
				return true // duplicate: drop it, keep the clause
			}
			if existing.Handle == lit.Handle && existing.Negative != lit.Negative {
				return false // tautology: drop the whole candidate
			}
		}
		lits = append(lits, lit)
		return true
	}
	if !walk(f) {
		return nil, false
	}
	return lits, true
}

// Prune performs pure-literal pruning: a clause is retained only if every
// one of its literals has its opposite polarity present somewhere else in
// the set. Atoms that occur with only one polarity ("pure") cannot
// contribute to deriving ⊥, so every clause mentioning a pure atom is
// removed.
func (s *Set) Prune() {
	pos := map[interface{}]bool{}
	neg := map[interface{}]bool{}
	for _, c := range s.Clauses() {
		for _, l := range c.Literals() {
			if l.Negative {
				neg[l.Handle] = true
			} else {
				pos[l.Handle] = true
			}
		}
	}
	resolvable := func(l SignedAtom) bool {
		if l.Negative {
			return pos[l.Handle]
		}
		return neg[l.Handle]
	}
	pruned := NewSet()
	for _, c := range s.Clauses() {
		keep := true
		for _, l := range c.Literals() {
			if !resolvable(l) {
				keep = false
				break
			}
		}
		if keep {
			p, _ := s.Get(c)
			pruned.Insert(c, p)
		}
	}
	s.tree = pruned.tree
}

// String renders a clause set as "{{…}, {…}}", clauses separated by ", ",
// in lexicographic (Clause.Compare) order.
func (s *Set) String() string {
	clauses := s.Clauses()
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

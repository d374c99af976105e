package clause

import (
	"testing"

	"github.com/go-logic/resolve/internal/atom"
)

func TestSetInsertNoOverwrite(t *testing.T) {
	in := atom.New()
	a := in.Intern("a")
	c := New(Positive(a))
	s := NewSet()
	if !s.Insert(c, Axiom) {
		t.Fatal("first insert should report true")
	}
	other := New(Positive(a))
	derived := DerivedFrom(c, c)
	if s.Insert(other, derived) {
		t.Fatal("second insert of an equal clause should report false")
	}
	got, ok := s.Get(c)
	if !ok || got.Derived {
		t.Fatalf("provenance was overwritten: %+v", got)
	}
}

func TestSetMerge(t *testing.T) {
	in := atom.New()
	a, b := in.Intern("a"), in.Intern("b")
	s1 := NewSet()
	s1.Insert(New(Positive(a)), Axiom)
	s2 := NewSet()
	s2.Insert(New(Positive(b)), Axiom)
	merged := Merge(s1, s2)
	if got, want := merged.String(), "{{a}, {b}}"; got != want {
		t.Fatalf("merge = %q, want %q", got, want)
	}
	// Originals untouched.
	if s1.Size() != 1 || s2.Size() != 1 {
		t.Fatal("Merge mutated an input set")
	}
}

func TestSetCloneIsIndependent(t *testing.T) {
	in := atom.New()
	a, b := in.Intern("a"), in.Intern("b")
	s := NewSet()
	s.Insert(New(Positive(a)), Axiom)
	clone := s.Clone()
	clone.Insert(New(Positive(b)), Axiom)
	if s.Size() != 1 {
		t.Fatalf("mutating a clone affected the original: size=%d", s.Size())
	}
	if clone.Size() != 2 {
		t.Fatalf("clone.Size() = %d, want 2", clone.Size())
	}
}

// TestPrune mirrors the ground-truth prune scenario: {a, ~b}, {b, ~a}, {c}
// — c is pure (only ever positive) and is dropped, leaving the two clauses
// built entirely from resolvable atoms.
func TestPrune(t *testing.T) {
	in := atom.New()
	a, b, c := in.Intern("a"), in.Intern("b"), in.Intern("c")
	s := NewSet()
	s.Insert(New(Positive(a), Negative(b)), Axiom)
	s.Insert(New(Positive(b), Negative(a)), Axiom)
	s.Insert(New(Positive(c)), Axiom)
	s.Prune()
	want := "{{a, ~b}, {b, ~a}}"
	if got := s.String(); got != want {
		t.Fatalf("prune = %q, want %q", got, want)
	}
}

func TestPruneDropsAllPureClauses(t *testing.T) {
	in := atom.New()
	a := in.Intern("a")
	s := NewSet()
	s.Insert(New(Positive(a)), Axiom)
	s.Prune()
	if s.Size() != 0 {
		t.Fatalf("size after pruning a lone pure atom = %d, want 0", s.Size())
	}
}

func TestHasEmpty(t *testing.T) {
	s := NewSet()
	if s.HasEmpty() {
		t.Fatal("fresh set reports HasEmpty")
	}
	s.Insert(Empty, Axiom)
	if !s.HasEmpty() {
		t.Fatal("set containing Empty does not report HasEmpty")
	}
}

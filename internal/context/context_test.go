package context

import (
	"testing"

	"github.com/go-logic/resolve/internal/atom"
	"github.com/go-logic/resolve/internal/clause"
	"github.com/go-logic/resolve/internal/formula"
)

// TestReferenceSequence mirrors the reference sequence "x; ~y; 0 => ~1; ?;
// -0; -1;": formula 2 is "(x => (~(~y)))" with clause set "{{y, ~x}}", and
// the two trailing deletes leave only the "~y" entry behind.
func TestReferenceSequence(t *testing.T) {
	in := atom.New()
	x, y := in.Intern("x"), in.Intern("y")
	c := New()

	if _, err := c.Push(formula.Leaf(x)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Push(formula.Not(formula.Leaf(y))); err != nil {
		t.Fatal(err)
	}

	f0, err := c.Formula(0)
	if err != nil {
		t.Fatal(err)
	}
	f1, err := c.Formula(1)
	if err != nil {
		t.Fatal(err)
	}
	idx2, err := c.Push(formula.Implies(f0, formula.Not(f1)))
	if err != nil {
		t.Fatal(err)
	}
	if idx2 != 2 {
		t.Fatalf("third push landed at index %d, want 2", idx2)
	}

	wantList := "0: x -> {{x}}\n" +
		"1: (~y) -> {{~y}}\n" +
		"2: (x => (~(~y))) -> {{y, ~x}}"
	if got := c.List(); got != wantList {
		t.Fatalf("list =\n%s\nwant\n%s", got, wantList)
	}

	if err := c.Delete(0); err != nil {
		t.Fatal(err)
	}
	wantAfterFirstDelete := "0: (~y) -> {{~y}}\n" +
		"1: (x => (~(~y))) -> {{y, ~x}}"
	if got := c.List(); got != wantAfterFirstDelete {
		t.Fatalf("list after -0 =\n%s\nwant\n%s", got, wantAfterFirstDelete)
	}

	if err := c.Delete(1); err != nil {
		t.Fatal(err)
	}
	wantAfterSecondDelete := "0: (~y) -> {{~y}}"
	if got := c.List(); got != wantAfterSecondDelete {
		t.Fatalf("list after -1 =\n%s\nwant\n%s", got, wantAfterSecondDelete)
	}
}

func TestDeleteOutOfBound(t *testing.T) {
	c := New()
	if err := c.Delete(0); err == nil {
		t.Fatal("Delete on an empty context should fail")
	}
}

func TestFormulaOutOfBound(t *testing.T) {
	c := New()
	if _, err := c.Formula(3); err == nil {
		t.Fatal("Formula(3) on an empty context should fail")
	}
}

func TestSnapshotIsIndependentOfEntries(t *testing.T) {
	in := atom.New()
	a, b := in.Intern("a"), in.Intern("b")
	c := New()
	if _, err := c.Push(formula.Leaf(a)); err != nil {
		t.Fatal(err)
	}
	snap := c.Snapshot()
	if got, want := snap.String(), "{{a}}"; got != want {
		t.Fatalf("snapshot = %q, want %q", got, want)
	}
	snap.Insert(clause.New(clause.Positive(b)), clause.Axiom)
	if got, want := snap.String(), "{{a}, {b}}"; got != want {
		t.Fatalf("mutated snapshot = %q, want %q", got, want)
	}
	// The entry's own stored clause set must be untouched.
	fresh := c.Snapshot()
	if got, want := fresh.String(), "{{a}}"; got != want {
		t.Fatalf("re-snapshot after mutating a prior snapshot = %q, want %q", got, want)
	}
}

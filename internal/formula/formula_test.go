package formula

import (
	"testing"

	"github.com/go-logic/resolve/internal/atom"
)

func TestDisplay(t *testing.T) {
	in := atom.New()
	x, y := in.Intern("x"), in.Intern("y")

	tests := []struct {
		f    *Formula
		want string
	}{
		{Leaf(x), "x"},
		{Not(Leaf(x)), "(~x)"},
		{And(Leaf(x), Leaf(y)), "(x & y)"},
		{Implies(Leaf(x), Not(Not(Leaf(y)))), "(x => (~(~y)))"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAtomIdentity(t *testing.T) {
	in := atom.New()
	a1 := in.Intern("a")
	a2 := in.Intern("a")
	if a1 != a2 {
		t.Fatalf("expected interned handles for the same identifier to be pointer-equal")
	}
	b := in.Intern("b")
	if a1 == b {
		t.Fatalf("distinct identifiers must not share a handle")
	}
}

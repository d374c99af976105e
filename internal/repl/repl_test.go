package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-logic/resolve/internal/config"
)

func TestRunBatchFindsContradiction(t *testing.T) {
	var out bytes.Buffer
	s := New(config.Default(), &out)
	err := s.RunBatch("a;\n~a;\n!;\n")
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	want := "{~a}, {a} -> {}\n"
	if got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunBatchSatisfiable(t *testing.T) {
	var out bytes.Buffer
	s := New(config.Default(), &out)
	if err := s.RunBatch("a | b;\n!;\n"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "satisfiable (no contradiction found)\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunBatchQueryAndDelete(t *testing.T) {
	var out bytes.Buffer
	s := New(config.Default(), &out)
	if err := s.RunBatch("x;\n~y;\n?;\n-0;\n?;\n"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{
		"0: x -> {{x}}",
		"1: (~y) -> {{~y}}",
		"0: (~y) -> {{~y}}",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), out.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRunBatchStopsOnExit(t *testing.T) {
	var out bytes.Buffer
	s := New(config.Default(), &out)
	if err := s.RunBatch("x;\nexit;\ny;\n"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "y") {
		t.Fatalf("statements after exit were executed: %q", out.String())
	}
}

// TestScenario7StaysSatisfiable exercises
// "(~(B&C)) & (A=>(C<=>B)) & (~C=>A) & (~B|(A=>~C));": find_box returns
// false and the trace is empty.
func TestScenario7StaysSatisfiable(t *testing.T) {
	var out bytes.Buffer
	s := New(config.Default(), &out)
	err := s.RunBatch("(~(B&C)) & (A=>(C<=>B)) & (~C=>A) & (~B|(A=>~C));\n!;\n")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "satisfiable (no contradiction found)\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

// TestScenario6SixLineTrace exercises
// "(~B|C) & ~(A&~B) & (A|((B|C)&~C)); ~(A&B&C);": find_box returns true
// with the worked six-line trace.
func TestScenario6SixLineTrace(t *testing.T) {
	var out bytes.Buffer
	s := New(config.Default(), &out)
	err := s.RunBatch("(~B|C) & ~(A&~B) & (A|((B|C)&~C)); ~(A&B&C);\n!;\n")
	if err != nil {
		t.Fatal(err)
	}
	want := "{C, ~B}, {~A, ~B, ~C} -> {~A, ~B}\n" +
		"{~A, ~B}, {B, ~A} -> {~A}\n" +
		"{C, ~B}, {A, ~C} -> {A, ~B}\n" +
		"{A, ~C}, {A, B, C} -> {A, B}\n" +
		"{A, ~B}, {A, B} -> {A}\n" +
		"{~A}, {A} -> {}\n"
	if got := out.String(); got != want {
		t.Fatalf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestRunBatchRecoversFromParseError(t *testing.T) {
	var out bytes.Buffer
	s := New(config.Default(), &out)
	if err := s.RunBatch(");\nx;\n?;\n"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "0: x -> {{x}}\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

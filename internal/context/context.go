/*
Package context holds the one piece of mutable state in the engine: the
numbered list of (formula, clause-set) entries a REPL session accumulates.
Every other package is a pure function over immutable inputs (§9 "Global
Context mutation" — the Context is the sole locus of state); this package is
where that state actually lives.
*/
package context

import (
	"fmt"
	"strings"

	"github.com/go-logic/resolve/internal/clause"
	"github.com/go-logic/resolve/internal/cnf"
	"github.com/go-logic/resolve/internal/formula"
	"github.com/go-logic/resolve/internal/rerr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'resolve.context'.
func tracer() tracing.Trace {
	return tracing.Select("resolve.context")
}

// Entry is one user-visible formula and the clause-set computed from it at
// insertion time. Clauses is never mutated after Push builds it — resolution
// always works against a Snapshot, never an entry's own set.
type Entry struct {
	Formula *formula.Formula
	Clauses *clause.Set
}

// Context is the ordered sequence of entries; position i is the user-visible
// formula index. Mutated only by Push (append) and Delete (remove, shifting
// later entries down).
type Context struct {
	entries []Entry
}

// New returns an empty context.
func New() *Context {
	return &Context{}
}

// Push runs f through CNF transformation and clausification and appends the
// result as a new entry. Returns the new entry's index, or a MalformedAST
// error if CNF transformation rejects f's shape.
func (c *Context) Push(f *formula.Formula) (int, error) {
	cnfForm, err := cnf.Distribute(f)
	if err != nil {
		return 0, fmt.Errorf("context push: %w", err)
	}
	cs := clause.FromFormula(cnfForm)
	c.entries = append(c.entries, Entry{Formula: f, Clauses: cs})
	idx := len(c.entries) - 1
	tracer().Debugf("pushed entry %d: %s -> %s", idx, f, cs)
	return idx, nil
}

// Formula returns the formula tree stored at i, for resolving a numeric
// back-reference (e.g. "0 <=> ~1") at parse time. The returned tree is safe
// to share directly — Formula values are immutable.
func (c *Context) Formula(i int) (*formula.Formula, error) {
	if i < 0 || i >= len(c.entries) {
		return nil, rerr.NewIndexOutOfBound(i, len(c.entries))
	}
	return c.entries[i].Formula.Clone(), nil
}

// Delete removes the entry at index i, shifting subsequent entries down by
// one. Fails with IndexOutOfBound if i is not a valid current index.
func (c *Context) Delete(i int) error {
	if i < 0 || i >= len(c.entries) {
		return rerr.NewIndexOutOfBound(i, len(c.entries))
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return nil
}

// Len returns the number of entries currently held.
func (c *Context) Len() int { return len(c.entries) }

// Snapshot returns the union of every entry's clause set, as a fresh,
// independent Set — the input to resolution.FindBox. Resolution mutates its
// argument, so every execute takes a new snapshot rather than touching an
// entry's stored set.
func (c *Context) Snapshot() *clause.Set {
	sets := make([]*clause.Set, len(c.entries))
	for i, e := range c.entries {
		sets[i] = e.Clauses
	}
	return clause.Merge(sets...)
}

// List renders one line per entry, "i: <formula> -> <clause-set>", in
// insertion order, newline-joined.
func (c *Context) List() string {
	lines := make([]string, len(c.entries))
	for i, e := range c.entries {
		lines[i] = fmt.Sprintf("%d: %s -> %s", i, e.Formula, e.Clauses)
	}
	return strings.Join(lines, "\n")
}

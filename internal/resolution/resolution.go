/*
Package resolution implements binary resolution over a clause.Set: pure-literal
pruning, the saturating square-step, empty-clause (⊥) fixpoint detection, and
linear-derivation trace reconstruction.

Everything here is a pure transformation over package clause's data
structures save for the one piece of mutable state FindBox is explicitly
allowed to touch: the Set it was handed (always a fresh snapshot — see
package context). There is no shared state between calls, mirroring the
"everything else is a pure function over immutable inputs" note in the
design notes.
*/
package resolution

import (
	"context"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/go-logic/resolve/internal/clause"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'resolve.resolution'.
func tracer() tracing.Trace {
	return tracing.Select("resolve.resolution")
}

// FindBox mutates cs in place, saturating it with resolvents, and returns
// true iff ⊥ was derived. The procedure is: prune once, then repeatedly run
// one square step until either ⊥ appears or a step adds no new clause.
//
// ctx is checked once per square step (not once per clause pair) as a
// best-effort step budget for pathological inputs; it is not a true
// cancellation point inside the resolution loop (§5: "a long-running
// find_box cannot be interrupted from within").
func FindBox(ctx context.Context, cs *clause.Set) bool {
	cs.Prune()
	if cs.HasEmpty() {
		return true
	}
	for {
		before := cs.Size()
		square(cs)
		if cs.HasEmpty() {
			return true
		}
		if cs.Size() == before {
			return false
		}
		select {
		case <-ctx.Done():
			tracer().Infof("find_box: step budget exhausted (%d clauses)", cs.Size())
			return false
		default:
		}
	}
}

// square attempts one resolution step over every unordered pair of clauses
// currently in cs (C1 strictly preceding C2 in cs's sorted index; a clause
// is never resolved with itself). New resolvents are accumulated in a
// scratch set and folded into cs only at the end of the step, so square
// never mutates the container it is iterating.
func square(cs *clause.Set) {
	clauses := cs.Clauses()
	scratch := clause.NewSet()
	for i := 0; i < len(clauses); i++ {
		for j := i + 1; j < len(clauses); j++ {
			resolvent, prov, ok := resolve(clauses[i], clauses[j])
			if !ok {
				continue
			}
			if cs.Contains(resolvent) {
				continue
			}
			scratch.Insert(resolvent, prov)
		}
	}
	for _, c := range scratch.Clauses() {
		p, _ := scratch.Get(c)
		if cs.Insert(c, p) {
			tracer().Debugf("resolved %s, %s -> %s", p.Parent1, p.Parent2, c)
		}
	}
}

// resolve attempts to resolve c1 against c2. It normalises so the clause
// with strictly fewer literals is scanned first (on a tie, the second
// argument is scanned first) and looks for the single literal in the
// scanned clause whose complement appears in the other. More than one such
// literal means the resolvent would be a tautology (always subsumed) and
// the pair is refused; none means the clauses share no complementary
// literal and the pair is refused.
func resolve(c1, c2 clause.Clause) (clause.Clause, clause.Provenance, bool) {
	small, large := c1, c2
	if !(c1.Len() < c2.Len()) {
		small, large = c2, c1
	}
	var pivot clause.SignedAtom
	matches := 0
	for _, l := range small.Literals() {
		if large.Contains(l.Opposite()) {
			matches++
			pivot = l
		}
	}
	if matches != 1 {
		return clause.Clause{}, clause.Provenance{}, false
	}
	lits := make([]clause.SignedAtom, 0, small.Len()+large.Len())
	for _, l := range small.Literals() {
		if l != pivot {
			lits = append(lits, l)
		}
	}
	opposite := pivot.Opposite()
	for _, l := range large.Literals() {
		if l != opposite {
			lits = append(lits, l)
		}
	}
	resolvent := clause.New(lits...)
	return resolvent, clause.DerivedFrom(small, large), true
}

// dedupKey returns a content hash identifying c for the visited-set in
// TraceFromBox, the same way earley.go's hash() wraps the fields that make an
// item unique in an anonymous struct before hashing them — here the one
// field that makes a clause unique is its display string.
func dedupKey(c clause.Clause) string {
	key, err := structhash.Hash(struct{ Clause string }{c.String()}, 1)
	if err != nil { // no reason for this to happen, but the API demands it
		panic(err)
	}
	return key
}

// TraceFromBox reconstructs the linear resolution derivation that produced
// ⊥, as a newline-joined sequence of "{parent1}, {parent2} -> {resolvent}"
// lines. Returns "" if ⊥ is not present. Performs a post-order DFS from ⊥
// over its provenance back-edges, memoizing by clause so a derived clause
// reachable by more than one path still emits its line exactly once.
func TraceFromBox(cs *clause.Set) string {
	if !cs.HasEmpty() {
		return ""
	}
	var lines []string
	visited := make(map[string]bool)
	var dfs func(c clause.Clause)
	dfs = func(c clause.Clause) {
		key := dedupKey(c)
		if visited[key] {
			return
		}
		visited[key] = true
		prov, ok := cs.Get(c)
		if !ok || !prov.Derived {
			return // axioms (and, defensively, unknown clauses) contribute no line
		}
		dfs(prov.Parent1)
		dfs(prov.Parent2)
		lines = append(lines, fmt.Sprintf("%s, %s -> %s", prov.Parent1, prov.Parent2, c))
	}
	dfs(clause.Empty)
	return strings.Join(lines, "\n")
}

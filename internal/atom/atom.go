/*
Package atom interns propositional-variable identifiers into canonical
handles.

Two handles are equal iff they were issued for the same identifier string by
the same Interner — equality is a pointer compare, never a string compare,
because atom equality sits in the inner loop of resolution (see package
resolution). The pattern mirrors the symbol table found throughout the
teacher's term-rewriting package: a name is looked up once and every later
reference shares that one canonical value.
*/
package atom

import (
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'resolve.atom'.
func tracer() tracing.Trace {
	return tracing.Select("resolve.atom")
}

// Handle is a canonical token for an identifier. Handles are only ever
// produced by an Interner and must never be constructed directly — identity
// (pointer equality) is the whole point.
type Handle struct {
	name string
}

// Name returns the identifier this handle was interned for.
func (h *Handle) Name() string {
	if h == nil {
		return ""
	}
	return h.name
}

// String renders the atom the way it appeared in the source, e.g. "x".
func (h *Handle) String() string {
	return h.Name()
}

// Less orders two handles by their identifier's lexical value. Used to give
// clauses and clause sets a deterministic, test-observed display order.
func Less(a, b *Handle) bool {
	return a.Name() < b.Name()
}

// Interner assigns each identifier a canonical shared handle. An Interner is
// confined to a single goroutine by contract (see the Concurrency & Resource
// Model), but guards its map with a mutex defensively, the same way the
// teacher's scanner types document single-threaded use while still being
// safe to share a read lock across.
type Interner struct {
	mu    sync.Mutex
	byName map[string]*Handle
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{byName: make(map[string]*Handle)}
}

// Intern returns the canonical handle for identifier. Idempotent: repeated
// calls with the same text return the identical (pointer-equal) handle.
func (in *Interner) Intern(identifier string) *Handle {
	in.mu.Lock()
	defer in.mu.Unlock()
	if h, ok := in.byName[identifier]; ok {
		return h
	}
	h := &Handle{name: identifier}
	in.byName[identifier] = h
	tracer().Debugf("interned atom %q", identifier)
	return h
}

// Handles returns every handle issued so far, sorted by identifier. Mostly
// useful for tests and for diagnostics (pure-atom tracing, etc).
func (in *Interner) Handles() []*Handle {
	in.mu.Lock()
	defer in.mu.Unlock()
	hs := make([]*Handle, 0, len(in.byName))
	for _, h := range in.byName {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return Less(hs[i], hs[j]) })
	return hs
}

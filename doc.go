/*
Package resolve is a propositional-logic resolution engine.

Users enter boolean formulas over named atoms through an interactive REPL (or
a batch file); the engine keeps them as a numbered context of assumptions and,
on command, decides whether the conjunction of the accumulated assumptions is
unsatisfiable by running clause-form resolution to derive the empty clause.
When it does, it prints the linear derivation trace that produced it.

Package structure:

■ internal/atom: interns identifiers into canonical, pointer-comparable handles.

■ internal/formula: the immutable formula tree (NOT/AND/OR/IMPLIES/EQUIV over
atoms) and its display form.

■ internal/cnf: negation-normalisation and OR-over-AND distribution, turning an
arbitrary formula into conjunctive normal form.

■ internal/clause: clauses (sorted signed-atom sets) and clause sets (ordered,
provenance-tracking collections of clauses).

■ internal/resolution: pure-literal pruning and the saturating resolution loop
that derives the empty clause and reconstructs its trace.

■ internal/context: the numbered list of formula/clause-set entries a REPL
session accumulates.

■ internal/lexer, internal/parser: the mechanical front end — a lexmachine-backed
tokenizer and a five-operator Pratt parser.

■ internal/repl: the read-eval-print loop.

The base package contains data types shared across the front end: a general
Token interface and an input Span.
*/
package resolve

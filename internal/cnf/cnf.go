/*
Package cnf turns an arbitrary propositional formula into conjunctive normal
form: a confluent rewrite in two stages.

Stage 1 (digest/negateDigest) is mutual structural recursion eliminating
IMPLIES and EQUIV and pushing NOT down to the leaves (negation-normal form).
Stage 2 (distribute) assumes stage 1 has run and distributes OR over AND.

This is a pure term rewrite — no shared state, no atom interning decisions —
mirroring the shape of the teacher's term-rewriting package (termr.Rewriter:
a tree in, a tree out) but specialised to a fixed, five-connective grammar
instead of a pattern-matched rule set.
*/
package cnf

import (
	"github.com/go-logic/resolve/internal/formula"
	"github.com/go-logic/resolve/internal/rerr"
)

// Distribute transforms f into an equivalent formula in conjunctive normal
// form: digest (negation-normalise + eliminate => and <=>), then distribute
// OR over AND to the fixpoint.
func Distribute(f *formula.Formula) (*formula.Formula, error) {
	nnf, err := digest(f)
	if err != nil {
		return nil, err
	}
	return distributeRecurse(nnf)
}

// digest puts f into negation-normal form and eliminates IMPLIES/EQUIV.
func digest(f *formula.Formula) (*formula.Formula, error) {
	switch f.Op() {
	case formula.OpLeaf:
		return f, nil
	case formula.OpNot:
		return negateDigest(f.Right())
	case formula.OpAnd:
		l, err := digest(f.Left())
		if err != nil {
			return nil, err
		}
		r, err := digest(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.And(l, r), nil
	case formula.OpOr:
		l, err := digest(f.Left())
		if err != nil {
			return nil, err
		}
		r, err := digest(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.Or(l, r), nil
	case formula.OpImplies:
		// F => G  ≡  ~F | G
		nl, err := negateDigest(f.Left())
		if err != nil {
			return nil, err
		}
		r, err := digest(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.Or(nl, r), nil
	case formula.OpEquiv:
		// F <=> G  ≡  (F & G) | (~F & ~G)
		l, err := digest(f.Left())
		if err != nil {
			return nil, err
		}
		r, err := digest(f.Right())
		if err != nil {
			return nil, err
		}
		nl, err := negateDigest(f.Left())
		if err != nil {
			return nil, err
		}
		nr, err := negateDigest(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.Or(formula.And(l, r), formula.And(nl, nr)), nil
	default:
		return nil, rerr.NewMalformedAST("digest: unrecognised operator")
	}
}

// negateDigest returns a formula logically equivalent to ~f, already in
// negation-normal form, without ever materialising ~f itself.
func negateDigest(f *formula.Formula) (*formula.Formula, error) {
	switch f.Op() {
	case formula.OpLeaf:
		return formula.Not(f), nil // the sole surviving NOT-over-Leaf
	case formula.OpNot:
		return digest(f.Right()) // double-negation elimination
	case formula.OpAnd:
		// ~(F & G)  ≡  ~F | ~G
		l, err := negateDigest(f.Left())
		if err != nil {
			return nil, err
		}
		r, err := negateDigest(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.Or(l, r), nil
	case formula.OpOr:
		// ~(F | G)  ≡  ~F & ~G
		l, err := negateDigest(f.Left())
		if err != nil {
			return nil, err
		}
		r, err := negateDigest(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.And(l, r), nil
	case formula.OpImplies:
		// ~(F => G)  ≡  F & ~G
		l, err := digest(f.Left())
		if err != nil {
			return nil, err
		}
		nr, err := negateDigest(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.And(l, nr), nil
	case formula.OpEquiv:
		// ~(F <=> G)  ≡  F <=> ~G, re-entered through digest — this
		// produces (F & ~G) | (~F & G).
		nr, err := negateDigest(f.Right())
		if err != nil {
			return nil, err
		}
		return digest(formula.Equiv(f.Left(), nr))
	default:
		return nil, rerr.NewMalformedAST("negateDigest: unrecognised operator")
	}
}

// distributeRecurse assumes digest has already run: no IMPLIES/EQUIV, every
// NOT is over a Leaf. It recurses first so children are already in CNF, then
// distributes OR over AND. When both sides of an OR are ANDs, left
// distribution is applied before right distribution is even considered —
// this ordering is observable in the output shape and is part of the
// contract.
func distributeRecurse(f *formula.Formula) (*formula.Formula, error) {
	switch f.Op() {
	case formula.OpLeaf:
		return f, nil
	case formula.OpNot:
		if !f.Right().IsLeaf() {
			return nil, rerr.NewMalformedAST("distribute: NOT over non-leaf survived digest")
		}
		return f, nil
	case formula.OpAnd:
		l, err := distributeRecurse(f.Left())
		if err != nil {
			return nil, err
		}
		r, err := distributeRecurse(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.And(l, r), nil
	case formula.OpOr:
		l, err := distributeRecurse(f.Left())
		if err != nil {
			return nil, err
		}
		r, err := distributeRecurse(f.Right())
		if err != nil {
			return nil, err
		}
		if l.Op() == formula.OpAnd {
			left, err := distributeRecurse(formula.Or(l.Left(), r))
			if err != nil {
				return nil, err
			}
			right, err := distributeRecurse(formula.Or(l.Right(), r))
			if err != nil {
				return nil, err
			}
			return formula.And(left, right), nil
		}
		if r.Op() == formula.OpAnd {
			left, err := distributeRecurse(formula.Or(l, r.Left()))
			if err != nil {
				return nil, err
			}
			right, err := distributeRecurse(formula.Or(l, r.Right()))
			if err != nil {
				return nil, err
			}
			return formula.And(left, right), nil
		}
		return formula.Or(l, r), nil
	case formula.OpImplies, formula.OpEquiv:
		return nil, rerr.NewMalformedAST("distribute: IMPLIES/EQUIV survived digest")
	default:
		return nil, rerr.NewMalformedAST("distribute: unrecognised operator")
	}
}

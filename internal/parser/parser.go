/*
Package parser turns a token stream into Statements: a recursive-descent
precedence-climbing parser over the five connectives, grounded on
original_source/src/parser.rs's recursive_pratt/parse_statement pair. Numeric
back-references ("0 => ~1") are resolved against a context.Context at parse
time, the same as the reference implementation's parse_number.

This front end diverges from the reference parser in one place: the lexer
here (see package lexer) tokenizes a bare newline as a statement separator
the same as ';', where the reference lexer treats newlines as insignificant
whitespace and only ';' terminates a statement. Every statement form below
therefore requires and consumes a trailing SEMI, with no special-casing for
command statements.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/go-logic/resolve/internal/atom"
	"github.com/go-logic/resolve/internal/context"
	"github.com/go-logic/resolve/internal/formula"
	"github.com/go-logic/resolve/internal/lexer"
	"github.com/go-logic/resolve/internal/rerr"
)

// precedence mirrors token::Kind::precedence in the reference implementation:
// the five connectives each get their own binding power, end-of-input binds
// weaker than everything, and every other kind (parentheses, literals,
// command tokens, separators) defaults to 2 — low enough that no binary
// operator ever confuses it for an operand continuation.
func precedence(k lexer.Kind) int {
	switch k {
	case lexer.NOT:
		return 7
	case lexer.AND:
		return 6
	case lexer.OR:
		return 5
	case lexer.IMPLIES:
		return 4
	case lexer.EQUIV:
		return 3
	case lexer.EOF:
		return 1
	default:
		return 2
	}
}

// StmtKind identifies which statement form Parse returned.
type StmtKind int

const (
	StmtEOF StmtKind = iota
	StmtFormula
	StmtExecute
	StmtQuery
	StmtDelete
	StmtExit
	StmtHelp
)

func (k StmtKind) String() string {
	switch k {
	case StmtEOF:
		return "EOF"
	case StmtFormula:
		return "FORMULA"
	case StmtExecute:
		return "EXECUTE"
	case StmtQuery:
		return "QUERY"
	case StmtDelete:
		return "DELETE"
	case StmtExit:
		return "EXIT"
	case StmtHelp:
		return "HELP"
	default:
		return "?"
	}
}

// Statement is one parsed line of input. Formula is set iff Kind ==
// StmtFormula; Index is set iff Kind == StmtDelete.
type Statement struct {
	Kind    StmtKind
	Formula *formula.Formula
	Index   int
}

func (s *Statement) String() string {
	switch s.Kind {
	case StmtFormula:
		return s.Formula.String()
	case StmtDelete:
		return fmt.Sprintf("DELETE(%d)", s.Index)
	default:
		return s.Kind.String()
	}
}

// Parser holds a two-token lookahead window over a Scanner, an atom interner
// shared with the rest of the session, and the Context that resolves numeric
// back-references.
type Parser struct {
	sc   *lexer.Scanner
	in   *atom.Interner
	ctx  *context.Context
	curr lexer.Token
	peek lexer.Token
}

// New creates a Parser over input. Identifiers are interned through in;
// numeric back-references are resolved against ctx.
func New(input string, in *atom.Interner, ctx *context.Context) (*Parser, error) {
	sc, err := lexer.New(input)
	if err != nil {
		return nil, err
	}
	p := &Parser{sc: sc, in: in, ctx: ctx}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	p.curr = p.peek
	tok, err := p.sc.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

// ParseStatement consumes and returns the next statement, including its
// trailing separator. At end of input it returns a StmtEOF Statement and a
// nil error; it is safe to call again afterwards, always returning the same
// StmtEOF.
func (p *Parser) ParseStatement() (*Statement, error) {
	for p.curr.Kind == lexer.SEMI {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	switch p.curr.Kind {
	case lexer.EOF:
		return &Statement{Kind: StmtEOF}, nil
	case lexer.BANG:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &Statement{Kind: StmtExecute}, nil
	case lexer.QUESTION:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &Statement{Kind: StmtQuery}, nil
	case lexer.EXIT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &Statement{Kind: StmtExit}, nil
	case lexer.HELP:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &Statement{Kind: StmtHelp}, nil
	case lexer.MINUS:
		return p.parseDelete()
	default:
		f, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &Statement{Kind: StmtFormula, Formula: f}, nil
	}
}

func (p *Parser) parseDelete() (*Statement, error) {
	if err := p.advance(); err != nil { // past '-'
		return nil, err
	}
	if p.curr.Kind != lexer.NUMBER {
		return nil, rerr.NewParseError(p.curr.Text, p.curr.Row, p.curr.Col, "expected a formula number after '-'")
	}
	n, err := strconv.Atoi(p.curr.Text)
	if err != nil {
		return nil, rerr.NewParseError(p.curr.Text, p.curr.Row, p.curr.Col, "not a valid number")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectSemi(); err != nil {
		return nil, err
	}
	return &Statement{Kind: StmtDelete, Index: n}, nil
}

// Recover discards tokens up to and including the next statement separator
// (or end of input), letting a caller resume ParseStatement after an error
// without re-reporting the same broken statement. It never returns an error
// itself; a lex error encountered while skipping is swallowed, same as the
// token it replaces.
func (p *Parser) Recover() {
	for p.curr.Kind != lexer.SEMI && p.curr.Kind != lexer.EOF {
		if err := p.advance(); err != nil {
			return
		}
	}
	if p.curr.Kind == lexer.SEMI {
		_ = p.advance()
	}
}

func (p *Parser) expectSemi() error {
	if p.curr.Kind != lexer.SEMI {
		return rerr.NewParseError(p.curr.Text, p.curr.Row, p.curr.Col, "expected a statement separator")
	}
	return p.advance()
}

// parseExpr is the precedence-climbing loop: parse one prefix term, then keep
// folding in binary operators whose precedence is at least the caller's floor.
// Same-precedence chains recurse at their own operator's precedence, not
// precedence+1, so "a & b & c" parses right-associatively as "a & (b & c)" —
// matching recursive_pratt's call convention in the reference parser.
func (p *Parser) parseExpr(minPrecedence int) (*formula.Formula, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for minPrecedence <= precedence(p.curr.Kind) {
		var op formula.Op
		switch p.curr.Kind {
		case lexer.AND:
			op = formula.OpAnd
		case lexer.OR:
			op = formula.OpOr
		case lexer.IMPLIES:
			op = formula.OpImplies
		case lexer.EQUIV:
			op = formula.OpEquiv
		default:
			return left, nil
		}
		opPrecedence := precedence(p.curr.Kind)
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr(opPrecedence)
		if err != nil {
			return nil, err
		}
		left = formula.Binary(op, left, right)
	}
	return left, nil
}

func (p *Parser) parsePrefix() (*formula.Formula, error) {
	switch p.curr.Kind {
	case lexer.NOT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr(precedence(lexer.NOT))
		if err != nil {
			return nil, err
		}
		return formula.Not(right), nil
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if p.curr.Kind != lexer.RPAREN {
			return nil, rerr.NewParseError(p.curr.Text, p.curr.Row, p.curr.Col, "expected ')'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.IDENT:
		name := p.curr.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return formula.Leaf(p.in.Intern(name)), nil
	case lexer.NUMBER:
		n, err := strconv.Atoi(p.curr.Text)
		if err != nil {
			return nil, rerr.NewParseError(p.curr.Text, p.curr.Row, p.curr.Col, "not a valid number")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.ctx.Formula(n)
	default:
		return nil, rerr.NewParseError(p.curr.Text, p.curr.Row, p.curr.Col, "not the beginning of a formula")
	}
}

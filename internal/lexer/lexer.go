/*
Package lexer tokenizes resolution-engine input: identifiers, non-negative
integers, the five connectives, parentheses, statement separators and
single-character commands.

It wraps github.com/timtadh/lexmachine the way the teacher's
lr/scanner/lexmach package wraps it for LR parsing — one compiled DFA built
once at package init, a fresh lexmachine.Scanner per input via New — but
exposes a narrower, resolution-specific Token/Kind pair instead of the
teacher's generic gorgo.Token plus integer token ids, since this front end
has no grammar-table dependency on numeric token identities.
*/
package lexer

import (
	"fmt"

	"github.com/go-logic/resolve"
	"github.com/go-logic/resolve/internal/rerr"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'resolve.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("resolve.lexer")
}

// Kind classifies a Token.
type Kind int

const (
	EOF Kind = iota
	IDENT
	NUMBER
	EQUIV    // <=>
	IMPLIES  // =>
	OR       // |
	AND      // &
	NOT      // ~
	LPAREN   // (
	RPAREN   // )
	SEMI     // ; or newline
	BANG     // ! (execute)
	QUESTION // ? (print context)
	MINUS    // - (delete prefix)
	EXIT
	HELP
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case IDENT:
		return "identifier"
	case NUMBER:
		return "number"
	case EQUIV:
		return "<=>"
	case IMPLIES:
		return "=>"
	case OR:
		return "|"
	case AND:
		return "&"
	case NOT:
		return "~"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case SEMI:
		return ";"
	case BANG:
		return "!"
	case QUESTION:
		return "?"
	case MINUS:
		return "-"
	case EXIT:
		return "exit"
	case HELP:
		return "help"
	default:
		return "?"
	}
}

// Token is one lexed unit: a kind, the literal text it came from, and its
// position for diagnostics.
type Token struct {
	Kind   Kind
	Text   string
	Row    int
	Col    int
	Offset int // start byte offset in the input
	Length int // byte length
}

// TokType, Lexeme and Span implement the root package's Token interface.
func (t Token) TokType() resolve.TokType { return resolve.TokType(t.Kind) }
func (t Token) Lexeme() string           { return t.Text }
func (t Token) Span() resolve.Span {
	return resolve.Span{uint64(t.Offset), uint64(t.Offset + t.Length)}
}
func (t Token) String() string { return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Row, t.Col) }

var _ resolve.Token = Token{}

var machine *lexmachine.Lexer

func init() {
	lex := lexmachine.NewLexer()
	add := func(pattern string, kind Kind) {
		lex.Add([]byte(pattern), makeAction(kind))
	}
	add(`exit`, EXIT)
	add(`help`, HELP)
	add(`<=>`, EQUIV)
	add(`=>`, IMPLIES)
	add(`\|`, OR)
	add(`&`, AND)
	add(`~`, NOT)
	add(`\(`, LPAREN)
	add(`\)`, RPAREN)
	add(`;`, SEMI)
	add("\n", SEMI)
	add(`!`, BANG)
	add(`\?`, QUESTION)
	add(`-`, MINUS)
	add(`[0-9]+`, NUMBER)
	add(`[A-Za-z][A-Za-z0-9_]*`, IDENT)
	lex.Add([]byte(`( |\t|\r)`), skip)
	if err := lex.Compile(); err != nil {
		// The pattern set above is fixed at compile time of this package;
		// a failure here is a programming error, not a runtime condition.
		panic(fmt.Sprintf("lexer: failed to compile DFA: %v", err))
	}
	machine = lex
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Kind:   kind,
			Text:   string(m.Bytes),
			Row:    m.StartLine,
			Col:    m.StartColumn,
			Offset: m.TC,
			Length: len(m.Bytes),
		}, nil
	}
}

// Scanner tokenizes one input string.
type Scanner struct {
	s     *lexmachine.Scanner
	input string
}

// New creates a Scanner over input.
func New(input string) (*Scanner, error) {
	s, err := machine.Scanner([]byte(input))
	if err != nil {
		return nil, fmt.Errorf("lexer: %w", err)
	}
	return &Scanner{s: s, input: input}, nil
}

// Next returns the next token. At end of input it returns a Token with Kind
// EOF and a nil error. Bytes the DFA cannot classify are reported as
// *rerr.LexInvalidError with the offending byte's row/column; the scanner
// resynchronises by discarding that single byte and continuing.
func (sc *Scanner) Next() (Token, error) {
	tok, err, eof := sc.s.Next()
	if ui, ok := err.(*machines.UnconsumedInput); ok {
		failTC := ui.FailTC
		row, col := rowCol(sc.input, failTC)
		text := ""
		if failTC < len(sc.input) {
			text = string(sc.input[failTC])
		}
		sc.s.TC = failTC + 1
		tracer().Infof("lex invalid at %d:%d: %q", row, col, text)
		return Token{}, rerr.NewLexInvalid(text, row, col)
	}
	if err != nil {
		return Token{}, fmt.Errorf("lexer: %w", err)
	}
	if eof {
		return Token{Kind: EOF}, nil
	}
	return tok.(Token), nil
}

// rowCol converts a byte offset into a 1-based row and 0-based column by
// counting newlines in input up to offset.
func rowCol(input string, offset int) (row, col int) {
	row = 1
	lineStart := 0
	for i := 0; i < offset && i < len(input); i++ {
		if input[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	return row, offset - lineStart
}

package resolve

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Concrete values are defined by
// package lexer.
type TokType int

// Token represents an input token, produced by the lexer and consumed by the
// parser.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input, from byte offset `From` up to (excluding)
// byte offset `To`. Used by the lexer to tag tokens.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

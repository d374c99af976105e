/*
Package rerr defines the error kinds shared across the lexer, parser, CNF
transformer and context: LexInvalid, ParseError, IndexOutOfBound and
MalformedAST (§7 of the spec). Each kind is its own struct type, the way
original_source/src/error.rs keeps one struct per error kind rather than a
single error code enum; translated to Go each implements the error interface
directly instead of deriving a trait.
*/
package rerr

import "fmt"

// LexInvalidError is raised when the scanner consumes bytes it cannot
// classify into any token.
type LexInvalidError struct {
	Text     string
	Row, Col int
}

func NewLexInvalid(text string, row, col int) *LexInvalidError {
	return &LexInvalidError{Text: text, Row: row, Col: col}
}

func (e *LexInvalidError) Error() string {
	return fmt.Sprintf("invalid token [%d:%d]: %s", e.Row, e.Col, e.Text)
}

// ParseError is raised when the token stream violates the grammar.
type ParseError struct {
	Got      string
	Row, Col int
	Message  string
}

func NewParseError(got string, row, col int, message string) *ParseError {
	return &ParseError{Got: got, Row: row, Col: col, Message: message}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%d:%d]: got=%q: %s", e.Row, e.Col, e.Got, e.Message)
}

// IndexOutOfBoundError is raised when a `-N` command or a numeric formula
// reference targets a nonexistent context entry.
type IndexOutOfBoundError struct {
	Index, Len int
}

func NewIndexOutOfBound(index, length int) *IndexOutOfBoundError {
	return &IndexOutOfBoundError{Index: index, Len: length}
}

func (e *IndexOutOfBoundError) Error() string {
	return fmt.Sprintf("%d >= %d (number of formulas)", e.Index, e.Len)
}

// MalformedASTError is raised when the CNF stages encounter a tree shape
// that should already have been eliminated by an earlier stage (an
// IMPLIES/EQUIV surviving into distribution, a non-leaf NOT child, or any
// operator outside the five recognised connectives). It never reaches a
// user-entered formula directly — it signals a defensive internal-assertion
// failure rather than a user mistake, but it is still reported rather than
// panicking (§7: "Nothing in the core panics on user-reachable paths").
type MalformedASTError struct {
	Message string
}

func NewMalformedAST(message string) *MalformedASTError {
	return &MalformedASTError{Message: message}
}

func (e *MalformedASTError) Error() string {
	return fmt.Sprintf("malformed AST: %s", e.Message)
}

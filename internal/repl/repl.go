/*
Package repl drives one interactive or batch session: it owns the atom
interner and the Context, feeds input through the parser, and dispatches
parsed statements to the Context and the resolution engine.

Interactive mode is grounded on the teacher's terex/terexlang/trepl/repl.go
main loop (chzyer/readline for line editing and history, pterm for colored
status messages); batch mode mirrors that file's loadInitFile, generalised to
a stream-of-statements Parser instead of one-s-expr-per-line.
*/
package repl

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logic/resolve/internal/atom"
	"github.com/go-logic/resolve/internal/config"
	rcontext "github.com/go-logic/resolve/internal/context"
	"github.com/go-logic/resolve/internal/parser"
	"github.com/go-logic/resolve/internal/resolution"
	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer traces with key 'resolve.repl'.
func tracer() tracing.Trace {
	return tracing.Select("resolve.repl")
}

const helpText = `You can insert a formula using the following operators:
    ~a       -> "not a"
    a & b    -> "a and b"
    a | b    -> "a or b"
    a => b   -> "a then b"
    a <=> b  -> "a if and only if b"
The ';' is optional at the end of a line:
    ~a
    a & b
are 2 formulas.
Parentheses are valid syntax:
    a & (b <=> c)
The precedence of the operators, in decreasing order:
    ~  &  |  =>  <=>
There exist some special commands:
    !        -> "find box (run resolution on the current context)"
    ?        -> "print formulas currently in use"
    -1       -> "delete formula_1"
    0 <=> ~1 -> "formula_0 if and only if not formula_1"
    exit     -> "exit the program"
    help     -> "print this menu"
You can also call the program followed by an input file to run in batch mode.`

// Session is one REPL's mutable state: the interner, the running context,
// and the options it was built with.
type Session struct {
	opts config.Options
	in   *atom.Interner
	ctx  *rcontext.Context
	out  io.Writer
}

// New creates a Session. out receives formula/context/trace output; errors
// go to pterm's configured error style regardless of out.
func New(opts config.Options, out io.Writer) *Session {
	return &Session{opts: opts, in: atom.New(), ctx: rcontext.New(), out: out}
}

// RunBatch parses and executes every statement in input in order, the way a
// one-argument invocation processes a whole file as a single batch. A parse
// error is reported and the parser recovers to the next statement; it does
// not abort the batch.
func (s *Session) RunBatch(input string) error {
	p, err := parser.New(input, s.in, s.ctx)
	if err != nil {
		return err
	}
	for {
		stmt, err := p.ParseStatement()
		if err != nil {
			pterm.Error.Println(err.Error())
			p.Recover()
			continue
		}
		if stmt.Kind == parser.StmtEOF {
			return nil
		}
		quit, err := s.dispatch(stmt)
		if err != nil {
			pterm.Error.Println(err.Error())
		}
		if quit {
			return nil
		}
	}
}

// RunFile opens path and runs it as a batch, the way loadInitFile does for
// the teacher's REPL.
func (s *Session) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	return s.RunBatch(string(data))
}

// RunInteractive first runs opts.InitFile as a batch, if one is set, then
// starts a readline-backed prompt loop, reading one line at a
// time until EOF (ctrl-D) or an "exit" statement. Each line is parsed and
// executed independently, since the statement grammar never spans lines.
func (s *Session) RunInteractive() error {
	if s.opts.InitFile != "" {
		if err := s.RunFile(s.opts.InitFile); err != nil {
			return err
		}
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      s.opts.Prompt,
		HistoryFile: s.opts.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	defer rl.Close()

	pterm.Info.Println("resolve: propositional resolution REPL — \"help;\" for help, ctrl-D to quit")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		if line == "" {
			continue
		}
		quit, err := s.evalLine(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("bye")
	return nil
}

// evalLine parses and runs every statement on one line of interactive input.
// A trailing newline is appended first so the line's last statement always
// sees a terminator, the same as every other line the scanner processes.
func (s *Session) evalLine(line string) (bool, error) {
	p, err := parser.New(line+"\n", s.in, s.ctx)
	if err != nil {
		return false, err
	}
	for {
		stmt, err := p.ParseStatement()
		if err != nil {
			return false, err
		}
		if stmt.Kind == parser.StmtEOF {
			return false, nil
		}
		quit, err := s.dispatch(stmt)
		if err != nil {
			return false, err
		}
		if quit {
			return true, nil
		}
	}
}

// dispatch runs one already-parsed statement against the session state.
func (s *Session) dispatch(stmt *parser.Statement) (quit bool, err error) {
	switch stmt.Kind {
	case parser.StmtFormula:
		if _, err := s.ctx.Push(stmt.Formula); err != nil {
			return false, err
		}
	case parser.StmtDelete:
		if err := s.ctx.Delete(stmt.Index); err != nil {
			return false, err
		}
	case parser.StmtQuery:
		fmt.Fprintln(s.out, s.ctx.List())
	case parser.StmtExecute:
		s.execute()
	case parser.StmtExit:
		return true, nil
	case parser.StmtHelp:
		fmt.Fprintln(s.out, helpText)
	}
	return false, nil
}

// execute runs resolution to completion on a fresh snapshot of the context
// and prints either the derivation trace or a satisfiability verdict.
func (s *Session) execute() {
	snap := s.ctx.Snapshot()
	found := resolution.FindBox(context.Background(), snap)
	if !found {
		fmt.Fprintln(s.out, "satisfiable (no contradiction found)")
		return
	}
	trace := resolution.TraceFromBox(snap)
	fmt.Fprintln(s.out, trace)
}

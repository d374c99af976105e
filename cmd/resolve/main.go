/*
Command resolve is a propositional-resolution REPL and batch runner.

Zero arguments enter an interactive prompt reading from standard input. One
argument names a file whose contents are run as a single batch. More than
one argument prints a usage string and exits zero — see §6 of the engine's
external-interface contract.

Grounded on the teacher's terex/terexlang/trepl/repl.go main(): flag-based
trace level and init-file selection, gologadapter installed as the trace
sink, pterm for the startup banner.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-logic/resolve/internal/config"
	"github.com/go-logic/resolve/internal/repl"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

func tracer() tracing.Trace {
	return tracing.Select("resolve.main")
}

const usage = `usage: resolve [file]

  resolve            start an interactive REPL on standard input
  resolve FILE        run FILE as a batch of statements, then exit
`

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	history := flag.String("history", "", "readline history file (interactive mode only)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	args := flag.Args()
	if len(args) > 1 {
		fmt.Print(usage)
		os.Exit(0)
	}

	opts := config.Default(config.WithHistoryFile(*history))
	s := repl.New(opts, os.Stdout)

	if len(args) == 1 {
		if err := s.RunFile(args[0]); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}

	if err := s.RunInteractive(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

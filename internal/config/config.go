/*
Package config holds the small set of options a REPL session is constructed
from: prompt text, history file path, initial trace level and an optional
file to load before handing control to the user.

It generalises the flag.String-per-option pattern in the teacher's
terex/terexlang/trepl/repl.go main() into a reusable Options/Option pair, so
cmd/resolve and tests can both build a session without going through the flag
package directly.
*/
package config

import "github.com/npillmayer/schuko/tracing"

// Options configures one REPL session. The zero value is not meant to be
// used directly — construct with Default and override via With... options.
type Options struct {
	Prompt      string
	HistoryFile string
	TraceLevel  tracing.TraceLevel
	InitFile    string
}

// Option mutates an Options in place.
type Option func(*Options)

// Default returns the baseline options, then applies opts in order.
func Default(opts ...Option) Options {
	o := Options{
		Prompt:     "resolve> ",
		TraceLevel: tracing.LevelInfo,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPrompt overrides the REPL's prompt string.
func WithPrompt(prompt string) Option {
	return func(o *Options) { o.Prompt = prompt }
}

// WithHistoryFile sets the readline history file path. An empty path (the
// default) disables persistent history.
func WithHistoryFile(path string) Option {
	return func(o *Options) { o.HistoryFile = path }
}

// WithTraceLevel overrides the initial trace level.
func WithTraceLevel(level tracing.TraceLevel) Option {
	return func(o *Options) { o.TraceLevel = level }
}

// WithInitFile names a file of statements to run before the REPL starts
// reading from the user. Batch mode (Session.RunFile) does not read it.
func WithInitFile(path string) Option {
	return func(o *Options) { o.InitFile = path }
}

// Package command routes a parsed command line to its handler and runs the
// whole argv -> reporter flow for a program.
package command

import (
	"context"
	"sort"

	"clikit/internal/args"
	"clikit/internal/diag"
)

// Handler runs one subcommand. Options are a private copy. Failures are
// either logged through rep or returned; a returned error is converted with
// diag.FromError by the runner.
type Handler func(ctx context.Context, name string, opts args.Options, rep diag.Reporter) error

// Handlers maps subcommand names to handlers.
type Handlers map[string]Handler

// Names returns the registered subcommand names, sorted.
func (h Handlers) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch calls the handler registered for cmd.Name. An unknown name fails
// with NoMatchingSubcmdName and no handler runs.
func Dispatch(ctx context.Context, cmd *args.Command, handlers Handlers, rep diag.Reporter) error {
	h, ok := handlers[cmd.Name]
	if !ok || h == nil {
		return &args.Error{Kind: args.NoMatchingSubcmdName, Token: cmd.Name}
	}
	if rep == nil {
		rep = diag.Discard
	}
	return h(ctx, cmd.Name, cmd.Options.Clone(), rep)
}

type showDetailsKey struct{}

// WithShowDetails records the -det switch for handlers.
func WithShowDetails(ctx context.Context, show bool) context.Context {
	return context.WithValue(ctx, showDetailsKey{}, show)
}

// ShowDetails reports whether the run was started with details enabled.
func ShowDetails(ctx context.Context) bool {
	show, _ := ctx.Value(showDetailsKey{}).(bool)
	return show
}

package main

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"clikit/internal/args"
	"clikit/internal/command"
	"clikit/internal/diag"
	"clikit/internal/fileman"
	"clikit/internal/messages"
)

var demoCmd = &cobra.Command{
	Use:   "demo -- [subcommand] [-option values...]",
	Short: "Run a sample program built on the command runner",
	Long: `Demo feeds everything after "--" to a runner with three handlers:
run (the default), echo (logs every option) and fail (returns an error).
The reserved options -det, -lim and -lang work as in any clikit program`,
	RunE: runDemo,
}

func demoHandlers() command.Handlers {
	return command.Handlers{
		"run": func(_ context.Context, _ string, _ args.Options, rep diag.Reporter) error {
			rep.Log(diag.Notice(messages.Ref(messages.DemoNoteHello)), false)
			return nil
		},
		"echo": func(ctx context.Context, _ string, opts args.Options, rep diag.Reporter) error {
			for _, key := range opts.Keys() {
				rep.Log(diag.Notice(messages.Ref(messages.DemoNoteEcho)+" "+key).
					With(strings.Join(opts.Values(key), " ")), command.ShowDetails(ctx))
			}
			return nil
		},
		"fail": func(context.Context, string, args.Options, diag.Reporter) error {
			return &demoError{cause: errors.New("requested by the fail subcommand")}
		},
	}
}

type demoError struct {
	cause error
}

func (e *demoError) Error() string { return e.cause.Error() }

func (e *demoError) Diagnostic() diag.Log {
	return diag.Error(messages.Ref(messages.DemoErrFailed)).
		With(messages.Field(messages.CmdCause, e.cause.Error())).
		WithOptional(messages.Field(messages.DemoHint, "run without -det to hide this line"))
}

func runDemo(cmd *cobra.Command, argv []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	runner := &command.Runner{
		DefaultName: "run",
		Handlers:    demoHandlers(),
		Out:         cmd.OutOrStdout(),
		FS:          fileman.OS,
		Config:      &settings,
	}
	if code := runner.Run(cmd.Context(), append([]string{"clikit demo"}, argv...)); code != command.ExitOK {
		return errReported
	}
	return nil
}

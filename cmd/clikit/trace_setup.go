package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clikit/internal/trace"
)

// setupTracing builds the tracer from CLIKIT_TRACE* and the trace flags
// (flags win) and attaches it to the command context.
func setupTracing(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	cfg, err := trace.FromEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}

	if traceOutput != "" {
		cfg.OutputPath = traceOutput
		// an output without a level means phase tracing
		if cfg.Level == trace.LevelOff {
			cfg.Level = trace.LevelPhase
		}
	}
	if levelStr != "" {
		if cfg.Level, err = trace.ParseLevel(levelStr); err != nil {
			return nil, fmt.Errorf("invalid trace level: %w", err)
		}
	}
	if modeStr != "" {
		if cfg.Mode, err = trace.ParseMode(modeStr); err != nil {
			return nil, fmt.Errorf("invalid trace mode: %w", err)
		}
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	span, ctx := trace.Start(ctx, trace.ScopeDriver, cmd.CommandPath())
	cmd.SetContext(ctx)

	return func() {
		span.End("")
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

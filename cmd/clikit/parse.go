package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"clikit/internal/args"
	"clikit/internal/diag"
	"clikit/internal/trace"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] -- <args...>",
	Short: "Parse a command line and show the subcommand and options",
	Long: `Parse runs the argument parser on everything after "--" as if it were a
program's argv (without the program name) and prints the result`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("default", "run", "subcommand name used when none is given")
	addReporterFlags(parseCmd)
}

func runParse(cmd *cobra.Command, argv []string) error {
	defaultName, err := cmd.Flags().GetString("default")
	if err != nil {
		return fmt.Errorf("failed to get default flag: %w", err)
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := reporterFlags(cmd, &settings); err != nil {
		return err
	}

	span, _ := trace.Start(cmd.Context(), trace.ScopeStage, "parse")
	parsed, err := args.Parse(append([]string{cmd.Root().Name()}, argv...), defaultName)
	span.End("")
	if err != nil {
		rep, rerr := newReporter(cmd, settings)
		if rerr != nil {
			return rerr
		}
		rep.Log(diag.FromError(err), settings.ShowDetails)
		return errReported
	}

	printCommand(cmd.OutOrStdout(), parsed, styler{enabled: colorEnabled(cmd, settings)})
	return nil
}

func printCommand(out io.Writer, c *args.Command, st styler) {
	fmt.Fprintf(out, "%s %s\n", st.render(titleStyle, "subcommand:"), c.Name)
	if len(c.Options) == 0 {
		fmt.Fprintln(out, st.render(dimStyle, "(no options)"))
		return
	}
	for _, key := range c.Options.Keys() {
		vals := c.Options.Values(key)
		quoted := make([]string, len(vals))
		for i, v := range vals {
			quoted[i] = st.render(valueStyle, fmt.Sprintf("%q", v))
		}
		fmt.Fprintf(out, "  %s [%s]\n", st.render(keyStyle, key), strings.Join(quoted, ", "))
	}
}

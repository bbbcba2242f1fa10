package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clikit/internal/diag"
	"clikit/internal/fileman"
	"clikit/internal/langpack"
	"clikit/internal/trace"
)

const textExt = ".lang"

var langpackCmd = &cobra.Command{
	Use:   "langpack",
	Short: "Check and compile language packs",
}

var langpackLintCmd = &cobra.Command{
	Use:   "lint [flags] <file.lang|directory>",
	Short: "Report skipped lines and duplicated keys in language packs",
	Long: `Lint checks one .lang file or every .lang file in a directory (in
parallel) and reports suspicious lines through the console reporter`,
	Args: cobra.ExactArgs(1),
	RunE: runLangpackLint,
}

var langpackCompileCmd = &cobra.Command{
	Use:   "compile <in.lang> [out.langc]",
	Short: "Write the binary form of a language pack",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runLangpackCompile,
}

func init() {
	langpackLintCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	langpackLintCmd.Flags().Bool("strict", false, "fail when any warning is reported")
	addReporterFlags(langpackLintCmd)
	addReporterFlags(langpackCompileCmd)

	langpackCmd.AddCommand(langpackLintCmd)
	langpackCmd.AddCommand(langpackCompileCmd)
}

func runLangpackLint(cmd *cobra.Command, argv []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := reporterFlags(cmd, &settings); err != nil {
		return err
	}
	rep, err := newReporter(cmd, settings)
	if err != nil {
		return err
	}

	target := argv[0]
	files := []string{target}
	if fileman.OS.IsDir(target) {
		if files, err = fileman.OS.ListFiles(target, textExt); err != nil {
			rep.Log(diag.FromError(err), settings.ShowDetails)
			return errReported
		}
	}

	span, ctx := trace.Start(cmd.Context(), trace.ScopeStage, "lint")
	reports, err := langpack.LintFiles(ctx, fileman.OS, files, jobs)
	span.WithExtra("files", fmt.Sprint(len(files))).End("")
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	// reports are in file order, so output is deterministic
	collected := &diag.Collector{}
	for _, r := range reports {
		for _, entry := range r.Diagnostics() {
			collected.Log(entry, settings.ShowDetails)
		}
	}
	failed := collected.HasErrors() || (strict && hasWarnings(collected))
	collected.Flush(rep)

	if failed {
		return errReported
	}
	return nil
}

func hasWarnings(c *diag.Collector) bool {
	for _, e := range c.Entries() {
		if e.Log.Kind == diag.KindWarning {
			return true
		}
	}
	return false
}

func runLangpackCompile(cmd *cobra.Command, argv []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := reporterFlags(cmd, &settings); err != nil {
		return err
	}

	fail := func(err error) error {
		rep, rerr := newReporter(cmd, settings)
		if rerr != nil {
			return rerr
		}
		rep.Log(diag.FromError(err), settings.ShowDetails)
		return errReported
	}

	in, err := fileman.OS.AbsPath(argv[0])
	if err != nil {
		return fail(err)
	}
	out := fileman.RenameExt(in, strings.TrimPrefix(langpack.BinaryExt, "."))
	if len(argv) == 2 {
		if out, err = fileman.OS.AbsPath(argv[1]); err != nil {
			return fail(err)
		}
	}
	if in == out {
		return fmt.Errorf("output %q would overwrite the input", out)
	}

	lp, err := langpack.Load(fileman.OS, in)
	if err != nil {
		return fail(err)
	}
	var buf bytes.Buffer
	if err := lp.Encode(&buf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", in, err)
	}
	if err := fileman.OS.WriteAll(out, buf.Bytes()); err != nil {
		return fail(err)
	}

	st := styler{enabled: colorEnabled(cmd, settings)}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s (%d entries)\n", st.render(okStyle, "compiled"), in, out, lp.Len())
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clikit/internal/diag"
	"clikit/internal/fileman"
	"clikit/internal/langpack"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] <template>",
	Short: "Resolve {^key} placeholders in a template",
	Long: `Translate resolves placeholders against the built-in messages of the
selected language, overlaid by --pack when given (.lang or .langc)`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().String("pack", "", "language pack file overlaying the built-in messages")
	translateCmd.Flags().Bool("bare", false, "ignore the built-in messages")
	addReporterFlags(translateCmd)
}

func runTranslate(cmd *cobra.Command, argv []string) error {
	packPath, err := cmd.Flags().GetString("pack")
	if err != nil {
		return fmt.Errorf("failed to get pack flag: %w", err)
	}
	bare, err := cmd.Flags().GetBool("bare")
	if err != nil {
		return fmt.Errorf("failed to get bare flag: %w", err)
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := reporterFlags(cmd, &settings); err != nil {
		return err
	}

	lp, _, err := builtinPack(settings.Lang)
	if err != nil {
		return err
	}
	if bare {
		lp = langpack.Empty()
	}
	if packPath != "" {
		top, err := loadPack(packPath)
		if err != nil {
			rep, rerr := newReporter(cmd, settings)
			if rerr != nil {
				return rerr
			}
			rep.Log(diag.FromError(err), settings.ShowDetails)
			return errReported
		}
		lp = lp.Overlay(top)
	}

	fmt.Fprintln(cmd.OutOrStdout(), lp.Translate(argv[0]))
	return nil
}

func loadPack(path string) (*langpack.Langpack, error) {
	abs, err := fileman.OS.AbsPath(path)
	if err != nil {
		return nil, err
	}
	return langpack.LoadFile(fileman.OS, abs)
}

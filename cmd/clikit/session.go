package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clikit/internal/config"
	"clikit/internal/console"
	"clikit/internal/langpack"
	"clikit/internal/messages"
)

// loadSettings reads --config (or the nearest config file) and applies the
// --color flag on top.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	root := cmd.Root()
	path, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var settings config.Settings
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return config.Settings{}, err
		}
		if settings, err = cfg.Settings(); err != nil {
			return config.Settings{}, fmt.Errorf("%s: %w", path, err)
		}
		settings.Path = path
	} else if settings, err = config.Discover("."); err != nil {
		return config.Settings{}, err
	}

	colorFlag, err := root.PersistentFlags().GetString("color")
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	if colorFlag != "" {
		if settings.Color, err = console.ParseColorMode(colorFlag); err != nil {
			return config.Settings{}, err
		}
	}
	return settings, nil
}

// addReporterFlags registers the console flags shared by reporting commands.
func addReporterFlags(c *cobra.Command) {
	c.Flags().String("lim", "", "log limit: a number or 'no' (default from config)")
	c.Flags().Bool("det", false, "show optional details of every entry")
	c.Flags().String("lang", "", "message language (default from config or locale)")
}

// reporterFlags applies the shared reporter flags to settings.
func reporterFlags(cmd *cobra.Command, settings *config.Settings) error {
	lim, err := cmd.Flags().GetString("lim")
	if err != nil {
		return fmt.Errorf("failed to get lim flag: %w", err)
	}
	if lim != "" {
		if settings.Limit, err = console.ParseLimit(lim); err != nil {
			return err
		}
	}
	det, err := cmd.Flags().GetBool("det")
	if err != nil {
		return fmt.Errorf("failed to get det flag: %w", err)
	}
	settings.ShowDetails = settings.ShowDetails || det

	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	if lang != "" {
		settings.Lang = lang
	}
	return nil
}

// newReporter creates a console reporter on the command's stdout using the
// built-in messages of the configured language.
func newReporter(cmd *cobra.Command, settings config.Settings) (*console.Reporter, error) {
	lp, _, err := builtinPack(settings.Lang)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	f, _ := out.(*os.File)
	width := settings.Width
	if width == 0 {
		width = console.TerminalWidth(f)
	}
	return console.New(lp, console.Options{
		Out:   out,
		Color: settings.Color.Enabled(f),
		Width: width,
		Limit: settings.Limit,
	}), nil
}

// builtinPack returns the built-in messages for the best match of lang (or
// the locale environment) and the matched language.
func builtinPack(lang string) (*langpack.Langpack, string, error) {
	tbl, err := messages.Builtin()
	if err != nil {
		return nil, "", err
	}
	requested := []string{lang}
	if lang == "" {
		requested = []string{os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")}
	}
	matched := tbl.Match(requested...)
	return langpack.New(tbl.Entries(matched)), matched, nil
}

// colorEnabled resolves colour for plain (non-reporter) command output.
func colorEnabled(cmd *cobra.Command, settings config.Settings) bool {
	f, _ := cmd.OutOrStdout().(*os.File)
	return settings.Color.Enabled(f)
}

// Package config loads reporter defaults from clikit.toml or clikit.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"clikit/internal/console"
)

// Candidate file names, checked in this order in every directory.
var FileNames = []string{"clikit.toml", "clikit.yaml", "clikit.yml"}

// Config is the decoded file.
type Config struct {
	Console ConsoleConfig `toml:"console" yaml:"console"`
}

// ConsoleConfig holds reporter defaults. Zero values mean "not set".
type ConsoleConfig struct {
	Lang        string `toml:"lang" yaml:"lang"`
	LogLimit    string `toml:"log_limit" yaml:"log_limit"`
	ShowDetails bool   `toml:"show_details" yaml:"show_details"`
	Color       string `toml:"color" yaml:"color"`
	Width       int64  `toml:"width" yaml:"width"`
}

// Settings are the validated values a runner applies.
type Settings struct {
	Lang        string
	Limit       console.Limit
	ShowDetails bool
	Color       console.ColorMode
	Width       int
	// Path is the file the settings came from, empty for defaults.
	Path string
}

// Defaults returns the settings used when no file is found.
func Defaults() Settings {
	return Settings{
		Limit: console.Limited(console.DefaultLimit),
		Color: console.ColorAuto,
	}
}

// Find walks up from startDir looking for one of FileNames.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path by extension.
func Load(path string) (Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%s: failed to read: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%s: unsupported config format", path)
	}
	return cfg, nil
}

// Discover finds and loads the nearest config file. Without one it returns
// Defaults().
func Discover(startDir string) (Settings, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return Defaults(), nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := cfg.Settings()
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Settings validates the decoded values.
func (c Config) Settings() (Settings, error) {
	s := Defaults()
	cc := c.Console
	s.Lang = strings.TrimSpace(cc.Lang)
	s.ShowDetails = cc.ShowDetails

	if strings.TrimSpace(cc.LogLimit) != "" {
		limit, err := console.ParseLimit(cc.LogLimit)
		if err != nil {
			return Settings{}, fmt.Errorf("[console].log_limit: %w", err)
		}
		s.Limit = limit
	}

	mode, err := console.ParseColorMode(cc.Color)
	if err != nil {
		return Settings{}, fmt.Errorf("[console].color: %w", err)
	}
	s.Color = mode

	if cc.Width < 0 {
		return Settings{}, fmt.Errorf("[console].width must not be negative, got %d", cc.Width)
	}
	width, err := safecast.Conv[int](cc.Width)
	if err != nil {
		return Settings{}, fmt.Errorf("[console].width: %w", err)
	}
	s.Width = width
	return s, nil
}

package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"clikit/internal/diag"
)

var kindColors = map[diag.Kind]color.Attribute{
	diag.KindError:   color.FgRed,
	diag.KindWarning: color.FgYellow,
	diag.KindNotice:  color.FgBlue,
}

// ColorMode selects when tags are coloured.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

func ParseColorMode(value string) (ColorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "on":
		return ColorOn, nil
	case "off":
		return ColorOff, nil
	default:
		return "", fmt.Errorf("invalid color value %q (expected auto|on|off)", value)
	}
}

// Enabled resolves the mode for output f.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return AutoColor(f)
	}
}

// AutoColor reports whether f is a terminal and NO_COLOR is unset.
func AutoColor(f *os.File) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of f, or 0 when f is not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

func newTagColors(enabled bool) map[diag.Kind]*color.Color {
	out := make(map[diag.Kind]*color.Color, len(kindColors))
	for k, attr := range kindColors {
		c := color.New(attr)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		out[k] = c
	}
	return out
}

// Package version holds build metadata for the clikit binary.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var partColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Info is a trimmed snapshot of the build metadata.
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
}

// Get returns the current metadata; an empty version reads "dev".
func Get() Info {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	return Info{
		Version:   v,
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
}

// Colored renders "major.minor.patch[-suffix]" with each number in its own
// colour. Versions that do not have three dot-separated parts are returned
// unchanged.
func (i Info) Colored(enabled bool) string {
	core, suffix, hasSuffix := strings.Cut(i.Version, "-")
	parts := strings.Split(core, ".")
	if !enabled || len(parts) != len(partColors) {
		return i.Version
	}
	var b strings.Builder
	for n, p := range parts {
		if n > 0 {
			b.WriteByte('.')
		}
		c := *partColors[n]
		c.EnableColor()
		b.WriteString(c.Sprint(p))
	}
	if hasSuffix {
		b.WriteByte('-')
		b.WriteString(suffix)
	}
	return b.String()
}

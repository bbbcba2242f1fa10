package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if got := Get().Version; got != Version {
		t.Errorf("Get().Version = %q, want %q", got, Version)
	}
}

func TestGet_TrimsAndDefaults(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "  "
	GitCommit = " abc123 \n"
	BuildDate = "2024-01-15T10:30:00Z"

	info := Get()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
	if info.GitCommit != "abc123" {
		t.Errorf("GitCommit = %q", info.GitCommit)
	}
	if info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q", info.BuildDate)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		version string
		enabled bool
		plain   bool
	}{
		{"0.1.0-dev", true, false},
		{"1.2.3", true, false},
		{"1.2.3-rc.1+build.123", true, false},
		{"1.2.3", false, true},
		{"dev", true, true},
		{"1.2", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got := Info{Version: tt.version}.Colored(tt.enabled)
			if tt.plain {
				if got != tt.version {
					t.Fatalf("Colored = %q, want %q", got, tt.version)
				}
				return
			}
			if !strings.Contains(got, "\x1b[") {
				t.Fatalf("expected escapes in %q", got)
			}
			if _, suffix, ok := strings.Cut(tt.version, "-"); ok && !strings.HasSuffix(got, "-"+suffix) {
				t.Fatalf("suffix lost: %q", got)
			}
		})
	}
}

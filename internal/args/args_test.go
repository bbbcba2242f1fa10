package args

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"clikit/internal/diag"
	"clikit/internal/messages"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want *Command
	}{
		{
			name: "program only",
			argv: []string{"prog"},
			want: &Command{Name: "run", Options: Options{}},
		},
		{
			name: "empty argv",
			argv: nil,
			want: &Command{Name: "run", Options: Options{}},
		},
		{
			name: "subcommand without options",
			argv: []string{"prog", "build"},
			want: &Command{Name: "build", Options: Options{}},
		},
		{
			name: "subcommand with options",
			argv: []string{"prog", "build", "-out", "a.bin", "-v"},
			want: &Command{Name: "build", Options: Options{
				"-out": {"a.bin"},
				"-v":   {},
			}},
		},
		{
			name: "options without subcommand",
			argv: []string{"prog", "-lim", "no", "-det"},
			want: &Command{Name: "run", Options: Options{
				"-lim": {"no"},
				"-det": {},
			}},
		},
		{
			name: "values keep argv order",
			argv: []string{"prog", "cc", "-src", "b.c", "a.c", "c.c", "-o", "x"},
			want: &Command{Name: "cc", Options: Options{
				"-src": {"b.c", "a.c", "c.c"},
				"-o":   {"x"},
			}},
		},
		{
			name: "double dash is an option key",
			argv: []string{"prog", "--", "x"},
			want: &Command{Name: "run", Options: Options{"--": {"x"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv, "run")
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.argv, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.argv, diff)
			}
		})
	}
}

func TestParseNoOptionTokens(t *testing.T) {
	for _, argv := range [][]string{
		{"prog"},
		{"prog", "x"},
	} {
		got, err := Parse(argv, "def")
		if err != nil {
			t.Fatalf("Parse(%q): %v", argv, err)
		}
		if len(got.Options) != 0 {
			t.Fatalf("Parse(%q) options = %v, want empty", argv, got.Options)
		}
		want := "def"
		if len(argv) > 1 {
			want = argv[1]
		}
		if got.Name != want {
			t.Fatalf("Parse(%q) name = %q, want %q", argv, got.Name, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		kind     ErrorKind
		token    string
		sentinel error
	}{
		{
			name:     "duplicated key",
			argv:     []string{"prog", "build", "-v", "-o", "x", "-v"},
			kind:     DuplicatedOptionName,
			token:    "-v",
			sentinel: ErrDuplicatedOptionName,
		},
		{
			name:     "duplicated key without subcommand",
			argv:     []string{"prog", "-a", "-a"},
			kind:     DuplicatedOptionName,
			token:    "-a",
			sentinel: ErrDuplicatedOptionName,
		},
		{
			name:     "value before key",
			argv:     []string{"prog", "build", "stray", "-v"},
			kind:     OptionValueBeforeOptionName,
			token:    "stray",
			sentinel: ErrOptionValueBeforeOptionName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv, "run")
			if got != nil {
				t.Fatalf("expected no partial result, got %+v", got)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *Error, got %T (%v)", err, err)
			}
			if perr.Kind != tt.kind || perr.Token != tt.token {
				t.Fatalf("got %v %q, want %v %q", perr.Kind, perr.Token, tt.kind, tt.token)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
		})
	}
}

func TestErrorDiagnostic(t *testing.T) {
	err := &Error{Kind: DuplicatedOptionName, Token: "-v"}
	log := err.Diagnostic()
	if log.Kind != diag.KindError {
		t.Fatalf("kind = %v", log.Kind)
	}
	if log.Title != messages.Ref(messages.CmdErrDuplicatedOptionName) {
		t.Fatalf("title = %q", log.Title)
	}
	if len(log.Descriptions) != 2 {
		t.Fatalf("descriptions = %+v", log.Descriptions)
	}
	if log.Descriptions[0].Text != "{^cmd.option_name}: -v" || log.Descriptions[0].Visibility != diag.Normal {
		t.Fatalf("first description = %+v", log.Descriptions[0])
	}
	if log.Descriptions[1].Visibility != diag.Optional {
		t.Fatalf("error id should be optional: %+v", log.Descriptions[1])
	}
}

func TestOptionsHelpers(t *testing.T) {
	o := Options{"-b": {"1"}, "-a": {}}
	if !o.Has("-a") || o.Has("-c") {
		t.Fatal("Has mismatch")
	}
	if diff := cmp.Diff([]string{"-a", "-b"}, o.Keys()); diff != "" {
		t.Fatalf("Keys mismatch:\n%s", diff)
	}
	c := o.Clone()
	c["-b"][0] = "2"
	if o["-b"][0] != "1" {
		t.Fatal("Clone shares value slices")
	}
}

package fileman

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clikit/internal/diag"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.lang")
	if err := os.WriteFile(path, []byte("a 1\r\nb 2\n\nc 3"), 0o600); err != nil {
		t.Fatal(err)
	}

	lines, err := OS.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"a 1", "b 2", "", "c 3"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesLongLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.lang")
	long := "k " + strings.Repeat("v", 3<<20)
	if err := os.WriteFile(path, []byte(long+"\nnext 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	lines, err := OS.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 || lines[0] != long || lines[1] != "next 1" {
		t.Fatalf("got %d lines", len(lines))
	}
}

func TestReadLinesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.lang")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	lines, err := OS.ReadLines(path)
	if err != nil || len(lines) != 0 {
		t.Fatalf("lines = %q, err = %v", lines, err)
	}
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := OS.ReadLines(filepath.Join(dir, "missing.lang"))
	if !IsKind(err, PathNotExists) {
		t.Fatalf("missing file: got %v", err)
	}
	_, err = OS.ReadLines(dir)
	if !IsKind(err, PathNotFile) {
		t.Fatalf("directory: got %v", err)
	}
	_, err = OS.ReadAll(filepath.Join(dir, "missing.langc"))
	if !IsKind(err, PathNotExists) {
		t.Fatalf("ReadAll missing: got %v", err)
	}
}

func TestWriteAllAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	if err := OS.WriteAll(path, []byte{1, 2, 3}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got, err := OS.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("ReadAll = %v", got)
	}

	err = OS.WriteAll(filepath.Join(t.TempDir(), "no", "such", "dir", "x"), nil)
	if !IsKind(err, FileOpenFailure) {
		t.Fatalf("write into missing dir: got %v", err)
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ja.lang", "en.lang", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.lang"), 0o700); err != nil {
		t.Fatal(err)
	}

	files, err := OS.ListFiles(dir, ".lang")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "en.lang" || filepath.Base(files[1]) != "ja.lang" {
		t.Fatalf("files = %v", files)
	}

	_, err = OS.ListFiles(files[0], ".lang")
	if !IsKind(err, PathNotDirectory) {
		t.Fatalf("file as dir: got %v", err)
	}
}

func TestLangpackPath(t *testing.T) {
	fs := FS{Getenv: envOf(map[string]string{HomeEnv: "/opt/clikit"})}
	got, err := fs.LangpackPath("en-us")
	if err != nil {
		t.Fatalf("LangpackPath: %v", err)
	}
	if want := filepath.Join("/opt/clikit", "lib", "lang", "en-us.lang"); got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}

	if _, err := fs.LangpackPath("../etc"); !IsKind(err, InvalidPath) {
		t.Fatalf("traversal: got %v", err)
	}

	noHome := FS{Getenv: envOf(nil)}
	_, err = noHome.LangpackPath("en")
	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != EnvVarReadFailure || fe.Path != HomeEnv {
		t.Fatalf("missing env: got %v", err)
	}
}

func TestAbsPath(t *testing.T) {
	got, err := OS.AbsPath("/a/b/../c.lang")
	if err != nil || got != filepath.Clean("/a/c.lang") {
		t.Fatalf("absolute: %q %v", got, err)
	}

	dir := t.TempDir()
	t.Chdir(dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err = OS.AbsPath(filepath.Join("sub", "en.lang"))
	if err != nil {
		t.Fatalf("relative: %v", err)
	}
	if want := filepath.Join(wd, "sub", "en.lang"); got != want {
		t.Fatalf("relative = %q, want %q", got, want)
	}
}

func TestRenameExt(t *testing.T) {
	tests := []struct{ in, ext, want string }{
		{"en.lang", "langc", "en.langc"},
		{"dir/en", "langc", "dir/en.langc"},
		{"a.b.c", "d", "a.b.d"},
	}
	for _, tt := range tests {
		if got := RenameExt(tt.in, tt.ext); got != tt.want {
			t.Errorf("RenameExt(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
		}
	}
}

func TestErrorDiagnostic(t *testing.T) {
	err := &Error{Kind: PathNotExists, Path: "/x/en.lang"}
	log := diag.FromError(err)
	if log.Title != "{^file.err.8531}" {
		t.Fatalf("title = %q", log.Title)
	}
	visible := log.Visible()
	if len(visible) != 1 || visible[0].Text != "{^file.path}: /x/en.lang" {
		t.Fatalf("visible = %+v", visible)
	}

	withCause := (&Error{Kind: FileReadFailure, Path: "p", Err: errors.New("eio")}).Diagnostic()
	if len(withCause.Descriptions) != 3 || withCause.Descriptions[1].Visibility != diag.Optional {
		t.Fatalf("cause line: %+v", withCause.Descriptions)
	}

	cwd := (&Error{Kind: CurrentDirReadFailure}).Diagnostic()
	if len(cwd.Visible()) != 0 {
		t.Fatalf("current dir error should have no visible lines: %+v", cwd.Descriptions)
	}
}

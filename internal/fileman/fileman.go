// Package fileman is the filesystem collaborator: it reads and writes files and
// locates resources, reporting every failure as a typed *Error.
package fileman

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// HomeEnv names the variable holding the installation root.
const HomeEnv = "CLIKIT_HOME"

// langpackDir is relative to the installation root.
const langpackDir = "lib/lang"

// FS implements file access against the real filesystem. Getenv defaults to
// os.LookupEnv.
type FS struct {
	Getenv func(string) (string, bool)
}

// OS is the default FS.
var OS = FS{}

// LookupEnv reads an environment variable through Getenv.
func (f FS) LookupEnv(name string) (string, bool) {
	if f.Getenv != nil {
		return f.Getenv(name)
	}
	return os.LookupEnv(name)
}

func (FS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (FS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// checkFile verifies path names an existing regular file (or symlink to one).
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Error{Kind: PathNotExists, Path: path}
		}
		return &Error{Kind: MetadataReadFailure, Path: path, Err: err}
	}
	if info.IsDir() {
		return &Error{Kind: PathNotFile, Path: path}
	}
	return nil
}

// ReadLines returns the file's lines without line terminators. A trailing
// "\r" is dropped so CRLF files parse like LF files. Lines have no length
// limit.
func (FS) ReadLines(path string) ([]string, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: FileOpenFailure, Path: path, Err: err}
	}
	defer file.Close()

	var lines []string
	rd := bufio.NewReader(file)
	for {
		line, err := rd.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &Error{Kind: FileReadFailure, Path: path, Err: err}
		}
		if err != nil && line == "" {
			return lines, nil
		}
		line = strings.TrimSuffix(line, "\n")
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		if err != nil {
			return lines, nil
		}
	}
}

func (FS) ReadAll(path string) ([]byte, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: FileReadFailure, Path: path, Err: err}
	}
	return data, nil
}

// WriteAll creates or truncates path and writes data.
func (FS) WriteAll(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return &Error{Kind: FileOpenFailure, Path: path, Err: err}
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return &Error{Kind: FileWriteFailure, Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &Error{Kind: FileWriteFailure, Path: path, Err: err}
	}
	return nil
}

// ListFiles returns the sorted paths of regular files in dir (not recursive)
// whose extension is ext; an empty ext matches every file.
func (FS) ListFiles(dir, ext string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: PathNotExists, Path: dir}
		}
		return nil, &Error{Kind: MetadataReadFailure, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &Error{Kind: PathNotDirectory, Path: dir}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &Error{Kind: DirReadFailure, Path: dir, Err: err}
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext != "" && !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// RootPath returns the installation root from HomeEnv.
func (f FS) RootPath() (string, error) {
	v, ok := f.LookupEnv(HomeEnv)
	if !ok || v == "" {
		return "", &Error{Kind: EnvVarReadFailure, Path: HomeEnv}
	}
	return v, nil
}

// LangpackPath returns <root>/lib/lang/<lang>.lang.
func (f FS) LangpackPath(lang string) (string, error) {
	if lang == "" || strings.ContainsAny(lang, `/\`) || lang == "." || lang == ".." {
		return "", &Error{Kind: InvalidPath, Path: lang}
	}
	root, err := f.RootPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, langpackDir, lang+".lang"), nil
}

// AbsPath resolves rel against the working directory.
func (FS) AbsPath(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", &Error{Kind: CurrentDirReadFailure, Err: err}
	}
	return filepath.Join(wd, rel), nil
}

// RenameExt replaces the extension of path with ext (without the dot), or
// appends it when path has none.
func RenameExt(path, ext string) string {
	old := filepath.Ext(path)
	if old == "" {
		return path + "." + ext
	}
	return strings.TrimSuffix(path, old) + "." + ext
}

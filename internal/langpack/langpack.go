// Package langpack loads key -> text tables and resolves {^key} placeholders
// in message templates.
package langpack

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// BinaryExt is the file extension of the compiled (msgpack) form.
const BinaryExt = ".langc"

// placeholder grammar: {^key} with key in [A-Za-z0-9._-]+
var placeholderRe = regexp.MustCompile(`\{\^[A-Za-z0-9._-]+\}`)

// LineReader reads a text file as lines. Implementations report missing or
// unreadable files with their own typed errors; Load returns them unchanged.
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// FileReader can also read a file's raw bytes.
type FileReader interface {
	LineReader
	ReadAll(path string) ([]byte, error)
}

// Langpack is an immutable key -> text table.
type Langpack struct {
	entries map[string]string
}

// Empty returns a pack without entries; Translate on it is the identity.
func Empty() *Langpack {
	return &Langpack{entries: map[string]string{}}
}

// New builds a pack from entries. The map is copied.
func New(entries map[string]string) *Langpack {
	lp := &Langpack{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		lp.entries[k] = v
	}
	return lp
}

// Parse builds a pack from text lines of the form "<key> <value>". The value
// is everything after the first space. Lines without a space or with an empty
// key are skipped; a later line overwrites an earlier one with the same key.
func Parse(lines []string) *Langpack {
	entries := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, ok := splitLine(line)
		if !ok {
			continue
		}
		entries[key] = value
	}
	return &Langpack{entries: entries}
}

func splitLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, " ")
	if !found || key == "" {
		return "", "", false
	}
	return key, value, true
}

// Load reads and parses the text pack at path.
func Load(r LineReader, path string) (*Langpack, error) {
	lines, err := r.ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Parse(lines), nil
}

// LoadFile loads either form, choosing the decoder by extension.
func LoadFile(r FileReader, path string) (*Langpack, error) {
	if !strings.EqualFold(filepath.Ext(path), BinaryExt) {
		return Load(r, path)
	}
	data, err := r.ReadAll(path)
	if err != nil {
		return nil, err
	}
	lp, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lp, nil
}

// Translate replaces every {^key} placeholder whose key is present. Unknown
// placeholders and all literal text are kept as they are. Substituted values
// are not scanned again.
func (lp *Langpack) Translate(template string) string {
	if lp == nil || len(lp.entries) == 0 || !strings.Contains(template, "{^") {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		if v, ok := lp.entries[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// Lookup returns the raw value for key.
func (lp *Langpack) Lookup(key string) (string, bool) {
	if lp == nil {
		return "", false
	}
	v, ok := lp.entries[key]
	return v, ok
}

func (lp *Langpack) Len() int {
	if lp == nil {
		return 0
	}
	return len(lp.entries)
}

// Keys returns the keys in sorted order.
func (lp *Langpack) Keys() []string {
	if lp == nil {
		return nil
	}
	keys := make([]string, 0, len(lp.entries))
	for k := range lp.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Overlay returns a new pack holding lp's entries with top's entries on top.
func (lp *Langpack) Overlay(top *Langpack) *Langpack {
	out := New(lp.snapshot())
	if top != nil {
		for k, v := range top.entries {
			out.entries[k] = v
		}
	}
	return out
}

func (lp *Langpack) snapshot() map[string]string {
	if lp == nil {
		return nil
	}
	return lp.entries
}

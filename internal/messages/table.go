package messages

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better matches and as the per-id
// fallback when a language lacks a message.
const DefaultLanguage = "en"

//go:embed builtin.toml
var builtinData []byte

// Table maps message id -> language -> template. It is immutable once built.
type Table struct {
	langs   []string
	entries map[string]map[string]string // lang -> id -> template
	matcher language.Matcher
}

var (
	builtinOnce  sync.Once
	builtinTable *Table
	builtinErr   error
)

// Builtin returns the table embedded in the binary, parsed on first use.
func Builtin() (*Table, error) {
	builtinOnce.Do(func() {
		builtinTable, builtinErr = Parse(builtinData)
	})
	return builtinTable, builtinErr
}

// Parse decodes a TOML document with one table per language.
func Parse(data []byte) (*Table, error) {
	var raw map[string]map[string]string
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse message table: %w", err)
	}
	if _, ok := raw[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("message table has no %q section", DefaultLanguage)
	}

	langs := make([]string, 0, len(raw))
	for lang := range raw {
		if lang != DefaultLanguage {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	// the matcher falls back to the first supported tag
	langs = append([]string{DefaultLanguage}, langs...)

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q in message table: %w", lang, err)
		}
		tags = append(tags, tag)
	}

	return &Table{
		langs:   langs,
		entries: raw,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Languages lists the available languages, default first.
func (t *Table) Languages() []string {
	out := make([]string, len(t.langs))
	copy(out, t.langs)
	return out
}

// Lookup returns the template for id in lang, falling back to the default
// language.
func (t *Table) Lookup(id, lang string) (string, bool) {
	if v, ok := t.entries[lang][id]; ok {
		return v, true
	}
	v, ok := t.entries[DefaultLanguage][id]
	return v, ok
}

// Match picks the best available language for the requested locales
// (e.g. "ja_JP.UTF-8", "en-US"). Unparsable or empty values are ignored.
func (t *Table) Match(requested ...string) string {
	cleaned := make([]string, 0, len(requested))
	for _, r := range requested {
		if r = NormalizeLocale(r); r != "" {
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) == 0 {
		return DefaultLanguage
	}
	_, idx := language.MatchStrings(t.matcher, cleaned...)
	if idx < 0 || idx >= len(t.langs) {
		return DefaultLanguage
	}
	return t.langs[idx]
}

// Entries returns every id for lang, with default-language templates filling
// the gaps. The returned map is a fresh copy.
func (t *Table) Entries(lang string) map[string]string {
	out := make(map[string]string, len(t.entries[DefaultLanguage]))
	for id, v := range t.entries[DefaultLanguage] {
		out[id] = v
	}
	if lang != DefaultLanguage {
		for id, v := range t.entries[lang] {
			out[id] = v
		}
	}
	return out
}

// NormalizeLocale strips POSIX locale decorations: "ja_JP.UTF-8@x" -> "ja-JP".
// "C" and "POSIX" carry no language and normalize to "".
func NormalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch strings.ToUpper(s) {
	case "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

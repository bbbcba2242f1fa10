// Package args turns raw process arguments into a subcommand name and a
// multi-valued option map.
//
// The grammar is deliberately loose: argv[1] names the subcommand unless it
// starts with '-', every '-' token opens an option, and every other token is a
// value of the most recent option. There is no schema; handlers decide which
// options they understand.
package args

import (
	"sort"
	"strings"
)

// OptionMarker prefixes every option key.
const OptionMarker = "-"

// Options maps an option key (marker included) to its values in argv order.
type Options map[string][]string

// Has reports whether key appeared on the command line.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Values returns the values given to key, nil when absent.
func (o Options) Values(key string) []string {
	return o[key]
}

// Keys returns the option keys in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		vs := make([]string, len(v))
		copy(vs, v)
		out[k] = vs
	}
	return out
}

// Command is a parsed invocation.
type Command struct {
	Name    string
	Options Options
}

// IsOption reports whether token is an option key.
func IsOption(token string) bool {
	return strings.HasPrefix(token, OptionMarker)
}

// Parse builds a Command from argv. argv[0] is the program path and is
// ignored. defaultName is used when argv carries no subcommand.
//
// Parsing fails with DuplicatedOptionName when a key repeats and with
// OptionValueBeforeOptionName when a value precedes every key. No partial
// command is returned on error.
func Parse(argv []string, defaultName string) (*Command, error) {
	opts := make(Options)
	if len(argv) <= 1 {
		return &Command{Name: defaultName, Options: opts}, nil
	}

	name := defaultName
	begin := 1
	if !IsOption(argv[1]) {
		name = argv[1]
		begin = 2
	}

	current := ""
	for _, tok := range argv[begin:] {
		if IsOption(tok) {
			if _, dup := opts[tok]; dup {
				return nil, &Error{Kind: DuplicatedOptionName, Token: tok}
			}
			opts[tok] = []string{}
			current = tok
			continue
		}
		if current == "" {
			return nil, &Error{Kind: OptionValueBeforeOptionName, Token: tok}
		}
		opts[current] = append(opts[current], tok)
	}

	return &Command{Name: name, Options: opts}, nil
}

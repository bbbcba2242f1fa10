package diag

import (
	"errors"

	"clikit/internal/messages"
)

// Reporter receives log entries. showDetails asks the reporter to also surface
// the entry's Optional descriptions.
type Reporter interface {
	Log(entry Log, showDetails bool)
}

// Diagnoser is implemented by errors that know how to describe themselves.
type Diagnoser interface {
	Diagnostic() Log
}

// FromError converts err into a log entry. Errors anywhere in the wrap chain
// implementing Diagnoser describe themselves; anything else becomes a generic
// error carrying err.Error().
func FromError(err error) Log {
	if err == nil {
		return Log{}
	}
	var d Diagnoser
	if errors.As(err, &d) {
		return d.Diagnostic()
	}
	return Error(messages.Ref(messages.ConsoleErrUnexpected)).
		With(messages.Field(messages.ConsoleCause, err.Error()))
}

// Entry is a recorded Log call.
type Entry struct {
	Log         Log
	ShowDetails bool
}

// Collector is a Reporter that keeps every entry in memory.
type Collector struct {
	entries []Entry
}

func (c *Collector) Log(entry Log, showDetails bool) {
	c.entries = append(c.entries, Entry{Log: entry, ShowDetails: showDetails})
}

// Entries returns the recorded entries in call order. Do not modify.
func (c *Collector) Entries() []Entry {
	return c.entries
}

func (c *Collector) Len() int {
	return len(c.entries)
}

// HasErrors reports whether any recorded entry is an error.
func (c *Collector) HasErrors() bool {
	for i := range c.entries {
		if c.entries[i].Log.Kind == KindError {
			return true
		}
	}
	return false
}

// Flush forwards the recorded entries to r in order and empties the collector.
func (c *Collector) Flush(r Reporter) {
	for _, e := range c.entries {
		r.Log(e.Log, e.ShowDetails)
	}
	c.entries = c.entries[:0]
}

type discard struct{}

func (discard) Log(Log, bool) {}

// Discard drops every entry.
var Discard Reporter = discard{}

// Package console prints diagnostic logs to a terminal, translating their
// templates through a language pack and capping how many entries are shown.
package console

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"clikit/internal/diag"
	"clikit/internal/langpack"
	"clikit/internal/messages"
)

// Options configures a Reporter.
type Options struct {
	Out   io.Writer // defaults to os.Stdout
	Color bool
	Width int // wrap description lines to this many cells, 0 disables wrapping
	Limit Limit
}

// DefaultOptions prints to stdout with the default limit; colour and width
// follow the terminal.
func DefaultOptions() Options {
	return Options{
		Out:   os.Stdout,
		Color: AutoColor(os.Stdout),
		Width: TerminalWidth(os.Stdout),
		Limit: Limited(DefaultLimit),
	}
}

type state uint8

const (
	stateActive       state = iota // count < limit, or no limit
	stateLimitReached              // count == limit: only the limit notice may follow
	stateSuppressed                // count > limit: everything is dropped
)

// Reporter is a diag.Reporter writing to a console. It is not safe for
// concurrent use.
type Reporter struct {
	lp    *langpack.Langpack
	out   io.Writer
	tags  map[diag.Kind]*color.Color
	width int
	limit Limit
	count uint64
}

var _ diag.Reporter = (*Reporter)(nil)

// New creates a reporter translating through lp (nil means no translation).
func New(lp *langpack.Langpack, opts Options) *Reporter {
	if lp == nil {
		lp = langpack.Empty()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{
		lp:    lp,
		out:   out,
		tags:  newTagColors(opts.Color),
		width: opts.Width,
		limit: opts.Limit,
	}
}

// SetLimit replaces the limit. Entries already printed keep counting.
func (r *Reporter) SetLimit(l Limit) { r.limit = l }

func (r *Reporter) Limit() Limit { return r.limit }

// SetLangpack replaces the pack used for later entries.
func (r *Reporter) SetLangpack(lp *langpack.Langpack) {
	if lp == nil {
		lp = langpack.Empty()
	}
	r.lp = lp
}

// Count returns how many entries were printed, limit notice included.
func (r *Reporter) Count() uint64 { return r.count }

// Suppressed reports whether further entries are dropped.
func (r *Reporter) Suppressed() bool { return r.state() == stateSuppressed }

func (r *Reporter) state() state {
	n, limited := r.limit.Max()
	switch {
	case !limited, r.count < uint64(n):
		return stateActive
	case r.count == uint64(n):
		return stateLimitReached
	default:
		return stateSuppressed
	}
}

// Log prints entry unless the limit has been used up. The entry that uses up
// the limit is followed by a single "log limit exceeded" notice, after which
// every entry is dropped silently.
//
// With showDetails a follow-up notice lists the entry's descriptions with
// visibility inverted, so Optional lines become visible. That notice counts
// against the limit like any other entry.
func (r *Reporter) Log(entry diag.Log, showDetails bool) {
	if !r.emit(entry) {
		return
	}
	if showDetails {
		r.emit(diag.New(diag.KindNotice, messages.Ref(messages.CmdNoteDetails), entry.Inverted()...))
	}
}

// emit passes one entry through the limit and reports whether more entries
// may follow.
func (r *Reporter) emit(entry diag.Log) bool {
	switch r.state() {
	case stateSuppressed:
		return false
	case stateLimitReached:
		r.render(r.limitNotice())
		return false
	}
	r.render(entry)
	if r.state() == stateLimitReached {
		r.render(r.limitNotice())
		return false
	}
	return true
}

func (r *Reporter) limitNotice() diag.Log {
	return diag.Notice(messages.Ref(messages.ConsoleNoteLogLimitExceeded)).
		With(messages.Field(messages.ConsoleLogLimit, r.limit.String()))
}

// render writes entry without looking at the limit.
func (r *Reporter) render(entry diag.Log) {
	var b strings.Builder
	b.WriteString(r.tag(entry.Kind))
	b.WriteByte(' ')
	b.WriteString(r.lp.Translate(entry.Title))
	b.WriteByte('\n')

	avail := 0
	if r.width > 0 {
		avail = r.width - tabWidth
	}
	for _, d := range entry.Descriptions {
		if d.Visibility != diag.Normal {
			continue
		}
		for _, line := range wrapLines(r.lp.Translate(d.Text), avail) {
			b.WriteByte('\t')
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')

	// console output is best effort
	_, _ = io.WriteString(r.out, b.String())
	r.count++
}

func (r *Reporter) tag(k diag.Kind) string {
	label := "[" + k.Tag() + "]"
	if c, ok := r.tags[k]; ok {
		return c.Sprint(label)
	}
	return label
}

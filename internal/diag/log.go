package diag

import "strings"

// Description is one line of additional context under a log title.
type Description struct {
	Text       string
	Visibility Visibility
}

// Log is a single reportable event. Reporters consume it once and do not
// retain it.
type Log struct {
	Kind         Kind
	Title        string
	Descriptions []Description
}

func New(kind Kind, title string, descs ...Description) Log {
	return Log{Kind: kind, Title: title, Descriptions: descs}
}

func Error(title string) Log   { return New(KindError, title) }
func Warning(title string) Log { return New(KindWarning, title) }
func Notice(title string) Log  { return New(KindNotice, title) }

// With appends a Normal description line.
func (l Log) With(text string) Log {
	l.Descriptions = append(cloneDescs(l.Descriptions), Description{Text: text, Visibility: Normal})
	return l
}

// WithOptional appends a description line that is shown only with details.
func (l Log) WithOptional(text string) Log {
	l.Descriptions = append(cloneDescs(l.Descriptions), Description{Text: text, Visibility: Optional})
	return l
}

// Inverted returns the descriptions with every visibility flipped. The
// receiver is left untouched.
func (l Log) Inverted() []Description {
	out := make([]Description, len(l.Descriptions))
	for i, d := range l.Descriptions {
		out[i] = Description{Text: d.Text, Visibility: d.Visibility.Invert()}
	}
	return out
}

// Visible returns the descriptions printed by default.
func (l Log) Visible() []Description {
	out := make([]Description, 0, len(l.Descriptions))
	for _, d := range l.Descriptions {
		if d.Visibility == Normal {
			out = append(out, d)
		}
	}
	return out
}

// Descriptions builds description lines from plain texts. A leading '?' marks
// an Optional line; the marker is stripped.
func Descriptions(texts ...string) []Description {
	out := make([]Description, 0, len(texts))
	for _, t := range texts {
		if rest, ok := strings.CutPrefix(t, "?"); ok {
			out = append(out, Description{Text: rest, Visibility: Optional})
			continue
		}
		out = append(out, Description{Text: t, Visibility: Normal})
	}
	return out
}

// copy-on-append keeps builder chains from sharing a backing array
func cloneDescs(in []Description) []Description {
	out := make([]Description, len(in), len(in)+1)
	copy(out, in)
	return out
}

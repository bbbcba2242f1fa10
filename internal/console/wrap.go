package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// columns taken by the leading tab of a description line
const tabWidth = 8

const minWrapWidth = 20

// wrapLines splits text on newlines and, when width > 0, word-wraps each line
// to width display cells. Words wider than the width are broken by rune.
func wrapLines(text string, width int) []string {
	lines := strings.Split(text, "\n")
	if width <= 0 {
		return lines
	}
	if width < minWrapWidth {
		width = minWrapWidth
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

// wrapLine breaks only at single spaces of line, so runs of spaces inside an
// output line survive. Spaces at a break are dropped.
func wrapLine(line string, width int) []string {
	if len(strings.Fields(line)) == 0 {
		return []string{line}
	}
	var (
		out  []string
		cur  strings.Builder
		w    int
		open bool
	)
	flush := func() {
		out = append(out, strings.TrimRight(cur.String(), " "))
		cur.Reset()
		w = 0
		open = false
	}
	for _, word := range strings.Split(line, " ") {
		ww := runewidth.StringWidth(word)
		switch {
		case !open:
		case ww <= width && w+1+ww <= width:
			cur.WriteByte(' ')
			w++
		default:
			flush()
		}
		if !open && word == "" && len(out) > 0 {
			continue
		}
		if ww > width {
			chunks := splitByWidth(word, width)
			out = append(out, chunks[:len(chunks)-1]...)
			// the last chunk stays open for the following words
			word = chunks[len(chunks)-1]
			ww = runewidth.StringWidth(word)
		}
		cur.WriteString(word)
		w += ww
		open = true
	}
	if open {
		out = append(out, cur.String())
	}
	return out
}

func splitByWidth(s string, width int) []string {
	var (
		out []string
		cur strings.Builder
		w   int
	)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
			w = 0
		}
		cur.WriteRune(r)
		w += rw
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

package langpack

import (
	"context"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"clikit/internal/diag"
	"clikit/internal/messages"
	"clikit/internal/trace"
)

// FileReport is the lint result of one file.
type FileReport struct {
	Path    string
	Entries int // keys the file defines after Parse
	Issues  []Issue
	Err     error // read failure; Issues and Entries are empty
}

// Diagnostics returns the report as log entries: the read error, or every
// issue followed by a summary notice.
func (r FileReport) Diagnostics() []diag.Log {
	if r.Err != nil {
		return []diag.Log{diag.FromError(r.Err)}
	}
	out := make([]diag.Log, 0, len(r.Issues)+1)
	for _, is := range r.Issues {
		out = append(out, is.Diagnostic())
	}
	return append(out, diag.Notice(messages.Ref(messages.LangpackNoteChecked)).
		With(messages.Field(messages.LangpackFile, r.Path)).
		With(messages.Field(messages.LangpackEntries, strconv.Itoa(r.Entries))))
}

// LintFiles lints files with at most jobs concurrent readers (jobs <= 0 means
// GOMAXPROCS). Reports follow the order of files. A file that cannot be read
// gets a report with Err set; only cancellation of ctx fails the call.
func LintFiles(ctx context.Context, r LineReader, files []string, jobs int) ([]FileReport, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	// each goroutine writes only its own index
	reports := make([]FileReport, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			span := trace.Begin(tracer, trace.ScopeEntry, "lint:"+path, parent)
			lines, err := r.ReadLines(path)
			if err != nil {
				reports[i] = FileReport{Path: path, Err: err}
				span.End("read failed")
				return nil
			}
			issues := Lint(path, lines)
			reports[i] = FileReport{
				Path:    path,
				Entries: Parse(lines).Len(),
				Issues:  issues,
			}
			span.WithExtra("issues", strconv.Itoa(len(issues))).End("")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

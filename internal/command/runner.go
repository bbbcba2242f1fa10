package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"clikit/internal/args"
	"clikit/internal/config"
	"clikit/internal/console"
	"clikit/internal/diag"
	"clikit/internal/fileman"
	"clikit/internal/langpack"
	"clikit/internal/messages"
	"clikit/internal/trace"
)

// Options the runner consumes itself. They stay visible to handlers.
const (
	OptDetails  = "-det"
	OptLimit    = "-lim"
	OptLanguage = "-lang"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// localeEnvs are consulted in order when no language is configured.
var localeEnvs = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Runner wires argument parsing, language packs, the console reporter and
// dispatch into a program entry point.
type Runner struct {
	DefaultName string
	Handlers    Handlers

	// Lang overrides the configured language; -lang overrides both.
	Lang string
	// Out receives console output; nil means os.Stdout.
	Out io.Writer
	FS  fileman.FS
	// Config supplies reporter defaults; nil means config.Defaults().
	Config *config.Settings
	// Tracer defaults to the tracer in the Run context.
	Tracer trace.Tracer
	// TraceDump receives in-memory trace events after a failed run; nil
	// means os.Stderr.
	TraceDump io.Writer
}

// InternalError reports a failure of the runner's own resources.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string { return "internal load failure: " + e.Cause.Error() }

func (e *InternalError) Unwrap() error { return e.Cause }

func (e *InternalError) Diagnostic() diag.Log {
	return diag.Error(messages.Ref(messages.CmdErrInternalLoadFailure)).
		With(messages.Field(messages.CmdCause, e.Cause.Error())).
		WithOptional(messages.Field(messages.ConsoleErrorID, messages.CmdErrInternalLoadFailure))
}

// errAborted marks a run stopped after its error was already logged.
var errAborted = errors.New("run aborted")

// Run executes argv (argv[0] is the program path) and returns the exit code.
// Every failure is logged to the console before Run returns.
func (r *Runner) Run(ctx context.Context, argv []string) int {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := r.Tracer
	if tracer == nil {
		tracer = trace.FromContext(ctx)
	}
	ctx = trace.WithTracer(ctx, tracer)

	span, ctx := trace.Start(ctx, trace.ScopeDriver, "run")
	s := r.newSession(ctx, tracer)

	err := r.run(ctx, s, argv)
	code := ExitOK
	if err != nil || s.errors > 0 {
		code = ExitFailure
	}
	span.WithExtra("logged", fmt.Sprint(s.rep.Count())).End(fmt.Sprintf("exit %d", code))

	if code != ExitOK {
		r.dumpTrace(tracer)
	}
	return code
}

func (r *Runner) run(ctx context.Context, s *session, argv []string) error {
	settings := r.settings()

	lang := r.Lang
	if lang == "" {
		lang = settings.Lang
	}
	if err := r.stage(ctx, "langpack", func(context.Context) error {
		return s.loadLanguage(r, lang)
	}); err != nil {
		return err
	}

	var cmd *args.Command
	if err := r.stage(ctx, "parse", func(context.Context) error {
		var err error
		cmd, err = args.Parse(argv, r.DefaultName)
		if err != nil {
			s.Log(diag.FromError(err), false)
			return errAborted
		}
		return nil
	}); err != nil {
		return err
	}

	showDetails := settings.ShowDetails || cmd.Options.Has(OptDetails)

	if cmd.Options.Has(OptLanguage) {
		vals := cmd.Options.Values(OptLanguage)
		if len(vals) != 1 {
			s.Log(invalidValue(messages.CmdErrInvalidLanguage, vals), showDetails)
			return errAborted
		}
		if err := s.loadLanguage(r, vals[0]); err != nil {
			return err
		}
	}

	if cmd.Options.Has(OptLimit) {
		vals := cmd.Options.Values(OptLimit)
		if len(vals) != 1 {
			s.Log(invalidValue(messages.CmdErrInvalidLogLimit, vals), showDetails)
			return errAborted
		}
		limit, err := console.ParseLimit(vals[0])
		if err != nil {
			s.Log(invalidValue(messages.CmdErrInvalidLogLimit, vals), showDetails)
			return errAborted
		}
		s.rep.SetLimit(limit)
	}

	return r.stage(ctx, "dispatch", func(ctx context.Context) error {
		ctx = WithShowDetails(ctx, showDetails)
		if err := Dispatch(ctx, cmd, r.Handlers, s); err != nil {
			s.Log(diag.FromError(err), showDetails)
			return err
		}
		return nil
	})
}

// invalidValue builds the entry for a reserved option with a bad value list.
// A single unparsable value is echoed back.
func invalidValue(title string, vals []string) diag.Log {
	entry := diag.Error(messages.Ref(title))
	if len(vals) == 1 {
		entry = entry.With(messages.Field(messages.CmdOptionValue, vals[0]))
	}
	return entry.WithOptional(messages.Field(messages.ConsoleErrorID, title))
}

func (r *Runner) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	span, ctx := trace.Start(ctx, trace.ScopeStage, name)
	err := fn(ctx)
	detail := "ok"
	if err != nil {
		detail = err.Error()
	}
	span.End(detail)
	return err
}

func (r *Runner) settings() config.Settings {
	if r.Config != nil {
		return *r.Config
	}
	return config.Defaults()
}

func (r *Runner) newSession(ctx context.Context, tracer trace.Tracer) *session {
	settings := r.settings()
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	f, _ := out.(*os.File)
	width := settings.Width
	if width == 0 {
		width = console.TerminalWidth(f)
	}
	rep := console.New(nil, console.Options{
		Out:   out,
		Color: settings.Color.Enabled(f),
		Width: width,
		Limit: settings.Limit,
	})
	return &session{rep: rep, tracer: tracer, parent: trace.CurrentSpan(ctx)}
}

func (r *Runner) dumpTrace(tracer trace.Tracer) {
	if tracer.Level() != trace.LevelError {
		return
	}
	d, ok := tracer.(trace.Dumper)
	if !ok {
		return
	}
	w := r.TraceDump
	if w == nil {
		w = os.Stderr
	}
	// best effort: the run already failed
	_ = d.Dump(w, trace.FormatText)
}

// session is the reporter handed to handlers. It counts errors and traces
// every entry before printing it.
type session struct {
	rep    *console.Reporter
	tracer trace.Tracer
	parent uint64
	errors int
}

func (s *session) Log(entry diag.Log, showDetails bool) {
	if entry.Kind == diag.KindError {
		s.errors++
	}
	trace.Point(s.tracer, trace.ScopeEntry, "log", entry.Kind.Tag()+" "+entry.Title, s.parent)
	s.rep.Log(entry, showDetails)
}

// loadLanguage installs the built-in messages for the best match of lang,
// overlaid by $CLIKIT_HOME/lib/lang/<lang>.lang when the home variable is
// set. On failure the error is logged with the built-in messages.
func (s *session) loadLanguage(r *Runner, lang string) error {
	lp, err := r.buildLangpack(lang)
	if lp != nil {
		s.rep.SetLangpack(lp)
	}
	if err != nil {
		s.Log(diag.FromError(err), false)
		return errAborted
	}
	return nil
}

// buildLangpack returns the built-in pack even when the overlay fails.
func (r *Runner) buildLangpack(lang string) (*langpack.Langpack, error) {
	tbl, err := messages.Builtin()
	if err != nil {
		return nil, &InternalError{Cause: err}
	}
	requested := []string{lang}
	if lang == "" {
		for _, name := range localeEnvs {
			if v, ok := r.FS.LookupEnv(name); ok {
				requested = append(requested, v)
			}
		}
	}
	matched := tbl.Match(requested...)
	base := langpack.New(tbl.Entries(matched))

	path, err := r.FS.LangpackPath(matched)
	if err != nil {
		if fileman.IsKind(err, fileman.EnvVarReadFailure) {
			return base, nil
		}
		return base, err
	}
	overlay, err := langpack.LoadFile(r.FS, path)
	if err != nil {
		return base, err
	}
	return base.Overlay(overlay), nil
}

// Package trace records what clikit does internally: which phase of a run is
// active, how long it took, and which entries were processed.
//
// Trace output is for developers. Messages meant for the user of a command
// always go through a console reporter.
//
// # Usage
//
// Enable tracing through the environment:
//
//	CLIKIT_TRACE=phase CLIKIT_TRACE_OUT=- clikit demo -- run
//
// or through the bundled CLI flags:
//
//	clikit --trace=run.ndjson --trace-level=detail langpack lint lib/lang
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately
//   - RingTracer: keeps the last N events for a dump after a failed run
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// LevelPhase shows ScopeDriver and ScopeStage events (a run and its
// langpack/parse/dispatch phases). LevelDetail adds ScopeEntry events, one
// per processed file or log entry. LevelDebug shows everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopeStage, "parse")
//	defer span.End("")
package trace

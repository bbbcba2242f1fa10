package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, in := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(strings.ToUpper(in))
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if l.String() != in {
			t.Fatalf("round trip %q -> %q", in, l)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeStage, true},
		{LevelError, ScopeEntry, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeEntry, false},
		{LevelDetail, ScopeEntry, true},
		{LevelDebug, ScopeEntry, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v", tt.level, tt.scope, got)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	root := Begin(tr, ScopeDriver, "run", 0)
	child := Begin(tr, ScopeStage, "parse", root.ID())
	child.WithExtra("args", "3").End("ok")
	Begin(tr, ScopeEntry, "filtered", child.ID()).End("")
	root.End("")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ run") {
		t.Errorf("line 0: %q", lines[0])
	}
	if !strings.Contains(lines[2], "  ← parse (ok) {args=3}") {
		t.Errorf("line 2: %q", lines[2])
	}
	if strings.Contains(out, "filtered") {
		t.Error("entry scope should be filtered at phase level")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeEntry, "log", "err", 7)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["scope"] != "entry" || got["name"] != "log" || got["detail"] != "err" {
		t.Fatalf("unexpected event: %v", got)
	}
}

func TestNopSpanIsInert(t *testing.T) {
	span := Begin(Nop, ScopeDriver, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatal("nop span should be inert")
	}
	span.WithExtra("k", "v")
}

func TestRingTracerKeepsNewest(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeEntry, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d", len(snap))
	}
	var names []string
	for _, ev := range snap {
		names = append(names, ev.Name)
	}
	if strings.Join(names, "") != "cde" {
		t.Fatalf("snapshot order = %v", names)
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("dump: %q", buf.String())
	}
}

func TestMultiTracerFansOutAndDumps(t *testing.T) {
	var buf bytes.Buffer
	stream := NewStreamTracer(&buf, LevelPhase, FormatText)
	ring := NewRingTracer(8, LevelPhase)
	m := NewMultiTracer(LevelPhase, stream, ring)

	Begin(m, ScopeStage, "dispatch", 0).End("")
	if strings.Count(buf.String(), "dispatch") != 2 {
		t.Fatalf("stream output: %q", buf.String())
	}
	if len(ring.Snapshot()) != 2 {
		t.Fatalf("ring len = %d", len(ring.Snapshot()))
	}
	var dump bytes.Buffer
	if err := m.Dump(&dump, FormatText); err != nil || !strings.Contains(dump.String(), "dispatch") {
		t.Fatalf("dump = %q, %v", dump.String(), err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop without tracer")
	}
	ring := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	outer, ctx := Start(ctx, ScopeDriver, "run")
	inner, _ := Start(ctx, ScopeStage, "parse")
	inner.End("")
	outer.End("")

	snap := ring.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("len = %d", len(snap))
	}
	if snap[1].Name != "parse" || snap[1].ParentID != outer.ID() {
		t.Fatalf("inner span not parented: %+v", snap[1])
	}
}

func TestNewFromConfig(t *testing.T) {
	tr, err := New(Config{})
	if err != nil || tr.Enabled() {
		t.Fatalf("off config: %v %v", tr, err)
	}

	tr, err = New(Config{Level: LevelError})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := tr.(*RingTracer); !ok {
		t.Fatalf("error level should default to a ring, got %T", tr)
	}

	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Output: &buf, OutputPath: "x.ndjson"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Point(tr, ScopeDriver, "p", "", 0)
	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected ndjson from path suffix, got %q", buf.String())
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{EnvLevel: "detail", EnvOutput: "-", EnvMode: "both"}
	cfg, err := FromEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Level != LevelDetail || cfg.OutputPath != "-" || cfg.Mode != ModeBoth {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	env[EnvLevel] = "nope"
	if _, err := FromEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok }); err == nil {
		t.Fatal("expected error")
	}

	cfg, err = FromEnv(func(string) (string, bool) { return "", false })
	if err != nil || cfg.Level != LevelOff {
		t.Fatalf("empty env: %+v %v", cfg, err)
	}
}

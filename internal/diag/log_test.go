package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindTags(t *testing.T) {
	tests := []struct {
		kind Kind
		tag  string
	}{
		{KindError, "err"},
		{KindWarning, "warn"},
		{KindNotice, "note"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.Tag(); got != tt.tag {
			t.Errorf("%v.Tag() = %q, want %q", tt.kind, got, tt.tag)
		}
	}
}

func TestBuilderDoesNotShareBacking(t *testing.T) {
	base := Error("{^x}").With("a")
	left := base.With("b")
	right := base.WithOptional("c")

	if len(base.Descriptions) != 1 {
		t.Fatalf("base modified: %+v", base.Descriptions)
	}
	if left.Descriptions[1].Text != "b" || left.Descriptions[1].Visibility != Normal {
		t.Fatalf("left = %+v", left.Descriptions)
	}
	if right.Descriptions[1].Text != "c" || right.Descriptions[1].Visibility != Optional {
		t.Fatalf("right = %+v", right.Descriptions)
	}
}

func TestInverted(t *testing.T) {
	l := Warning("t").With("shown").WithOptional("hidden")
	inv := l.Inverted()
	if inv[0].Visibility != Optional || inv[1].Visibility != Normal {
		t.Fatalf("unexpected inversion: %+v", inv)
	}
	if l.Descriptions[0].Visibility != Normal {
		t.Fatal("Inverted modified the receiver")
	}
	if got := l.Visible(); len(got) != 1 || got[0].Text != "shown" {
		t.Fatalf("Visible = %+v", got)
	}
}

func TestDescriptionsMarker(t *testing.T) {
	got := Descriptions("plain", "?hidden", "")
	want := []Description{
		{Text: "plain", Visibility: Normal},
		{Text: "hidden", Visibility: Optional},
		{Text: "", Visibility: Normal},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

type describedErr struct{ name string }

func (e *describedErr) Error() string { return "described " + e.name }
func (e *describedErr) Diagnostic() Log {
	return Error("{^test.err}").With(e.name)
}

func TestFromError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", &describedErr{name: "x"})
	got := FromError(wrapped)
	if got.Title != "{^test.err}" || got.Descriptions[0].Text != "x" {
		t.Fatalf("Diagnoser not used: %+v", got)
	}

	plain := FromError(errors.New("boom"))
	if plain.Kind != KindError {
		t.Fatalf("kind = %v", plain.Kind)
	}
	if len(plain.Descriptions) != 1 || !strings.HasSuffix(plain.Descriptions[0].Text, ": boom") {
		t.Fatalf("unexpected generic log: %+v", plain)
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	c.Log(Notice("a"), false)
	c.Log(Error("b"), true)
	if c.Len() != 2 || !c.HasErrors() {
		t.Fatalf("collector state: len=%d errors=%v", c.Len(), c.HasErrors())
	}

	var sink Collector
	c.Flush(&sink)
	if c.Len() != 0 {
		t.Fatalf("flush left %d entries", c.Len())
	}
	got := sink.Entries()
	if len(got) != 2 || got[0].Log.Title != "a" || !got[1].ShowDetails {
		t.Fatalf("flushed = %+v", got)
	}
}

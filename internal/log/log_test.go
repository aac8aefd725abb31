package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelError)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelInfo)

	Debug("hidden")
	Info("shown", "zone", "WIB")
	Error("failed", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at INFO level: %q", out)
	}
	if !strings.Contains(out, "[INFO] shown zone=WIB") {
		t.Errorf("missing info line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] failed err=boom") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestDefaultLevelIsQuiet(t *testing.T) {
	buf := capture(t, LevelError)

	Debug("a")
	Info("b")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFormatKVs(t *testing.T) {
	cases := []struct {
		kv   []any
		want string
	}{
		{[]any{"k", 1}, " k=1"},
		{[]any{"k", "two words"}, ` k="two words"`},
		{[]any{"k", ""}, ` k=""`},
		{[]any{"k", 1, "dangling"}, " k=1"},
		{[]any{42, "skipped", "ok", true}, " ok=true"},
	}
	for _, c := range cases {
		if got := formatKVs(c.kv...); got != c.want {
			t.Errorf("formatKVs(%v) = %q, want %q", c.kv, got, c.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"Error", LevelError, false},
		{"verbose", "", true},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

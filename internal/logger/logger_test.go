package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestConsoleHandlerFiltersAndFormats(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(NewConsoleHandler(&out, slog.LevelInfo, false))

	log.Debug("hidden")
	log.With("component", "storage").WithGroup("prefs").Warn("save failed", "path", "/tmp/a b.yaml")

	text := out.String()
	if strings.Contains(text, "hidden") {
		t.Fatalf("debug record should be filtered: %q", text)
	}
	for _, want := range []string{"WARN", "save failed", " component=storage", `prefs.path="/tmp/a b.yaml"`} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in %q", want, text)
		}
	}
	if strings.Contains(text, "\033[") {
		t.Fatalf("color codes written without a terminal: %q", text)
	}
}

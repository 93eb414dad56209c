package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: " INFO ", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelWarn},
		{input: "verbose", want: slog.LevelWarn},
	}

	for _, tc := range tests {
		if got := ParseLevel(tc.input); got != tc.want {
			t.Fatalf("ParseLevel(%q): want %s, got %s", tc.input, tc.want, got)
		}
	}
}

func TestSetup_JSONRespectsLevel(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	Setup(&buf, "info", "json")

	slog.Debug("hidden")
	slog.Info("parsed customer records", "records", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log line, got %q", buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected json log line: %v", err)
	}
	if entry["msg"] != "parsed customer records" || entry["records"] != float64(2) {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "warn": slog.LevelWarn,
		"error": slog.LevelError, "": slog.LevelWarn, "loud": slog.LevelWarn,
	} {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var b bytes.Buffer
	log := New("info", "json", &b)
	log.Info("run finished", "results", 4)
	log.Debug("hidden")

	var rec map[string]any
	if err := json.Unmarshal(b.Bytes(), &rec); err != nil {
		t.Fatalf("want exactly one JSON record, got %q: %v", b.String(), err)
	}
	if rec["msg"] != "run finished" || rec["service"] != "strtrace" || rec["results"] != float64(4) {
		t.Fatalf("record = %v", rec)
	}
}

func TestNewTextRespectsLevel(t *testing.T) {
	var b bytes.Buffer
	log := New("error", "text", &b)
	log.Warn("dropped")
	log.Error("kept")
	if strings.Contains(b.String(), "dropped") || !strings.Contains(b.String(), "msg=kept") {
		t.Fatalf("output = %q", b.String())
	}
}

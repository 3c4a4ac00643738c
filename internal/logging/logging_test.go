package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONProducesParsableLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{JSON: true, Output: &buf, Level: "debug"})
	log.Info("hello", slog.Int("n", 1))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected valid JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "hello" {
		t.Fatalf("expected msg=hello, got %+v", line)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{JSON: true, Output: &buf, Level: "warn"})
	log.Info("suppressed")
	log.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("expected info line to be suppressed at warn level, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("expected warn line to be logged, got %q", out)
	}
}

func TestWithTickAddsField(t *testing.T) {
	var buf bytes.Buffer
	log := WithTick(New(Config{JSON: true, Output: &buf}), 42)
	log.Info("tick event")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected valid JSON line: %v", err)
	}
	if tick, ok := line["tick"].(float64); !ok || tick != 42 {
		t.Fatalf("expected tick=42, got %+v", line)
	}
}

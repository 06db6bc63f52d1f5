package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"atomikwiz/internal/config"
)

func TestNewQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{Env: "local"}, &buf)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNewVerboseDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{Env: "local", Verbose: true}, &buf)
	log.Debug("parsed quiz")
	if !strings.Contains(buf.String(), "parsed quiz") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}

func TestNewVerboseProductionJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{Env: config.EnvProduction, Verbose: true}, &buf)
	log.Debug("dropped")
	log.Info("wrote page")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single info line, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if entry["msg"] != "wrote page" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

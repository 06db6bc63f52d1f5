package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeQuiz(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	return path
}

// TestLoadReadsFile verifies a quiz file on disk parses like its contents.
func TestLoadReadsFile(t *testing.T) {
	path := writeQuiz(t, testHeader+"\r\nQ?\r\n    a) = yes\r\n")
	parsed, err := Load(path, ParseOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(parsed.Questions) != 1 || parsed.Questions[0].Options[0].Text != "yes" {
		t.Fatalf("unexpected quiz %+v", parsed)
	}
}

// TestLoadMissingFile verifies unreadable files surface as ErrFileAccess.
func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Load(path, ParseOptions{})
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected the os error to be kept, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

// TestLoaderLogs verifies the loader reports split and assembly at debug level.
func TestLoaderLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	path := writeQuiz(t, testHeader+"\nQ?\n    a) = yes\n")
	loader := Loader{Logger: zap.New(core)}
	if _, err := loader.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if logs.FilterMessage("split quiz file").Len() != 1 {
		t.Fatalf("expected split log entry")
	}
	entries := logs.FilterMessage("assembled quiz").All()
	if len(entries) != 1 || entries[0].ContextMap()["questions"] != int64(1) {
		t.Fatalf("unexpected assembly log %+v", entries)
	}
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleQuiz = `Networking quiz
title: Networking
date: 2024-05-10
status: draft
img_prefix: net_00000
img_suffix: png
quiz_path: ../images
---

Which layer routes packets?
    a) = Network
    b)   Transport

Pick the private ranges:
    a) = 10.0.0.0/8
    b)   8.8.8.0/24
    c) = 192.168.0.0/16
`

// isolate runs the test in an empty working directory with an empty home so
// no config or .env file leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"ENV", "OUTPUT_DIR", "SHUFFLE", "MARKDOWN", "WORKERS", "NO_COLOR", "ASSUME_YES", "VERBOSE"} {
		t.Setenv("ATOMIKWIZ_"+key, "")
		os.Unsetenv("ATOMIKWIZ_" + key)
	}
	return dir
}

func writeQuizFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "quiz.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write quiz: %v", err)
	}
	return path
}

func withInput(t *testing.T, answer string) {
	t.Helper()
	orig := input
	input = strings.NewReader(answer)
	t.Cleanup(func() { input = orig })
}

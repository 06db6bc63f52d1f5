package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate runs a test from an empty directory with an empty home.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TestLoadDefaults verifies defaults apply when no config file exists.
func TestLoadDefaults(t *testing.T) {
	home := isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputDir != filepath.Join(home, DefaultSiteDir) {
		t.Fatalf("unexpected output dir: %s", cfg.OutputDir)
	}
	if cfg.Workers != DefaultWorkers || cfg.Shuffle || cfg.Markdown || cfg.AssumeYes {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Env != "local" {
		t.Fatalf("expected local env, got %q", cfg.Env)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %s", cfg.File)
	}
}

// TestLoadDiscoversFile verifies .atomikwiz.yml in the working directory is used.
func TestLoadDiscoversFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".atomikwiz.yml"), "output_dir: ./site\nshuffle: true\nworkers: 2\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputDir != "./site" || !cfg.Shuffle || cfg.Workers != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if filepath.Base(cfg.File) != ".atomikwiz.yml" {
		t.Fatalf("expected config file to be recorded, got %q", cfg.File)
	}
}

// TestLoadEnvOverridesFile verifies environment variables win over the file.
func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yml")
	writeFile(t, path, "markdown: false\nworkers: 2\n")
	t.Setenv("ATOMIKWIZ_MARKDOWN", "true")
	t.Setenv("ATOMIKWIZ_WORKERS", "8")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Markdown || cfg.Workers != 8 {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

// TestLoadDotEnv verifies a .env file in the working directory is applied.
func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "ATOMIKWIZ_ASSUME_YES=true\n")
	t.Cleanup(func() { os.Unsetenv("ATOMIKWIZ_ASSUME_YES") })
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.AssumeYes {
		t.Fatalf("expected assume_yes from .env")
	}
}

// TestLoadMissingExplicitFile verifies an explicit path must exist.
func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

// TestLoadRejectsInvalidValues verifies validation runs after loading.
func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	cases := map[string]string{
		"workers: 0\n":       "workers",
		"env: staging\n":     "env",
		"output_dir: \"\"\n": "output_dir",
	}
	for body, field := range cases {
		path := filepath.Join(dir, "bad.yml")
		writeFile(t, path, body)
		_, err := Load(path)
		if err == nil {
			t.Fatalf("%s: expected validation error", field)
		}
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("%s: expected error to name the field, got %v", field, err)
		}
	}
}

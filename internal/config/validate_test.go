package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCollectsAllIssues(t *testing.T) {
	cfg := Config{Env: "staging", Workers: 0, OutputDir: " ", UI: "fancy"}
	err := cfg.Validate()
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Issues) != 4 {
		t.Fatalf("expected 4 issues, got %+v", validationErr.Issues)
	}
	for _, field := range []string{"workers", "env", "output_dir", "ui"} {
		if !strings.Contains(err.Error(), field+":") {
			t.Fatalf("expected %s in %q", field, err.Error())
		}
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := Config{Env: EnvProduction, Workers: DefaultWorkers, OutputDir: DefaultSiteDir}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

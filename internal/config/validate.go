package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "invalid config"
	}
	lines := make([]string, 0, len(err.Issues)+1)
	lines = append(lines, "invalid config:")
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate reports every value that cannot be corrected silently.
func (c *Config) Validate() error {
	var issues issueCollector
	if c.Workers < 1 {
		issues.add("workers", fmt.Sprintf("must be at least 1, got %d", c.Workers))
	}
	switch c.Env {
	case defaultEnvString, EnvProduction:
	default:
		issues.add("env", fmt.Sprintf("must be %s or %s, got %q", defaultEnvString, EnvProduction, c.Env))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		issues.add("output_dir", "is empty")
	}
	switch strings.ToLower(strings.TrimSpace(c.UI)) {
	case "", "auto", "live", "plain":
	default:
		issues.add("ui", fmt.Sprintf("must be auto, live or plain, got %q", c.UI))
	}
	return issues.result()
}

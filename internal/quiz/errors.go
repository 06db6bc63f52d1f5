package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFrontmatterSyntax reports a malformed frontmatter line.
	ErrFrontmatterSyntax = errors.New("frontmatter syntax error")
	// ErrFrontmatterMissingField reports a required frontmatter key that is absent or empty.
	ErrFrontmatterMissingField = errors.New("frontmatter is incomplete")
	// ErrOptionFormat reports an option line that cannot hold a marker and text.
	ErrOptionFormat = errors.New("option format error")
	// ErrMalformedQuestion reports a question block that breaks the line grammar.
	ErrMalformedQuestion = errors.New("malformed question")
	// ErrFileAccess reports a quiz file that cannot be read.
	ErrFileAccess = errors.New("cannot read quiz file")
)

// ParseError ties a parse failure to the offending input line.
type ParseError struct {
	Kind    error
	Line    int
	Text    string
	Message string
}

// Error returns the message prefixed with the error kind and line number.
func (err *ParseError) Error() string {
	var builder strings.Builder
	builder.WriteString(err.Kind.Error())
	if err.Line > 0 {
		fmt.Fprintf(&builder, " (line %d)", err.Line)
	}
	if err.Message != "" {
		builder.WriteString(": ")
		builder.WriteString(err.Message)
	}
	if err.Text != "" {
		fmt.Fprintf(&builder, ": %q", err.Text)
	}
	return builder.String()
}

// Unwrap exposes the error kind for errors.Is.
func (err *ParseError) Unwrap() error {
	return err.Kind
}

func lineError(kind error, line Line, message string) error {
	return &ParseError{Kind: kind, Line: line.Number, Text: line.Text, Message: message}
}

// MissingFieldsError lists every required frontmatter key that was not set.
type MissingFieldsError struct {
	Fields []string
}

// Error returns a readable message naming the missing keys.
func (err *MissingFieldsError) Error() string {
	if err == nil || len(err.Fields) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: missing %s", ErrFrontmatterMissingField, strings.Join(err.Fields, ", "))
}

// Unwrap exposes ErrFrontmatterMissingField for errors.Is.
func (err *MissingFieldsError) Unwrap() error {
	return ErrFrontmatterMissingField
}

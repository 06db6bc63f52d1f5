package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// Template names known to the engine.
const (
	TemplateStart    = "start.html"
	TemplateQuestion = "question.html"
	TemplateEnd      = "end.html"
)

var (
	// ErrRender is the class of every templating failure.
	ErrRender = errors.New("render error")
	// ErrUnknownTemplate reports a template name the engine does not know.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrMissingKey reports a context key a template needs but did not get.
	ErrMissingKey = errors.New("missing context key")
)

// RenderError wraps a templating failure with the template name.
type RenderError struct {
	Template string
	Err      error
}

// Error returns the template name and cause.
func (err *RenderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRender, err.Template, err.Err)
}

// Unwrap exposes both ErrRender and the cause.
func (err *RenderError) Unwrap() []error {
	return []error{ErrRender, err.Err}
}

// Engine renders a named template with a context into a string.
type Engine interface {
	Render(ctx context.Context, name string, data Context) (string, error)
}

// componentFactory builds a templ component from a page context.
type componentFactory func(data Context) (templ.Component, error)

// TemplEngine is an Engine backed by templ components.
type TemplEngine struct {
	templates map[string]componentFactory
}

// NewTemplEngine returns an engine with the start, question and end pages.
func NewTemplEngine() *TemplEngine {
	return &TemplEngine{templates: map[string]componentFactory{
		TemplateStart:    startComponent,
		TemplateQuestion: questionComponent,
		TemplateEnd:      endComponent,
	}}
}

// Render builds the named component from data and renders it.
func (e *TemplEngine) Render(ctx context.Context, name string, data Context) (string, error) {
	factory, ok := e.templates[name]
	if !ok {
		return "", &RenderError{Template: name, Err: ErrUnknownTemplate}
	}
	component, err := factory(data)
	if err != nil {
		return "", &RenderError{Template: name, Err: err}
	}
	var builder strings.Builder
	if err := component.Render(ctx, &builder); err != nil {
		return "", &RenderError{Template: name, Err: err}
	}
	return builder.String(), nil
}

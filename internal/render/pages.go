package render

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"atomikwiz/internal/quiz"
)

// pageWriter writes HTML and keeps the first write error.
type pageWriter struct {
	w   io.Writer
	err error
}

// raw writes trusted markup as is.
func (p *pageWriter) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// text writes escaped text.
func (p *pageWriter) text(s string) {
	p.raw(templ.EscapeString(s))
}

// attr writes an escaped attribute.
func (p *pageWriter) attr(name, value string) {
	p.raw(" " + name + `="`)
	p.text(value)
	p.raw(`"`)
}

// layout wraps the children in the shared page shell. assetPrefix points
// from the page back to the site root.
func layout(title, pageClass, assetPrefix string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.raw("<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\" />\n")
		p.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n<title>")
		p.text(title)
		p.raw("</title>\n<link rel=\"stylesheet\"")
		p.attr("href", assetPrefix+"css/quiz.css")
		p.raw(" />\n</head>\n<body")
		p.attr("class", pageClass)
		p.raw(">\n<main class=\"quiz\">\n")
		if p.err != nil {
			return p.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		p.raw("</main>\n<script")
		p.attr("src", assetPrefix+"js/quiz.js")
		p.raw("></script>\n</body>\n</html>\n")
		return p.err
	})
}

// withLayout renders body inside the page shell.
func withLayout(shell templ.Component, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return shell.Render(templ.WithChildren(ctx, body), w)
	})
}

// StartView renders the landing page of a quiz.
func StartView(title, date, status, firstQuestion string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.raw("<h1 class=\"quiz-title\">")
		p.text(title)
		p.raw("</h1>\n<dl class=\"quiz-meta\">\n<dt>Date</dt><dd class=\"quiz-date\">")
		p.text(date)
		p.raw("</dd>\n<dt>Status</dt><dd class=\"quiz-status\">")
		p.text(status)
		p.raw("</dd>\n</dl>\n<a class=\"button start\"")
		p.attr("href", firstQuestion)
		p.raw(">Start quiz</a>\n")
		return p.err
	})
	return withLayout(layout(title, "start-page", ""), body)
}

// QuestionView renders a single question with its options and navigation.
// body holds trusted HTML fragments.
func QuestionView(title, legend, number, total string, body []string, options []quiz.Option, nav Nav) templ.Component {
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		kind := quiz.KindSingle
		if len(options) > 0 {
			kind = options[0].Kind
		}
		p := &pageWriter{w: w}
		p.raw("<h1 class=\"quiz-title\">")
		p.text(title)
		p.raw("</h1>\n<form class=\"question\"")
		p.attr("data-kind", string(kind))
		p.raw(">\n<fieldset>\n<legend>")
		p.text(legend + " " + number + " of " + total)
		p.raw("</legend>\n<div class=\"question-body\">\n")
		for _, fragment := range body {
			p.raw(fragment)
			p.raw("\n")
		}
		p.raw("</div>\n<ul class=\"options\">\n")
		for _, option := range options {
			id := "option-" + strconv.Itoa(option.Index)
			p.raw("<li class=\"option\"><input")
			p.attr("type", option.Kind.InputType())
			p.attr("name", "answer")
			p.attr("id", id)
			p.attr("value", strconv.Itoa(option.Index))
			p.attr("data-correct", strconv.FormatBool(option.Correct))
			p.raw(" /><label")
			p.attr("for", id)
			p.raw(">")
			p.text(option.Text)
			p.raw("</label></li>\n")
		}
		p.raw("</ul>\n</fieldset>\n<button type=\"button\" class=\"check\">Check answer</button>\n")
		p.raw("<p class=\"feedback\" aria-live=\"polite\"></p>\n</form>\n<nav class=\"pager\">\n<a class=\"previous\"")
		p.attr("href", nav.Previous)
		p.raw(">Previous</a>\n<a class=\"next\"")
		p.attr("href", nav.Next)
		p.raw(">Next</a>\n</nav>\n")
		return p.err
	})
	return withLayout(layout(title, "question-page", "../"), content)
}

// EndView renders the closing page of a quiz.
func EndView(title string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.raw("<h1 class=\"quiz-title\">")
		p.text(title)
		p.raw("</h1>\n<p class=\"done\">You have reached the end of the quiz.</p>\n<a class=\"button restart\"")
		p.attr("href", "../"+StartPage)
		p.raw(">Start again</a>\n")
		return p.err
	})
	return withLayout(layout(title, "end-page", "../"), body)
}

func startComponent(data Context) (templ.Component, error) {
	title, err := data.str(KeyTitle)
	if err != nil {
		return nil, err
	}
	date, err := data.str(KeyDate)
	if err != nil {
		return nil, err
	}
	status, err := data.str(KeyStatus)
	if err != nil {
		return nil, err
	}
	first, err := data.str(KeyFirstQuestion)
	if err != nil {
		return nil, err
	}
	return StartView(title, date, status, first), nil
}

func questionComponent(data Context) (templ.Component, error) {
	values := map[string]string{}
	for _, key := range []string{KeyTitle, KeyLegend, KeyNumber, KeyTotal, KeyPreviousQuestion, KeyNextQuestion} {
		value, err := data.str(key)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	body, err := data.strs(KeyBody)
	if err != nil {
		return nil, err
	}
	options, err := data.options(KeyOptions)
	if err != nil {
		return nil, err
	}
	nav := Nav{Previous: values[KeyPreviousQuestion], Next: values[KeyNextQuestion]}
	return QuestionView(values[KeyTitle], values[KeyLegend], values[KeyNumber], values[KeyTotal], body, options, nav), nil
}

func endComponent(data Context) (templ.Component, error) {
	title, err := data.str(KeyTitle)
	if err != nil {
		return nil, err
	}
	return EndView(title), nil
}

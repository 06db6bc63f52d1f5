package render

import (
	"fmt"
	"strconv"

	"atomikwiz/internal/quiz"
)

// Context keys shared by the page builders and the templates.
const (
	KeyTitle            = "quiz_title"
	KeyDate             = "quiz_date"
	KeyStatus           = "quiz_status"
	KeyFirstQuestion    = "first_question"
	KeyLegend           = "legend"
	KeyNumber           = "number"
	KeyTotal            = "total"
	KeyBody             = "quizq"
	KeyOptions          = "quizo"
	KeyPreviousQuestion = "previous_question"
	KeyNextQuestion     = "next_question"
)

// Context is the data handed to a template.
type Context map[string]any

func (c Context) str(key string) (string, error) {
	value, ok := c[key].(string)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingKey, key)
	}
	return value, nil
}

func (c Context) strs(key string) ([]string, error) {
	value, ok := c[key].([]string)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingKey, key)
	}
	return value, nil
}

func (c Context) options(key string) ([]quiz.Option, error) {
	value, ok := c[key].([]quiz.Option)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingKey, key)
	}
	return value, nil
}

// StartContext builds the start page context.
func StartContext(fm quiz.Frontmatter, total int) Context {
	return Context{
		KeyTitle:         fm.Title,
		KeyDate:          fm.Date,
		KeyStatus:        fm.Status,
		KeyFirstQuestion: FirstQuestion(total),
	}
}

// EndContext builds the end page context.
func EndContext(fm quiz.Frontmatter) Context {
	return Context{KeyTitle: fm.Title}
}

// QuestionContext builds the context of the question at index.
// body holds the HTML fragments of the question text.
func QuestionContext(question quiz.Question, index, total int, body []string) Context {
	nav := Navigation(index, total)
	return Context{
		KeyTitle:            question.Title,
		KeyLegend:           question.Label,
		KeyNumber:           strconv.Itoa(index + 1),
		KeyTotal:            strconv.Itoa(total),
		KeyBody:             body,
		KeyOptions:          question.Options,
		KeyPreviousQuestion: nav.Previous,
		KeyNextQuestion:     nav.Next,
	}
}

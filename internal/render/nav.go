package render

import (
	"fmt"
	"path"
)

// Site layout, relative to the output directory.
const (
	StartPage    = "start.html"
	EndPage      = "end.html"
	QuestionsDir = "questions"
	ImagesDir    = "images"
)

// Nav holds the links of a question page, relative to the questions directory.
type Nav struct {
	Previous string
	Next     string
}

// QuestionFile returns the file name of the n-th question (1-based).
func QuestionFile(n int) string {
	return fmt.Sprintf("q%d.html", n)
}

// QuestionPath returns the site path of the question at index (0-based).
func QuestionPath(index int) string {
	return path.Join(QuestionsDir, QuestionFile(index+1))
}

// EndPath returns the site path of the end page.
func EndPath() string {
	return path.Join(QuestionsDir, EndPage)
}

// FirstQuestion returns the start page link into the quiz.
func FirstQuestion(total int) string {
	if total == 0 {
		return EndPath()
	}
	return QuestionPath(0)
}

// Navigation returns the links of the question at index. The first question
// links back to the start page and the last one forward to the end page.
func Navigation(index, total int) Nav {
	nav := Nav{
		Previous: QuestionFile(index),
		Next:     QuestionFile(index + 2),
	}
	if index == 0 {
		nav.Previous = path.Join("..", StartPage)
	}
	if index == total-1 {
		nav.Next = EndPage
	}
	return nav
}

package quiz

// Legend is the label attached to every question page.
const Legend = "Question"

// Frontmatter holds the metadata header of a quiz file.
type Frontmatter struct {
	Title     string `json:"quiz_title" yaml:"quiz_title"`
	Date      string `json:"quiz_date" yaml:"quiz_date"`
	Status    string `json:"quiz_status" yaml:"quiz_status"`
	Path      string `json:"quiz_path" yaml:"quiz_path"`
	ImgPrefix string `json:"img_prefix" yaml:"img_prefix"`
	ImgSuffix string `json:"img_suffix" yaml:"img_suffix"`
}

// Kind tells whether a question accepts one or several answers.
type Kind string

const (
	KindSingle Kind = "single"
	KindMulti  Kind = "multi"
)

// InputType returns the HTML input type used to render an option of this kind.
func (k Kind) InputType() string {
	if k == KindMulti {
		return "checkbox"
	}
	return "radio"
}

// Option is one answer choice of a question.
type Option struct {
	Text    string `json:"text" yaml:"text"`
	Index   int    `json:"index" yaml:"index"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Question is a parsed question block.
type Question struct {
	Title   string   `json:"title" yaml:"title"`
	Label   string   `json:"label" yaml:"label"`
	Body    []string `json:"body" yaml:"body"`
	Options []Option `json:"options" yaml:"options"`
}

// Quiz is the assembled result of a quiz file.
type Quiz struct {
	Frontmatter Frontmatter `json:"frontmatter" yaml:"frontmatter"`
	Questions   []Question  `json:"questions" yaml:"questions"`
}

// Line is a single input line with its 1-based position in the source file.
type Line struct {
	Number int
	Text   string
}

package quiz

import "io"

// Assemble validates the frontmatter, then parses the questions of doc.
func Assemble(doc Document, opts ParseOptions) (Quiz, error) {
	fm, err := ParseFrontmatter(doc.Header)
	if err != nil {
		return Quiz{}, err
	}
	questions, err := ParseQuestions(doc.Body, fm, opts)
	if err != nil {
		return Quiz{}, err
	}
	return Quiz{Frontmatter: fm, Questions: questions}, nil
}

// Parse reads a quiz from r and assembles it.
func Parse(r io.Reader, opts ParseOptions) (Quiz, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return Quiz{}, err
	}
	return Assemble(Split(lines), opts)
}

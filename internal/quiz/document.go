package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates the frontmatter from the question body.
const Delimiter = "---"

// Document is a quiz file split into its header and body segments.
type Document struct {
	Header []Line
	Body   []Line
}

// ReadLines reads r into numbered lines without line terminators.
func ReadLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []Line
	for number := 1; scanner.Scan(); number++ {
		lines = append(lines, Line{Number: number, Text: strings.TrimRight(scanner.Text(), "\r")})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// Split separates lines into frontmatter and body at the first delimiter line.
// The first line of the file is a title placeholder and is skipped, as is
// every delimiter line.
func Split(lines []Line) Document {
	var doc Document
	if len(lines) == 0 {
		return doc
	}
	inHeader := true
	for _, line := range lines[1:] {
		if strings.HasPrefix(line.Text, Delimiter) {
			inHeader = false
			continue
		}
		if inHeader {
			doc.Header = append(doc.Header, line)
		} else {
			doc.Body = append(doc.Body, line)
		}
	}
	return doc
}

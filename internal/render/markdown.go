package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// bodyFormatter turns question body lines into HTML fragments.
type bodyFormatter interface {
	Format(lines []string) ([]string, error)
}

// plainBody wraps each line in a paragraph and keeps inline markup as is.
type plainBody struct{}

func (plainBody) Format(lines []string) ([]string, error) {
	fragments := make([]string, 0, len(lines))
	for _, line := range lines {
		fragments = append(fragments, "<p>"+line+"</p>")
	}
	return fragments, nil
}

// markdownBody converts each line with goldmark. Raw HTML such as image
// tags is passed through.
type markdownBody struct {
	md goldmark.Markdown
}

func newMarkdownBody() markdownBody {
	return markdownBody{md: goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)}
}

func (m markdownBody) Format(lines []string) ([]string, error) {
	fragments := make([]string, 0, len(lines))
	for _, line := range lines {
		var buf bytes.Buffer
		if err := m.md.Convert([]byte(line), &buf); err != nil {
			return nil, fmt.Errorf("convert markdown: %w", err)
		}
		fragments = append(fragments, string(bytes.TrimSpace(buf.Bytes())))
	}
	return fragments, nil
}

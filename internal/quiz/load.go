package quiz

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Loader reads quiz files from disk.
type Loader struct {
	Logger *zap.Logger
	Opts   ParseOptions
}

func (l Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// Load reads, splits and assembles a quiz file.
func (l Loader) Load(path string) (Quiz, error) {
	log := l.logger().With(zap.String("file", path))
	file, err := os.Open(path)
	if err != nil {
		return Quiz{}, fmt.Errorf("%w %s: %w", ErrFileAccess, path, err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return Quiz{}, fmt.Errorf("%w %s: %w", ErrFileAccess, path, err)
	}
	doc := Split(lines)
	log.Debug("split quiz file",
		zap.Int("lines", len(lines)),
		zap.Int("header_lines", len(doc.Header)),
		zap.Int("body_lines", len(doc.Body)))

	parsed, err := Assemble(doc, l.Opts)
	if err != nil {
		return Quiz{}, err
	}
	log.Debug("assembled quiz",
		zap.String("title", parsed.Frontmatter.Title),
		zap.Int("questions", len(parsed.Questions)),
		zap.Bool("shuffled", l.Opts.Shuffle))
	return parsed, nil
}

// Load reads a quiz file with a silent loader.
func Load(path string, opts ParseOptions) (Quiz, error) {
	return Loader{Opts: opts}.Load(path)
}

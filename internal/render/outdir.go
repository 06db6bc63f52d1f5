package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync/atomic"
)

// OutputDir is an open website directory. Writes cannot escape it.
type OutputDir struct {
	path  string
	root  *os.Root
	pages atomic.Int64
	bytes atomic.Int64
}

// OpenOutputDir creates the website directory tree, copies the web template
// into it and keeps it open until Close.
func OpenOutputDir(path string) (*OutputDir, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("output directory is required")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	root, err := os.OpenRoot(path)
	if err != nil {
		return nil, fmt.Errorf("open output dir: %w", err)
	}
	dir := &OutputDir{path: path, root: root}
	if err := dir.prepare(); err != nil {
		_ = root.Close()
		return nil, err
	}
	return dir, nil
}

func (d *OutputDir) prepare() error {
	for _, sub := range []string{QuestionsDir, ImagesDir} {
		if err := d.root.MkdirAll(sub, 0o755); err != nil {
			return fmt.Errorf("create %s dir: %w", sub, err)
		}
	}
	assets, err := assetsFS()
	if err != nil {
		return err
	}
	return fs.WalkDir(assets, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		if entry.IsDir() {
			return d.root.MkdirAll(name, 0o755)
		}
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", name, err)
		}
		if err := d.root.WriteFile(name, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", name, err)
		}
		return nil
	})
}

// Path returns the directory path.
func (d *OutputDir) Path() string {
	return d.path
}

// WritePage writes a rendered page at name, relative to the directory.
func (d *OutputDir) WritePage(name, content string) error {
	if err := d.root.WriteFile(name, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	d.pages.Add(1)
	d.bytes.Add(int64(len(content)))
	return nil
}

// Pages returns the number of pages written so far.
func (d *OutputDir) Pages() int {
	return int(d.pages.Load())
}

// Bytes returns the number of page bytes written so far.
func (d *OutputDir) Bytes() int64 {
	return d.bytes.Load()
}

// Close releases the directory handle.
func (d *OutputDir) Close() error {
	return d.root.Close()
}

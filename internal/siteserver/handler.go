package siteserver

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"atomikwiz/internal/render"
)

// NewHandler serves the files of a generated site. The bare root redirects
// to the start page.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Root == "" {
		return nil, errors.New("siteserver: site root is required")
	}
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("siteserver: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("siteserver: %s is not a directory", cfg.Root)
	}

	files := http.FileServerFS(os.DirFS(cfg.Root))
	mux := http.NewServeMux()
	mux.Handle("/{$}", http.RedirectHandler("/"+render.StartPage, http.StatusFound))
	mux.Handle("/", readOnly(files))
	return mux, nil
}

// readOnly rejects anything but GET and HEAD.
func readOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package siteserver

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Config captures the settings for previewing a generated site.
type Config struct {
	Addr string
	Root string
}

// Serve starts an HTTP server for the site and stops it when ctx is done.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("siteserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("siteserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}

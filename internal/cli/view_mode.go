package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// viewMode selects how build progress is shown.
type viewMode string

const (
	viewAuto  viewMode = "auto"
	viewLive  viewMode = "live"
	viewPlain viewMode = "plain"
)

// viewDecision is the resolved build view for one run.
type viewDecision struct {
	live     bool
	fallback string
}

var isTerminal = stdoutIsTerminal

func parseViewMode(value string) (viewMode, error) {
	switch mode := viewMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return viewAuto, nil
	case viewAuto, viewLive, viewPlain:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected %s|%s|%s)", value, viewAuto, viewLive, viewPlain)
	}
}

// resolveViewMode picks the progress table or plain messages for a build.
// Verbose runs stay plain so log lines are not redrawn over.
func resolveViewMode(value string, verbose bool, stdout io.Writer) (viewDecision, error) {
	mode, err := parseViewMode(value)
	if err != nil {
		return viewDecision{}, err
	}
	if verbose || mode == viewPlain {
		return viewDecision{}, nil
	}
	tty := isTerminal(stdout)
	if mode == viewLive && !tty {
		return viewDecision{fallback: "Build progress table needs a terminal; printing plain messages instead."}, nil
	}
	return viewDecision{live: tty}, nil
}

func stdoutIsTerminal(w io.Writer) bool {
	switch out := w.(type) {
	case nil:
		return false
	case *os.File:
		return term.IsTerminal(int(out.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(out.Fd()))
	}
	return false
}

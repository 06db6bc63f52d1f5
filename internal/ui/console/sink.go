package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Sink writes user-facing messages, styled when the writer is a terminal.
type Sink struct {
	w      io.Writer
	styled bool
}

// isTerminal reports whether a file descriptor is a TTY.
var isTerminal = term.IsTerminal

// New returns a sink for w. Styling is off when noColor is set, when
// NO_COLOR or TERM=dumb is in the environment, or when w is not a TTY.
func New(w io.Writer, noColor bool) *Sink {
	return &Sink{w: w, styled: !noColor && shouldUseStyling(w)}
}

// Styled reports whether messages carry ANSI styling.
func (s *Sink) Styled() bool {
	return s.styled
}

// Info prints a plain message.
func (s *Sink) Info(format string, args ...any) {
	s.print(lipgloss.Color("252"), false, format, args...)
}

// Success prints a message in green.
func (s *Sink) Success(format string, args ...any) {
	s.print(lipgloss.Color("42"), false, format, args...)
}

// Warn prints a message in yellow.
func (s *Sink) Warn(format string, args ...any) {
	s.print(lipgloss.Color("214"), false, format, args...)
}

// Error prints a bold red message.
func (s *Sink) Error(format string, args ...any) {
	s.print(lipgloss.Color("196"), true, format, args...)
}

// Prompt prints a message without a trailing newline.
func (s *Sink) Prompt(format string, args ...any) {
	if s.w == nil {
		return
	}
	fmt.Fprint(s.w, s.stylize(fmt.Sprintf(format, args...), lipgloss.Color("33"), false))
}

func (s *Sink) print(color lipgloss.Color, bold bool, format string, args ...any) {
	if s.w == nil {
		return
	}
	fmt.Fprintln(s.w, s.stylize(fmt.Sprintf(format, args...), color, bold))
}

func (s *Sink) stylize(text string, color lipgloss.Color, bold bool) string {
	if !s.styled {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}

// shouldUseStyling reports whether ANSI styling should be enabled.
func shouldUseStyling(w io.Writer) bool {
	if w == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return isTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return isTerminal(int(fder.Fd()))
	}
	return false
}

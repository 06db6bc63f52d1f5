package live

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the build header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := "Building " + state.Title
	if !state.StartedAt.IsZero() {
		line += " | Elapsed: " + formatDuration(now.Sub(state.StartedAt))
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := fmt.Sprintf("Pages: %d Queued: %d Rendering: %d Written: %d Failed: %d",
		state.Total, counts.Queued, counts.Rendering, counts.Written, counts.Failed)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the result or the last event line.
func renderFooter(state State, noColor bool) string {
	if state.Finished {
		return stylize(state.Result, noColor, lipgloss.Color("42"))
	}
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"atomikwiz/internal/render"
)

// formatPath truncates long page paths for display.
func formatPath(path string) string {
	const limit = 48
	if len(path) <= limit {
		return path
	}
	return "..." + path[len(path)-limit+3:]
}

// formatBytes renders a page size.
func formatBytes(n int) string {
	if n <= 0 {
		return ""
	}
	return humanize.Bytes(uint64(n))
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row PageRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return formatDuration(row.FinishedAt.Sub(row.StartedAt))
	}
	if !row.StartedAt.IsZero() {
		return formatDuration(now.Sub(row.StartedAt))
	}
	return ""
}

// formatDuration renders a rounded duration for display.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	if duration < time.Millisecond {
		return duration.Round(time.Microsecond).String()
	}
	return duration.Round(time.Millisecond).String()
}

// formatStatus renders the status cell of a row.
func formatStatus(row PageRow, noColor bool) string {
	text := string(row.Status)
	if row.Status == render.PageFailed && row.Error != "" {
		text += ": " + row.Error
	}
	if noColor {
		return text
	}
	return statusStyle(row.Status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status render.PageStatus) lipgloss.Style {
	color := lipgloss.Color("246")
	switch status {
	case render.PageRendering:
		color = lipgloss.Color("33")
	case render.PageWritten:
		color = lipgloss.Color("42")
	case render.PageFailed:
		color = lipgloss.Color("196")
	}
	return lipgloss.NewStyle().Foreground(color)
}

package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the table columns for an 80 column terminal.
func defaultColumns() []table.Column {
	return columnsForWidth(80)
}

// columnsForWidth gives the path column whatever the fixed columns leave.
func columnsForWidth(width int) []table.Column {
	const status, elapsed, size = 24, 10, 10
	path := max(width-status-elapsed-size-8, 16)
	return []table.Column{
		{Title: "Page", Width: path},
		{Title: "Status", Width: status},
		{Title: "Time", Width: elapsed},
		{Title: "Size", Width: size},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatPath(row.Path),
			formatStatus(row, noColor),
			formatRowDuration(row, now),
			formatBytes(row.Bytes),
		})
	}
	return rows
}

package live

import (
	"fmt"

	"atomikwiz/internal/render"
)

// Reduce applies a page event to the UI state.
func Reduce(state State, event render.PageEvent) State {
	state = ensureRow(state, event)
	state = applyPageEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event render.PageEvent) State {
	if event.Index < 0 || event.Index < len(state.Rows) {
		return state
	}
	rows := make([]PageRow, event.Index+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = PageRow{Index: i, Status: render.PageQueued}
	}
	state.Rows = rows
	return state
}

// applyPageEvent updates a row with the given event.
func applyPageEvent(state State, event render.PageEvent) State {
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.Path == "" {
		row.Path = event.Path
	}
	row.Status = event.Status
	switch event.Status {
	case render.PageRendering:
		if row.StartedAt.IsZero() {
			row.StartedAt = event.EmittedAt
		}
	case render.PageWritten:
		row.FinishedAt = event.EmittedAt
		row.Bytes = event.Bytes
	case render.PageFailed:
		row.FinishedAt = event.EmittedAt
		row.Error = event.Error
	}
	state.Rows[event.Index] = row
	return state
}

// recount recomputes status counts for the current rows.
func recount(rows []PageRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case render.PageQueued:
			counts.Queued++
		case render.PageRendering:
			counts.Rendering++
		case render.PageWritten:
			counts.Written++
		case render.PageFailed:
			counts.Failed++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event render.PageEvent) string {
	switch event.Status {
	case render.PageWritten:
		return fmt.Sprintf("wrote %s (%s)", event.Path, formatBytes(event.Bytes))
	case render.PageFailed:
		return fmt.Sprintf("%s failed: %s", event.Path, event.Error)
	}
	return ""
}

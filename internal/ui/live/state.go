package live

import (
	"time"

	"atomikwiz/internal/render"
)

// PageRow holds UI state for a single page.
type PageRow struct {
	Index      int
	Path       string
	Status     render.PageStatus
	Bytes      int
	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
}

// StatusCounts aggregates counts by status.
type StatusCounts struct {
	Queued    int
	Rendering int
	Written   int
	Failed    int
}

// State captures the live UI state for a build.
type State struct {
	Title     string
	Total     int
	StartedAt time.Time
	Finished  bool
	Result    string
	LastEvent string
	Rows      []PageRow
	Counts    StatusCounts
}

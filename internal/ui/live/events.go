package live

import "atomikwiz/internal/render"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventBuildStart signals the start of a site build.
	EventBuildStart EventKind = iota
	// EventPage delivers a page status update.
	EventPage
	// EventBuildEnd signals the end of a site build.
	EventBuildEnd
)

// Event is a single update consumed by the live UI.
type Event struct {
	Kind    EventKind
	Title   string
	Pages   int
	Page    render.PageEvent
	Summary render.Summary
	Error   string
}

package render

import "time"

// PageStatus identifies a page's progress through a build.
type PageStatus string

const (
	// PageQueued marks a page known but not yet rendered.
	PageQueued PageStatus = "queued"
	// PageRendering marks a page whose template is running.
	PageRendering PageStatus = "rendering"
	// PageWritten marks a page saved to the website.
	PageWritten PageStatus = "written"
	// PageFailed marks a page that could not be rendered or saved.
	PageFailed PageStatus = "failed"
)

// PageEvent carries a single status update for a page.
type PageEvent struct {
	// Index orders pages: the start page is 0, questions follow and the
	// end page is last.
	Index     int
	Path      string
	Status    PageStatus
	Bytes     int
	Error     string
	EmittedAt time.Time
}

// Observer receives build progress. Page events arrive from several
// goroutines at once.
type Observer interface {
	// OnBuildStart signals the start of a build with the number of pages.
	OnBuildStart(title string, pages int)
	// OnPage delivers a page status update.
	OnPage(event PageEvent)
	// OnBuildEnd signals the end of a build; err is nil on success.
	OnBuildEnd(summary Summary, err error)
}

type nopObserver struct{}

func (nopObserver) OnBuildStart(string, int)  {}
func (nopObserver) OnPage(PageEvent)          {}
func (nopObserver) OnBuildEnd(Summary, error) {}

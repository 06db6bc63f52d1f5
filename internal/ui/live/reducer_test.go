package live

import (
	"strings"
	"testing"
	"time"

	"atomikwiz/internal/render"
)

func event(index int, status render.PageStatus, at time.Time) render.PageEvent {
	return render.PageEvent{Index: index, Path: "questions/q1.html", Status: status, EmittedAt: at}
}

// TestReducePageLifecycle verifies core status transitions are recorded.
func TestReducePageLifecycle(t *testing.T) {
	start := time.Now()
	state := State{}
	state = Reduce(state, event(1, render.PageQueued, start))
	state = Reduce(state, event(1, render.PageRendering, start))
	written := event(1, render.PageWritten, start.Add(150*time.Millisecond))
	written.Bytes = 2048
	state = Reduce(state, written)

	if len(state.Rows) != 2 {
		t.Fatalf("expected rows up to index 1, got %d", len(state.Rows))
	}
	row := state.Rows[1]
	if row.Status != render.PageWritten || row.Bytes != 2048 {
		t.Fatalf("unexpected row %+v", row)
	}
	if got := formatRowDuration(row, time.Now()); got != "150ms" {
		t.Fatalf("unexpected duration %q", got)
	}
	if state.Counts.Written != 1 || state.Counts.Queued != 1 {
		t.Fatalf("unexpected counts %+v", state.Counts)
	}
	if !strings.HasPrefix(state.LastEvent, "wrote questions/q1.html") {
		t.Fatalf("unexpected last event %q", state.LastEvent)
	}
}

// TestReduceFailure verifies failed pages keep their error.
func TestReduceFailure(t *testing.T) {
	failed := event(0, render.PageFailed, time.Now())
	failed.Error = "boom"
	state := Reduce(State{}, failed)
	if state.Rows[0].Error != "boom" || state.Counts.Failed != 1 {
		t.Fatalf("unexpected state %+v", state)
	}
	if got := formatStatus(state.Rows[0], true); got != "failed: boom" {
		t.Fatalf("unexpected status cell %q", got)
	}
	if state.LastEvent != "questions/q1.html failed: boom" {
		t.Fatalf("unexpected last event %q", state.LastEvent)
	}
}

// TestReduceIgnoresNegativeIndex verifies malformed events are dropped.
func TestReduceIgnoresNegativeIndex(t *testing.T) {
	state := Reduce(State{}, event(-1, render.PageWritten, time.Now()))
	if len(state.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(state.Rows))
	}
}

// TestModelAppliesEvents verifies the model renders build progress and the result.
func TestModelAppliesEvents(t *testing.T) {
	model := NewModel(nil, Options{NoColor: true})
	model = applyEvent(model, Event{Kind: EventBuildStart, Title: "Networking", Pages: 3})
	model = applyEvent(model, Event{Kind: EventPage, Page: event(0, render.PageWritten, time.Now())})
	model = applyEvent(model, Event{Kind: EventBuildEnd, Summary: render.Summary{Pages: 3, Bytes: 4096}})

	view := model.View()
	for _, want := range []string{"Building Networking", "Pages: 3", "Written: 1", "Wrote 3 pages (4.1 kB)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if !model.State().Finished {
		t.Fatalf("expected finished state")
	}
}

// TestModelQuitsAfterBuildEnd verifies the program stops once the build is done.
func TestModelQuitsAfterBuildEnd(t *testing.T) {
	model := NewModel(nil, Options{NoColor: true})
	_, cmd := model.Update(EventMsg{Event: Event{Kind: EventBuildEnd, Error: "boom"}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	updated, _ := model.Update(EventMsg{Event: Event{Kind: EventBuildEnd, Error: "boom"}})
	if got := updated.(Model).State().Result; got != "Build failed: boom" {
		t.Fatalf("unexpected result %q", got)
	}
}

// TestColumnsForWidth verifies the page column absorbs the terminal width.
func TestColumnsForWidth(t *testing.T) {
	if got := columnsForWidth(120)[0].Width; got != 68 {
		t.Fatalf("unexpected page column width %d", got)
	}
	if got := columnsForWidth(10)[0].Width; got != 16 {
		t.Fatalf("expected minimum page width, got %d", got)
	}
}

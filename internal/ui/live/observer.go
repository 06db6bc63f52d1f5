package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"atomikwiz/internal/render"
)

// Controller runs the live UI and implements render.Observer.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	program := tea.NewProgram(NewModel(events, opts), tea.WithOutput(stdout), tea.WithInput(nil))
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.events)
		c.mu.Unlock()
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnBuildStart forwards build start events to the UI.
func (c *Controller) OnBuildStart(title string, pages int) {
	c.send(Event{Kind: EventBuildStart, Title: title, Pages: pages})
}

// OnPage forwards page status updates to the UI. Final page statuses wait
// for buffer space; queued and rendering updates may be dropped.
func (c *Controller) OnPage(event render.PageEvent) {
	switch event.Status {
	case render.PageWritten, render.PageFailed:
		c.sendBlocking(Event{Kind: EventPage, Page: event})
	default:
		c.send(Event{Kind: EventPage, Page: event})
	}
}

// OnBuildEnd forwards the build result to the UI and closes it.
func (c *Controller) OnBuildEnd(summary render.Summary, err error) {
	event := Event{Kind: EventBuildEnd, Summary: summary}
	if err != nil {
		event.Error = err.Error()
	}
	c.sendBlocking(event)
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}

// sendBlocking enqueues an event that must not be dropped.
func (c *Controller) sendBlocking(event Event) {
	if c == nil {
		return
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}
	select {
	case c.events <- event:
	case <-c.done:
	}
}

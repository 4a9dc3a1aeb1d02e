package trace

import (
	"fmt"
	"io"
	"sync"
)

// Kind classifies an event.
type Kind string

const (
	KindAnchor Kind = "anchor" // anchor placed or moved
	KindRoute  Kind = "route"  // edge routed
	KindRender Kind = "render" // entity drawn
)

// Event is a single trace record.
type Event struct {
	Kind    Kind
	Subject string
	Detail  string
}

// String formats the event as one line of text.
func (e Event) String() string {
	return fmt.Sprintf("%-6s %s: %s", e.Kind, e.Subject, e.Detail)
}

// Tracer receives trace events.
type Tracer interface {
	// Emit records a trace event.
	Emit(ev Event)
}

// nopTracer discards everything.
type nopTracer struct{}

// Emit does nothing.
func (nopTracer) Emit(Event) {}

// Nop is the package-level singleton nop tracer.
var Nop Tracer = nopTracer{}

// StreamTracer writes events immediately to an io.Writer, one per line.
type StreamTracer struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewStream creates a new StreamTracer.
func NewStream(w io.Writer) *StreamTracer {
	return &StreamTracer{w: w}
}

// Emit writes an event to the output. After the first write error further
// events are dropped; see Err.
func (t *StreamTracer) Emit(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, ev.String())
}

// Err returns the first write error, if any.
func (t *StreamTracer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Recorder keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Filter returns the recorded events of the given kind.
func (r *Recorder) Filter(kind Kind) []Event {
	var out []Event
	for _, ev := range r.Events() {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

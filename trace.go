package treefx

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// TraceEvent is one completed run of a traced schedule node, in schedule
// seconds.
type TraceEvent struct {
	Name  string  `csv:"name"`
	Start float64 `csv:"start"`
	End   float64 `csv:"end"`
}

// Length returns End - Start.
func (e TraceEvent) Length() float64 {
	return e.End - e.Start
}

// Trace collects TraceEvents in completion order.
type Trace struct {
	events []TraceEvent
}

// NewTrace returns an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

func (t *Trace) record(name string, start, end float64) {
	t.events = append(t.events, TraceEvent{Name: name, Start: start, End: end})
}

// Events returns a copy of the recorded events.
func (t *Trace) Events() []TraceEvent {
	out := make([]TraceEvent, len(t.events))
	copy(out, t.events)
	return out
}

// Len returns the number of recorded events.
func (t *Trace) Len() int {
	return len(t.events)
}

// Find returns every event recorded under name.
func (t *Trace) Find(name string) []TraceEvent {
	var out []TraceEvent
	for _, e := range t.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first event recorded under name.
func (t *Trace) First(name string) (TraceEvent, bool) {
	for _, e := range t.events {
		if e.Name == name {
			return e, true
		}
	}
	return TraceEvent{}, false
}

// WriteCSV writes the events with a header row.
func (t *Trace) WriteCSV(w io.Writer) error {
	events := t.events
	if events == nil {
		events = []TraceEvent{}
	}
	if err := gocsv.Marshal(&events, w); err != nil {
		return fmt.Errorf("treefx: write trace: %w", err)
	}
	return nil
}

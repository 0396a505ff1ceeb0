package convert

import (
	"io"

	"example.com/navtext/internal/record"
)

// Sinks are the destinations of formatted lines. Trigger is optional.
type Sinks struct {
	Primary io.Writer
	Trigger io.Writer
}

// Channel identifies where Route sent a line.
type Channel int

const (
	Dropped Channel = iota
	Primary
	Trigger
)

// Route writes line to the sink selected by class. Regular updates go to the
// primary sink and falling-edge trigger updates to the trigger sink when one
// is configured; everything else is dropped.
func Route(class record.Classification, line string, sinks Sinks) (Channel, error) {
	var (
		w  io.Writer
		ch Channel
	)
	switch class {
	case record.Regular:
		w, ch = sinks.Primary, Primary
	case record.TriggerFallingEdge:
		w, ch = sinks.Trigger, Trigger
	}
	if w == nil {
		return Dropped, nil
	}
	if _, err := io.WriteString(w, line); err != nil {
		return ch, err
	}
	return ch, nil
}

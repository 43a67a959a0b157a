package feed

import (
	"fmt"
	"io"
	"strings"
)

// Event is a single server-sent event.
type Event struct {
	Name string // empty means the default "message" event
	Data string
}

// NewEvent creates an Event of the given name carrying data.
func NewEvent(name, data string) Event {
	return Event{Name: name, Data: data}
}

// WriteTo writes the event in text/event-stream framing. Multi-line data is
// split across several `data:` fields.
func (e Event) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if e.Name != "" {
		fmt.Fprintf(&b, "event: %s\n", e.Name)
	}
	for _, line := range strings.Split(e.Data, "\n") {
		fmt.Fprintf(&b, "data: %s\n", line)
	}
	b.WriteString("\n")
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

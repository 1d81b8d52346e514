package types

import (
	"fmt"
	"time"
)

type EventKind int

const (
	EventSuspended EventKind = iota
	EventStarted
	EventShutdown
	EventPickUp
	EventDropOff
)

// Event is a lifecycle or transfer notice emitted by an elevator.
// Request is only set for EventPickUp and EventDropOff.
type Event struct {
	Kind       EventKind
	ElevatorID string
	Floor      int
	Request    Request
	Time       time.Time
}

// Message renders the event body: "suspended", "started", "shutdown", "+R0: 0>35" or "-R0: 0>35".
func (ev Event) Message() string {
	switch ev.Kind {
	case EventSuspended:
		return "suspended"
	case EventStarted:
		return "started"
	case EventShutdown:
		return "shutdown"
	case EventPickUp:
		return "+" + ev.Request.String()
	case EventDropOff:
		return "-" + ev.Request.String()
	}
	return "unknown"
}

func (ev Event) String() string {
	return fmt.Sprintf("%s @%2d: %s", ev.ElevatorID, ev.Floor, ev.Message())
}

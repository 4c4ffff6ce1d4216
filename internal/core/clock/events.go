package clock

import "time"

// EventType defines the type of clock event.
type EventType string

const (
	EventTick        EventType = "tick"
	EventStateChange EventType = "state_change"
)

// Event represents a clock update for observers.
type Event struct {
	Type EventType
	At   time.Time
}

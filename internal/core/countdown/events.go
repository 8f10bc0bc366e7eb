package countdown

import (
	"time"

	"tickpad/internal/core/keypad"
	"tickpad/internal/core/model"
)

// EventType defines the type of Session event.
type EventType string

const (
	EventEdit        EventType = "edit"
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventFinished    EventType = "finished"
)

// Event carries a Session update to observers.
type Event struct {
	Type     EventType
	Running  bool
	Duration model.Duration
	Progress float64
	Target   keypad.EditTarget
	At       time.Time
}

// Snapshot is the observable state of a Session at one instant.
type Snapshot struct {
	Duration model.Duration
	Running  bool
	Progress float64
	Target   keypad.EditTarget
}

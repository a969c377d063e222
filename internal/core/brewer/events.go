package brewer

import (
	"time"

	"github.com/google/uuid"
)

// State represents the controller mode for the current brew.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

// EventType defines the type of controller event.
type EventType string

const (
	EventStarted   EventType = "started"
	EventProgress  EventType = "progress"
	EventCompleted EventType = "completed"
	EventCancelled EventType = "cancelled"
	EventReset     EventType = "reset"
)

// Event represents a controller update for observers.
type Event struct {
	Type      EventType
	State     State
	BrewID    uuid.UUID
	Name      string
	Total     int
	Remaining int
	Progress  float64
	At        time.Time
}

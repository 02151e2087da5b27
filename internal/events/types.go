package events

// EventType represents the type of creature event
type EventType string

// Participant identifies a creature taking part in an event
type Participant struct {
	ID   string
	Name string
}

// Event is the base interface for all creature events
type Event interface {
	GetType() EventType
	GetActor() Participant
	GetTarget() *Participant
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type   EventType
	Actor  Participant
	Target *Participant // nil for self-directed events
}

func (e *BaseEvent) GetType() EventType      { return e.Type }
func (e *BaseEvent) GetActor() Participant   { return e.Actor }
func (e *BaseEvent) GetTarget() *Participant { return e.Target }

package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventAnimalRemoved = "animal_removed"
	EventPlayerHit     = "player_hit"
	EventPlayerDied    = "player_died"
	EventAnimalHit     = "animal_hit"
)

// AnimalRemoved is the payload of EventAnimalRemoved.
type AnimalRemoved struct {
	Entity  Entity
	Species string
	Name    string
}

// PlayerHit is the payload of EventPlayerHit.
type PlayerHit struct {
	Amount int
	Health int
}

// AnimalHit is the payload of EventAnimalHit.
type AnimalHit struct {
	Entity Entity
	Amount int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len is the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

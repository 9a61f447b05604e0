package ecs

// EventKind identifies gameplay events raised by systems during a frame.
type EventKind string

const (
	EventHit       EventKind = "hit"
	EventDeath     EventKind = "death"
	EventPickup    EventKind = "pickup"
	EventEquip     EventKind = "equip"
	EventHazard    EventKind = "hazard"
	EventReload    EventKind = "reload"
	EventSwallowed EventKind = "input_swallowed"
)

// Event is a gameplay event payload. Source and Target are zero when the
// event has no such party.
type Event struct {
	Kind   EventKind
	Source Entity
	Target Entity
	Amount float64
	Detail string
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

// Len reports the number of queued events.
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

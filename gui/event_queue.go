package gui

// EventQueue is a FIFO of platform events. Windowing backends push from
// their callbacks and the frame loop pops until empty.
type EventQueue struct {
	events []Event
	head   int
}

// Push appends ev.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Pop removes and returns the oldest event.
func (q *EventQueue) Pop() (Event, bool) {
	if q.head == len(q.events) {
		return Event{}, false
	}
	ev := q.events[q.head]
	q.head++
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	}
	return ev, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events) - q.head
}

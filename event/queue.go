package event

import "sync"

// EventQueue is a FIFO Sink drained by the host loop after each tick
// Push may be called from any goroutine; Consume is single-consumer
//
// Overflow: oldest events are dropped once capacity is reached
type EventQueue struct {
	mu       sync.Mutex
	events   []GameEvent
	capacity int
	dropped  uint64
}

// NewEventQueue creates a queue holding at most capacity pending events
func NewEventQueue(capacity int) *EventQueue {
	if capacity <= 0 {
		capacity = 256
	}
	return &EventQueue{
		events:   make([]GameEvent, 0, capacity),
		capacity: capacity,
	}
}

// Push appends an event, evicting the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) >= eq.capacity {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
		eq.dropped++
	}
	eq.events = append(eq.events, ev)
}

// Emit implements Sink
func (eq *EventQueue) Emit(ev GameEvent) { eq.Push(ev) }

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Dropped returns how many events were evicted by overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}

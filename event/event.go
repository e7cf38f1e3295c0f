package event

import "github.com/lixenwraith/road-fighter/core"

// GameEvent is a single observable occurrence inside the simulation
type GameEvent struct {
	Type   EventType
	Tick   int64  // Running tick the event happened on
	Entity uint64 // Subject entity id
	Other  uint64 // Counterpart entity id, 0 if none
	Kind   string // Track kind for EventUnknownKind
	Cells  []core.Point
}

// Sink receives events from the simulation
type Sink interface {
	Emit(ev GameEvent)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ev GameEvent)

func (f SinkFunc) Emit(ev GameEvent) { f(ev) }

// Discard drops every event
var Discard Sink = SinkFunc(func(GameEvent) {})

// Fanout forwards every event to each sink in order
func Fanout(sinks ...Sink) Sink {
	return SinkFunc(func(ev GameEvent) {
		for _, s := range sinks {
			s.Emit(ev)
		}
	})
}

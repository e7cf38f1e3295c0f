package event

// EventType represents the type of game event
type EventType int

const (
	// EventProjectileFired signals a fire action created a projectile
	// Trigger: Simulation.Fire | Entity: projectile
	EventProjectileFired EventType = iota

	// EventProjectileExpired signals a projectile left the right edge
	// Trigger: Simulation tick | Entity: projectile
	EventProjectileExpired

	// EventBombDestroyed signals a projectile struck a bomb; both are gone
	// Trigger: Simulation tick | Entity: bomb, Other: projectile
	EventBombDestroyed

	// EventCrash signals the fatal collision that ended the session
	// Trigger: Simulation tick | Entity: obstacle, Other: car, Cells: explosion cells
	EventCrash

	// EventUnknownKind signals a track entry whose kind spawns nothing
	// Trigger: Simulation construction | Kind: track kind
	EventUnknownKind
)

var typeNames = map[EventType]string{
	EventProjectileFired:   "ProjectileFired",
	EventProjectileExpired: "ProjectileExpired",
	EventBombDestroyed:     "BombDestroyed",
	EventCrash:             "Crash",
	EventUnknownKind:       "UnknownKind",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

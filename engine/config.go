package engine

import (
	"time"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
	"github.com/lixenwraith/road-fighter/entity"
	"github.com/lixenwraith/road-fighter/event"
)

// Config holds session parameters fixed at construction
type Config struct {
	Playfield core.Playfield
	Descent   entity.DescentRule

	// TickDelay and EndedTickDelay are reported to the host, never slept on here
	TickDelay      time.Duration
	EndedTickDelay time.Duration

	// Seed drives cloud placement; equal seeds give equal sessions
	Seed int64

	// Sink receives simulation events; nil discards them
	Sink event.Sink
}

// DefaultConfig returns a config for the given playfield with default cadence
func DefaultConfig(pf core.Playfield) Config {
	return Config{
		Playfield:      pf,
		Descent:        entity.DescentNone,
		TickDelay:      constants.TickDelay,
		EndedTickDelay: constants.EndedTickDelay,
	}
}

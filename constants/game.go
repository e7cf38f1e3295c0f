package constants

import "time"

// Tick cadence
const (
	// TickDelay is the host sleep between ticks while the session runs
	TickDelay = 40 * time.Millisecond

	// EndedTickDelay slows the loop down once the car has crashed
	EndedTickDelay = 200 * time.Millisecond
)

// Distance accounting
const (
	// DistancePerTick is added to the distance counter for each running tick
	DistancePerTick = 0.1
)

// Screen layout of the host window
const (
	// StatusBoxHeight is the number of rows reserved below the playfield for the text box
	StatusBoxHeight = 5

	// BorderSize is the playfield frame thickness on each side
	BorderSize = 1

	// StatusTextX, StatusTextY position the distance text inside the status box
	StatusTextX = 3
	StatusTextY = 2
)

// DefaultTrack is the asset name of the track loaded when none is configured
const DefaultTrack = "track"

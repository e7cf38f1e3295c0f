package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/road-fighter/asset"
	"github.com/lixenwraith/road-fighter/config"
	"github.com/lixenwraith/road-fighter/core"
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/event"
	"github.com/lixenwraith/road-fighter/input"
	"github.com/lixenwraith/road-fighter/logger"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/status"
)

// eventBuffer bounds key events waiting between ticks
const eventBuffer = 64

// game is the host loop around one simulation session
type game struct {
	screen       tcell.Screen
	sim          *engine.Simulation
	layout       render.Layout
	orchestrator *render.RenderOrchestrator
	keys         *input.KeyTable

	// Simulation events are queued during a tick and fanned out after it
	queue *event.EventQueue
	sink  event.Sink
	stats *status.Registry
	log   *logrus.Entry
}

// newGame sizes the playfield and builds the session
// The playfield comes from the config when set, otherwise from the screen size
func newGame(screen tcell.Screen, cfg *config.Config, provider asset.Provider, track []asset.TrackEntry, keys *input.KeyTable, sinks ...event.Sink) (*game, error) {
	cols, lines := screen.Size()
	layout := render.LayoutForScreen(cols, lines)
	if cfg.Game.Width > 0 && cfg.Game.Height > 0 {
		layout = render.LayoutForPlayfield(core.Playfield{Width: cfg.Game.Width, Height: cfg.Game.Height})
	}
	if layout.Playfield.Width == 0 || layout.Playfield.Height == 0 {
		return nil, fmt.Errorf("terminal %dx%d is too small", cols, lines)
	}

	seed := cfg.ResolveSeed()
	queue := event.NewEventQueue(0)
	sim, err := engine.New(engine.Config{
		Playfield:      layout.Playfield,
		Descent:        cfg.Descent(),
		TickDelay:      cfg.Game.TickDelay,
		EndedTickDelay: cfg.Game.EndedTickDelay,
		Seed:           seed,
		Sink:           queue,
	}, provider, track)
	if err != nil {
		return nil, err
	}

	log := logger.Session.WithField("component", "host")
	log.WithFields(logrus.Fields{
		"track":   cfg.Game.Track,
		"seed":    seed,
		"width":   layout.Playfield.Width,
		"height":  layout.Playfield.Height,
		"descent": cfg.Descent().String(),
	}).Info("session started")

	stats := status.NewRegistry()
	g := &game{
		screen:       screen,
		sim:          sim,
		layout:       layout,
		orchestrator: render.NewGameOrchestrator(screen, layout),
		keys:         keys,
		queue:        queue,
		sink:         event.Fanout(append([]event.Sink{logger.EventSink(log), stats}, sinks...)...),
		stats:        stats,
		log:          log,
	}
	// Construction may already have reported unknown track kinds
	g.dispatchEvents()
	return g, nil
}

// run drives ticks until quit or the event stream closes, and returns the summary
func (g *game) run() string {
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	// Input polling uses a goroutine since PollEvent blocks
	core.Go(func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	for {
		g.tick()

		timer := time.NewTimer(g.sim.TickDelay())
	wait:
		for {
			select {
			case ev, ok := <-events:
				if !ok || !g.handle(ev) {
					timer.Stop()
					return g.finish()
				}
			case <-timer.C:
				break wait
			}
		}
	}
}

// tick advances the simulation once and redraws
func (g *game) tick() {
	g.sim.Advance()
	g.stats.Floats.Get(status.Distance).Set(g.sim.Distance())
	g.dispatchEvents()
	g.draw()
}

func (g *game) draw() {
	g.orchestrator.RenderFrame(render.RenderContext{
		Layout:   g.layout,
		Entities: g.sim.Entities(),
		Status:   g.sim.StatusLine(),
	})
}

// handle processes one terminal event; false means quit
func (g *game) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, ok := g.keys.Lookup(ev)
		if !ok {
			return true
		}
		if !g.sim.Apply(action) {
			return false
		}
		g.dispatchEvents()
	case *tcell.EventResize:
		// Playfield is fixed for the session; a smaller terminal clips it
		g.orchestrator.Resize(g.layout)
		g.draw()
	}
	return true
}

// dispatchEvents drains the simulation queue into the log and audio sinks
func (g *game) dispatchEvents() {
	for _, ev := range g.queue.Consume() {
		g.sink.Emit(ev)
	}
}

func (g *game) finish() string {
	g.log.WithFields(logrus.Fields(g.stats.Snapshot())).WithFields(logrus.Fields{
		"phase":   g.sim.Phase().String(),
		"ticks":   g.sim.Tick(),
		"dropped": g.queue.Dropped(),
	}).Info("session ended")
	return g.sim.Summary()
}

package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/road-fighter/asset"
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
	"github.com/lixenwraith/road-fighter/entity"
	"github.com/lixenwraith/road-fighter/event"
)

// ErrNoCar is returned when a simulation is assembled without exactly one car
var ErrNoCar = errors.New("simulation needs exactly one car")

// template is a loaded texture reused for entities created mid-session
type template struct {
	glyph  core.GlyphGrid
	colors *core.ColorGrid
	color  core.Color
}

// Simulation owns the ordered entity list and advances it tick by tick
// List order is paint order: road first, car after obstacles, explosions last
// Not safe for concurrent use; the host calls it from one goroutine
type Simulation struct {
	cfg  Config
	pf   core.Playfield
	sink event.Sink

	entities   []*entity.Entity
	car        *entity.Entity
	explosions []*entity.Entity
	nextID     entity.ID
	shot       template

	distance float64
	phase    Phase
	tick     int64
}

// New builds a session from a track: road, one entity per known track kind, then the car
// Any asset failure is fatal and returned
func New(cfg Config, provider asset.Provider, track []asset.TrackEntry) (*Simulation, error) {
	cfg = withDefaults(cfg)

	shot, err := loadTemplate(provider, constants.ProjectileTexture, core.ColorRed)
	if err != nil {
		return nil, fmt.Errorf("projectile: %w", err)
	}
	carTpl, err := loadTemplate(provider, constants.CarTexture, core.ColorMagenta)
	if err != nil {
		return nil, fmt.Errorf("car: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	ents := []*entity.Entity{entity.NewRoad(cfg.Playfield)}

	var unknown []string
	xOffset := 0
	for _, te := range track {
		xOffset += te.XDelta
		e, err := spawn(provider, cfg.Playfield, te.Kind, float64(xOffset), rng)
		if err != nil {
			return nil, fmt.Errorf("track entry %q: %w", te.Kind, err)
		}
		if e == nil {
			unknown = append(unknown, te.Kind)
			continue
		}
		ents = append(ents, e)
	}

	car := entity.NewCar(constants.CarStartX, constants.CarStartY, carTpl.glyph, carTpl.colors, carTpl.color)
	ents = append(ents, car)

	s, err := assemble(cfg, ents)
	if err != nil {
		return nil, err
	}
	s.shot = shot

	for _, kind := range unknown {
		s.sink.Emit(event.GameEvent{Type: event.EventUnknownKind, Kind: kind})
	}
	return s, nil
}

// NewWithEntities assembles a session from a ready entity list, kept in the given order
// Projectiles fired use a built-in glyph
func NewWithEntities(cfg Config, ents ...*entity.Entity) (*Simulation, error) {
	s, err := assemble(withDefaults(cfg), ents)
	if err != nil {
		return nil, err
	}
	s.shot = template{glyph: core.NewGlyphGrid([]string{"->"}), color: core.ColorRed}
	return s, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Sink == nil {
		cfg.Sink = event.Discard
	}
	if cfg.TickDelay <= 0 {
		cfg.TickDelay = constants.TickDelay
	}
	if cfg.EndedTickDelay <= 0 {
		cfg.EndedTickDelay = constants.EndedTickDelay
	}
	return cfg
}

func assemble(cfg Config, ents []*entity.Entity) (*Simulation, error) {
	s := &Simulation{
		cfg:      cfg,
		pf:       cfg.Playfield,
		sink:     cfg.Sink,
		entities: make([]*entity.Entity, 0, len(ents)+16),
		nextID:   1,
	}
	for _, e := range ents {
		if e.Kind == entity.KindCar {
			if s.car != nil {
				return nil, ErrNoCar
			}
			s.car = e
		}
		if e.Kind == entity.KindExplosion {
			s.explosions = append(s.explosions, e)
		}
		s.assignID(e)
		s.entities = append(s.entities, e)
	}
	if s.car == nil {
		return nil, ErrNoCar
	}
	return s, nil
}

func loadTemplate(provider asset.Provider, name string, color core.Color) (template, error) {
	g, err := provider.LoadGlyph(name)
	if err != nil {
		return template{}, err
	}
	cg, err := provider.LoadColorGrid(name)
	if err != nil {
		return template{}, err
	}
	return template{glyph: g, colors: cg, color: color}, nil
}

func (s *Simulation) assignID(e *entity.Entity) {
	e.ID = s.nextID
	s.nextID++
}

// carIndex returns the car's position in the list
func (s *Simulation) carIndex() int {
	for i, e := range s.entities {
		if e == s.car {
			return i
		}
	}
	return len(s.entities)
}

// Entities returns the entity list in paint order
// The slice is a copy; the entities themselves must be treated as read-only
func (s *Simulation) Entities() []*entity.Entity {
	out := make([]*entity.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Car returns the player car
func (s *Simulation) Car() *entity.Entity { return s.car }

// Explosions returns the explosions spawned by the fatal collision
func (s *Simulation) Explosions() []*entity.Entity { return s.explosions }

func (s *Simulation) Playfield() core.Playfield { return s.pf }
func (s *Simulation) Phase() Phase              { return s.phase }
func (s *Simulation) Distance() float64         { return s.distance }

// Tick returns the number of running ticks processed
func (s *Simulation) Tick() int64 { return s.tick }

// TickDelay is how long the host should wait before the next Advance
// The loop slows down once the session has ended
func (s *Simulation) TickDelay() time.Duration {
	if s.phase == PhaseEnded {
		return s.cfg.EndedTickDelay
	}
	return s.cfg.TickDelay
}

// StatusLine is the text shown under the playfield
func (s *Simulation) StatusLine() string {
	return fmt.Sprintf("Your distance: %dm", int(s.distance))
}

// Summary is the final message the host prints on exit
func (s *Simulation) Summary() string {
	if s.phase == PhaseEnded {
		return fmt.Sprintf("You're dead ;(. %dm", int(s.distance))
	}
	return s.StatusLine()
}

package engine

import (
	"github.com/lixenwraith/road-fighter/entity"
	"github.com/lixenwraith/road-fighter/event"
)

// Action is a named input forwarded by the host
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionQuit
)

var actionNames = map[string]Action{
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"fire":       ActionFire,
	"quit":       ActionQuit,
}

// ParseAction resolves a canonical action name
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "none"
}

// Apply dispatches an action to the simulation
// Returns false for quit, which the host handles; unknown actions are ignored
// Once ended the car no longer responds
func (s *Simulation) Apply(a Action) bool {
	if a == ActionQuit {
		return false
	}
	if s.phase == PhaseEnded {
		return true
	}

	switch a {
	case ActionMoveLeft:
		s.MoveLeft()
	case ActionMoveRight:
		s.MoveRight()
	case ActionMoveUp:
		s.MoveUp()
	case ActionMoveDown:
		s.MoveDown()
	case ActionFire:
		s.Fire()
	}
	return true
}

// MoveLeft shifts the car one column left, unbounded
func (s *Simulation) MoveLeft() { s.car.X-- }

// MoveRight shifts the car one column right, unbounded
func (s *Simulation) MoveRight() { s.car.X++ }

// MoveUp starts a jump when the car is grounded
func (s *Simulation) MoveUp() { s.car.GoUp() }

// MoveDown applies the configured descent rule
func (s *Simulation) MoveDown() { s.car.GoDown(s.cfg.Descent) }

// Fire launches a projectile from the car's leading edge
// It is inserted just before the car so the car still paints on top
func (s *Simulation) Fire() {
	p := entity.NewProjectile(s.car.X+float64(s.car.Width), s.car.Y, s.shot.glyph, s.shot.colors, s.shot.color)
	s.assignID(p)

	idx := s.carIndex()
	s.entities = append(s.entities, nil)
	copy(s.entities[idx+1:], s.entities[idx:])
	s.entities[idx] = p

	s.sink.Emit(event.GameEvent{Type: event.EventProjectileFired, Tick: s.tick, Entity: uint64(p.ID)})
}

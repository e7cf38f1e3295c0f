package entity

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
)

// Update advances the entity by one tick
// Returns false when the entity must leave the entity list
func (e *Entity) Update(pf core.Playfield) bool {
	switch e.Kind {
	case KindObstacle:
		e.scroll(pf)
	case KindBomb:
		e.scroll(pf)
		e.fall(pf)
	case KindProjectile:
		e.X += constants.ProjectileSpeed
		if e.X >= float64(pf.Width-1) {
			return false
		}
	case KindCar:
		e.updateCar(pf)
	case KindExplosion:
		e.Blink = !e.Blink
	case KindRoad:
	}
	return true
}

// scroll moves left and wraps to the right edge once fully off the left
func (e *Entity) scroll(pf core.Playfield) {
	e.X -= constants.ScrollSpeed
	if e.X+float64(e.Width) < constants.WrapMargin {
		e.X = float64(pf.Width)
	}
}

// fall drifts down as a sawtooth bounded by the ground line
func (e *Entity) fall(pf core.Playfield) {
	e.Y += constants.BombFallSpeed
	if e.Y+float64(e.Height) > float64(pf.Height-constants.GroundClearance) {
		e.Y = constants.BombResetY
	}
}

package entity

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/core"
)

// GroundY is the car's resting row on the given playfield
func (e *Entity) GroundY(pf core.Playfield) float64 {
	return float64(pf.Height - e.Height)
}

// updateCar moves the car along its jump arc and animates the wheels
// The arc is y = ground + a*(t^2 - 4t), t = phase/5, landing at t = 4
func (e *Entity) updateCar(pf core.Playfield) {
	ground := e.GroundY(pf)
	if e.AscentLevel > 0 {
		e.AscentPhase++
		t := float64(e.AscentPhase) / constants.AscentPhaseScale
		amp := constants.AscentAmplitude * float64(e.AscentLevel) / constants.AscentLevelMax
		e.Y = float64(core.Round(ground + amp*(t*t-4*t)))
		if t >= constants.AscentLandingArg {
			e.AscentPhase = 0
			e.AscentLevel = 0
			e.Y = ground
		}
	} else {
		e.AscentPhase = 0
		e.Y = ground
	}

	for i := range e.wheels {
		if e.wheels[i].ch == constants.WheelRuneA {
			e.wheels[i].ch = constants.WheelRuneB
		} else {
			e.wheels[i].ch = constants.WheelRuneA
		}
	}
}

// GoUp starts a jump; ignored while a jump is in progress
func (e *Entity) GoUp() {
	if e.Kind != KindCar || e.AscentPhase > 0 {
		return
	}
	e.AscentLevel = constants.AscentLevelMax
}

// GoDown applies the descent rule; DescentNone ignores it
// Under DescentGraduated each call flattens the arc by one level and level 0 lands the car
func (e *Entity) GoDown(rule DescentRule) {
	if e.Kind != KindCar || rule != DescentGraduated || e.AscentLevel == 0 {
		return
	}
	e.AscentLevel--
	if e.AscentLevel == 0 {
		e.AscentPhase = 0
	}
}

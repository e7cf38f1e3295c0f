package engine

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/entity"
	"github.com/lixenwraith/road-fighter/event"
	"github.com/lixenwraith/road-fighter/physics"
)

// Advance runs one tick
// Running: move everything, resolve projectile hits, resolve the car crash, count distance
// Ended: only the explosions keep blinking
func (s *Simulation) Advance() {
	if s.phase == PhaseEnded {
		for _, e := range s.explosions {
			e.Update(s.pf)
		}
		return
	}

	s.tick++
	s.updateAll()
	s.resolveProjectileHits()
	s.resolveCrash()

	if s.phase == PhaseRunning {
		s.distance += constants.DistancePerTick
	}
}

// updateAll moves every entity and drops the ones that left the playfield
func (s *Simulation) updateAll() {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Update(s.pf) {
			kept = append(kept, e)
			continue
		}
		if e.Kind == entity.KindProjectile {
			s.sink.Emit(event.GameEvent{Type: event.EventProjectileExpired, Tick: s.tick, Entity: uint64(e.ID)})
		}
	}
	clear(s.entities[len(kept):])
	s.entities = kept
}

// resolveProjectileHits destroys every bomb and projectile pair that overlaps
// Pairs come from snapshots taken before any removal. A bomb takes every
// projectile overlapping it; a projectile already spent cannot hit another bomb
func (s *Simulation) resolveProjectileHits() {
	var bombs, shots []*entity.Entity
	for _, e := range s.entities {
		switch e.Kind {
		case entity.KindBomb:
			bombs = append(bombs, e)
		case entity.KindProjectile:
			shots = append(shots, e)
		}
	}
	if len(bombs) == 0 || len(shots) == 0 {
		return
	}

	destroyed := make(map[entity.ID]struct{})
	for _, bomb := range bombs {
		for _, shot := range shots {
			if _, gone := destroyed[shot.ID]; gone {
				continue
			}
			if physics.Collides(bomb, shot) {
				destroyed[bomb.ID] = struct{}{}
				destroyed[shot.ID] = struct{}{}
				s.sink.Emit(event.GameEvent{
					Type:   event.EventBombDestroyed,
					Tick:   s.tick,
					Entity: uint64(bomb.ID),
					Other:  uint64(shot.ID),
				})
			}
		}
	}
	if len(destroyed) == 0 {
		return
	}

	kept := s.entities[:0]
	for _, e := range s.entities {
		if _, gone := destroyed[e.ID]; !gone {
			kept = append(kept, e)
		}
	}
	clear(s.entities[len(kept):])
	s.entities = kept
}

// resolveCrash ends the session on the first entity, in list order, that overlaps the car
// One explosion is appended per overlapping cell
func (s *Simulation) resolveCrash() {
	n := len(s.entities)
	for i := 0; i < n; i++ {
		e := s.entities[i]
		if e == s.car || !physics.Collides(e, s.car) {
			continue
		}

		cells := physics.Intersect(e, s.car).Sorted()
		for _, p := range cells {
			boom := entity.NewExplosion(p)
			s.assignID(boom)
			s.entities = append(s.entities, boom)
			s.explosions = append(s.explosions, boom)
		}
		s.phase = PhaseEnded
		s.sink.Emit(event.GameEvent{
			Type:   event.EventCrash,
			Tick:   s.tick,
			Entity: uint64(e.ID),
			Other:  uint64(s.car.ID),
			Cells:  cells,
		})
		return
	}
}

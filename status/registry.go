package status

import (
	"sync/atomic"

	"github.com/lixenwraith/road-fighter/event"
)

// Metric names
const (
	ShotsFired     = "shots.fired"
	ShotsExpired   = "shots.expired"
	BombsDestroyed = "bombs.destroyed"
	CrashCells     = "crash.cells"
	UnknownKinds   = "track.unknown"
	Distance       = "distance"
)

// Registry collects session statistics
// Counters are fed by simulation events; gauges are set by the host
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Emit implements event.Sink
func (r *Registry) Emit(ev event.GameEvent) {
	switch ev.Type {
	case event.EventProjectileFired:
		r.Ints.Get(ShotsFired).Add(1)
	case event.EventProjectileExpired:
		r.Ints.Get(ShotsExpired).Add(1)
	case event.EventBombDestroyed:
		r.Ints.Get(BombsDestroyed).Add(1)
	case event.EventCrash:
		r.Ints.Get(CrashCells).Add(int64(len(ev.Cells)))
	case event.EventUnknownKind:
		r.Ints.Get(UnknownKinds).Add(1)
	}
}

// Snapshot returns every metric by name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	return out
}

// Int reads a counter, 0 if never touched
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/road-fighter/event"
)

// EventSink logs simulation events: crashes and unknown track kinds at info and up, the rest at debug
func EventSink(entry *logrus.Entry) event.Sink {
	return event.SinkFunc(func(ev event.GameEvent) {
		fields := logrus.Fields{
			"event": ev.Type.String(),
			"tick":  ev.Tick,
		}
		if ev.Entity != 0 {
			fields["entity"] = ev.Entity
		}
		if ev.Other != 0 {
			fields["other"] = ev.Other
		}
		e := entry.WithFields(fields)

		switch ev.Type {
		case event.EventCrash:
			e.WithField("cells", len(ev.Cells)).Info("car crashed")
		case event.EventUnknownKind:
			e.WithField("kind", ev.Kind).Warn("unknown track kind skipped")
		case event.EventBombDestroyed:
			e.Debug("bomb destroyed")
		case event.EventProjectileFired:
			e.Debug("projectile fired")
		case event.EventProjectileExpired:
			e.Debug("projectile left the playfield")
		default:
			e.Debug("event")
		}
	})
}

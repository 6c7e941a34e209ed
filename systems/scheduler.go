package systems

import (
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateScheduler counts scheduled events down and publishes the ones that
// are due, removing their entities.
func UpdateScheduler(w donburi.World) {
	bus := components.BusOf(w)
	dt := components.DeltaOf(w)

	var due []donburi.Entity
	components.ScheduledEvent.Each(w, func(e *donburi.Entry) {
		s := components.ScheduledEvent.Get(e)
		s.Timeout -= dt
		if s.Timeout > 0 {
			return
		}
		bus.Publish(s.Event)
		zap.L().Debug("scheduled event fired", zap.String("event", events.Name(s.Event)))
		due = append(due, e.Entity())
	})

	for _, e := range due {
		if w.Entry(e).HasComponent(components.Collider) {
			zap.L().Error("scheduled event entity carries a collider", zap.Any("entity", e))
		}
		collider.Destroy(w, e)
	}
}

package systems

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Health applies EntityHit events. Every hit costs one point; reaching
// zero publishes EnemyDied or GameOver exactly once.
type Health struct {
	reader *events.Reader
}

func NewHealth(w donburi.World) *Health {
	return &Health{reader: components.BusOf(w).Register("health")}
}

func (h *Health) Update(w donburi.World) {
	bus := components.BusOf(w)
	for _, ev := range bus.Read(h.reader) {
		hit, ok := ev.(events.EntityHit)
		if !ok {
			continue
		}
		if !w.Valid(hit.Entity) {
			zap.L().Debug("hit on deleted entity", zap.Any("entity", hit.Entity))
			continue
		}
		e := w.Entry(hit.Entity)
		if !e.HasComponent(components.Health) {
			zap.L().Debug("hit on entity without health", zap.Any("entity", hit.Entity))
			continue
		}
		health := components.Health.Get(e)
		if health.Dead() {
			continue
		}
		health.Current--
		if !health.Dead() {
			continue
		}

		switch {
		case e.HasComponent(tags.Enemy):
			bus.Publish(events.EnemyDied{Entity: hit.Entity})
		case e.HasComponent(components.Player):
			player := components.Player.Get(e)
			if player.Status == components.PlayerGameOver {
				continue
			}
			player.Status = components.PlayerGameOver
			bus.Publish(events.GameOver{})
			zap.L().Info("player killed")
		}
	}
}

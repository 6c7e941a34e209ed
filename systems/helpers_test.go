package systems

import (
	"testing"

	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/yohamta/donburi"
)

const testDelta = 0.1

func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	config.Reset()
	w := donburi.NewWorld()
	factory.CreateSingletons(w, 640, 480, 16, 128, testDelta)
	factory.CreateSession(w, "test")
	return w
}

// recorder records every event published after it is created.
type recorder struct {
	bus    *events.Bus
	reader *events.Reader
	seen   []events.AppEvent
}

func newRecorder(w donburi.World) *recorder {
	bus := components.BusOf(w)
	return &recorder{bus: bus, reader: bus.Register("recorder")}
}

func (p *recorder) drain() []events.AppEvent {
	evs := p.bus.Read(p.reader)
	p.seen = append(p.seen, evs...)
	return evs
}

func countOf[T events.AppEvent](evs []events.AppEvent) int {
	n := 0
	for _, ev := range evs {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func firstOf[T events.AppEvent](evs []events.AppEvent) (T, bool) {
	for _, ev := range evs {
		if v, ok := ev.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func countBullets(w donburi.World) int {
	n := 0
	components.Bullet.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func countEnemies(w donburi.World) int {
	n := 0
	components.Enemy.Each(w, func(*donburi.Entry) { n++ })
	return n
}

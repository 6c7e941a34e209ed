package systems

import (
	"testing"

	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/enemy"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/shared/leveldata"
	"github.com/automoto/thief-arena/systems/factory"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTwoHitsKillEnemyOnce(t *testing.T) {
	w := newTestWorld(t)
	health := NewHealth(w)
	p := newRecorder(w)
	bus := components.BusOf(w)

	e, err := factory.CreateEnemy(w, enemy.Simple, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if h := components.Health.Get(e); h.Max != 2 || h.Current != 2 {
		t.Fatalf("health = %+v", h)
	}

	bus.Publish(events.EntityHit{Entity: e.Entity()})
	health.Update(w)
	if n := countOf[events.EnemyDied](p.drain()); n != 0 {
		t.Fatalf("enemy died after one hit (%d events)", n)
	}

	bus.Publish(events.EntityHit{Entity: e.Entity()})
	bus.Publish(events.EntityHit{Entity: e.Entity()})
	health.Update(w)
	evs := p.drain()
	if n := countOf[events.EnemyDied](evs); n != 1 {
		t.Fatalf("EnemyDied published %d times", n)
	}
	if died, _ := firstOf[events.EnemyDied](evs); died.Entity != e.Entity() {
		t.Fatalf("EnemyDied for %v", died.Entity)
	}
}

func TestPlayerDeathPublishesGameOverOnce(t *testing.T) {
	w := newTestWorld(t)
	health := NewHealth(w)
	p := newRecorder(w)
	bus := components.BusOf(w)

	player := factory.CreatePlayer(w, 100, 100)
	maxHP := components.Health.Get(player).Max
	for i := 0; i < maxHP+2; i++ {
		bus.Publish(events.EntityHit{Entity: player.Entity()})
	}
	health.Update(w)

	if n := countOf[events.GameOver](p.drain()); n != 1 {
		t.Fatalf("GameOver published %d times", n)
	}
	if s := components.Player.Get(player).Status; s != components.PlayerGameOver {
		t.Fatalf("status = %v", s)
	}
}

func TestHitOnDeletedEntityIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	health := NewHealth(w)
	p := newRecorder(w)

	e, _ := factory.CreateEnemy(w, enemy.Simple, 100, 100)
	ent := e.Entity()
	w.Remove(ent)

	components.BusOf(w).Publish(events.EntityHit{Entity: ent})
	health.Update(w)
	if n := countOf[events.EnemyDied](p.drain()); n != 0 {
		t.Fatal("deleted entity died")
	}
}

func TestHitOnEntityWithoutHealthIsLogged(t *testing.T) {
	w := newTestWorld(t)
	health := NewHealth(w)
	p := newRecorder(w)

	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(zap.ReplaceGlobals(zap.New(core)))

	wall := factory.CreateWall(w, leveldata.Rect{X: 0, Y: 0, W: 32, H: 32})
	components.BusOf(w).Publish(events.EntityHit{Entity: wall.Entity()})
	health.Update(w)

	evs := p.drain()
	if countOf[events.EnemyDied](evs) != 0 || countOf[events.GameOver](evs) != 0 {
		t.Fatalf("hit on a wall published %+v", evs)
	}
	if !w.Valid(wall.Entity()) {
		t.Fatal("wall removed")
	}
	if n := logs.FilterMessage("hit on entity without health").Len(); n != 1 {
		t.Fatalf("logged %d times", n)
	}
}

func TestGarbageRemovesDeadEnemy(t *testing.T) {
	w := newTestWorld(t)
	garbage := NewGarbage(w)
	e, _ := factory.CreateEnemy(w, enemy.Simple, 100, 100)

	components.BusOf(w).Publish(events.EnemyDied{Entity: e.Entity()})
	components.BusOf(w).Publish(events.EnemyDied{Entity: e.Entity()})
	garbage.Update(w)

	if w.Valid(e.Entity()) {
		t.Fatal("dead enemy still in world")
	}
	if components.SpaceOf(w).Len() != 0 {
		t.Fatal("dead enemy's collider still in space")
	}
	if k := components.SessionOf(w).Kills; k != 1 {
		t.Fatalf("kills = %d", k)
	}
}

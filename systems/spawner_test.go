package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/shared/leveldata"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSpawnerPlacesEnemiesAtSpawnLocations(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateSpawnLocation(w, leveldata.Point{X: 64, Y: 64})
	factory.CreateSpawnLocation(w, leveldata.Point{X: 500, Y: 400})
	spawner := NewSpawner(w, rand.New(rand.NewPCG(1, 2)))

	components.BusOf(w).Publish(events.SpawnEnemy{Count: 3})
	spawner.Update(w)

	if n := countEnemies(w); n != 3 {
		t.Fatalf("%d enemies spawned", n)
	}
	components.Enemy.Each(w, func(e *donburi.Entry) {
		p := components.Transform.Get(e).Position
		if (p.X != 64 || p.Y != 64) && (p.X != 500 || p.Y != 400) {
			t.Fatalf("enemy at %+v is not on a spawn location", p)
		}
	})
}

func TestSpawnerJitterStaysNearSpawnLocation(t *testing.T) {
	w := newTestWorld(t)
	config.Arena.SpawnJitter = 4
	t.Cleanup(config.Reset)
	factory.CreateSpawnLocation(w, leveldata.Point{X: 64, Y: 64})
	spawner := NewSpawner(w, rand.New(rand.NewPCG(1, 2)))

	components.BusOf(w).Publish(events.SpawnEnemy{Count: 5})
	spawner.Update(w)

	components.Enemy.Each(w, func(e *donburi.Entry) {
		p := components.Transform.Get(e).Position
		if p.X < 60 || p.X > 68 || p.Y < 60 || p.Y > 68 {
			t.Fatalf("enemy at %+v is outside the jitter square", p)
		}
	})
}

func TestSpawnerWithoutLocationsSpawnsNothing(t *testing.T) {
	w := newTestWorld(t)
	spawner := NewSpawner(w, rand.New(rand.NewPCG(1, 2)))
	components.BusOf(w).Publish(events.SpawnEnemy{Count: 2})
	spawner.Update(w)
	if countEnemies(w) != 0 {
		t.Fatal("enemies spawned without spawn locations")
	}
}

func TestSpawnerPlacesBoss(t *testing.T) {
	w := newTestWorld(t)
	arena := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(arena, components.ArenaData{Name: "vault", BossSpawn: &dmath.Vec2{X: 320, Y: 112}})
	spawner := NewSpawner(w, rand.New(rand.NewPCG(1, 2)))

	components.BusOf(w).Publish(events.SpawnBoss{})
	spawner.Update(w)

	boss, ok := tags.Boss.First(w)
	if !ok {
		t.Fatal("no boss")
	}
	if p := components.Transform.Get(boss).Position; p.X != 320 || p.Y != 112 {
		t.Fatalf("boss at %+v", p)
	}
	if h := components.Health.Get(boss); h.Max != config.Enemy.Boss.Health {
		t.Fatalf("boss health = %+v", h)
	}
}

func TestEnemiesShootThroughCommandBuffer(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 300, 100)
	factory.CreateEnemy(w, 0, 100, 100)
	enemies := NewEnemies(factory.NewBulletSpawner(config.Bullet.Types))

	components.Time.Get(components.Time.MustFirst(w)).Delta = config.Enemy.Simple.WalkDuration
	enemies.Update(w) // walk time used up
	enemies.Update(w) // fire

	if n := countBullets(w); n != 1 {
		t.Fatalf("%d bullets", n)
	}
	components.Bullet.Each(w, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		if b.FiredBy != components.KindEnemy || b.Direction.X != 1 {
			t.Fatalf("bullet = %+v", b)
		}
	})
}

func TestPlayerFiresWithReload(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 100, 100)
	combat := NewCombat(factory.NewBulletSpawner(config.Bullet.Types))
	input := components.Input.Get(player)
	input.Fire = true
	input.Aim = dmath.Vec2{X: 100, Y: 0}

	combat.Update(w)
	FlushCommands(w)
	combat.Update(w)
	FlushCommands(w)

	if n := countBullets(w); n != 1 {
		t.Fatalf("%d bullets, want 1 before reload", n)
	}
	components.Bullet.Each(w, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		if b.Direction.Y != -1 || b.Speed != 100 || b.FiredBy != components.KindPlayer {
			t.Fatalf("bullet = %+v", b)
		}
	})

	// reload is 1.0s at 0.1s per tick
	for i := 0; i < 10; i++ {
		combat.Update(w)
		FlushCommands(w)
	}
	if n := countBullets(w); n != 2 {
		t.Fatalf("%d bullets after reload", n)
	}
}

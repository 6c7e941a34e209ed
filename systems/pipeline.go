package systems

import (
	"math/rand/v2"

	"github.com/automoto/thief-arena/systems/factory"
	"github.com/yohamta/donburi"
)

// Pipeline builds the ordered per-tick system list for a world that already
// holds its singletons. Event readers are registered here, so events
// published before this call are not seen.
func Pipeline(w donburi.World, spawner *factory.BulletSpawner, rng *rand.Rand) []System {
	dialogs := NewDialogs(w)
	combat := NewCombat(spawner)
	enemies := NewEnemies(spawner)
	health := NewHealth(w)
	garbage := NewGarbage(w)
	waves := NewWaves(w)
	spawn := NewSpawner(w, rng)
	outcome := NewOutcome(w)

	return []System{
		AdvanceClock,
		dialogs.Update,
		WithGameplayChecks(UpdatePlayer),
		WithGameplayChecks(combat.Update),
		WithGameplayChecks(enemies.Update),
		WithGameplayChecks(UpdateBullets),
		WithGameplayChecks(CullBullets),
		WithGameplayChecks(UpdateCollisions),
		WithGameplayChecks(UpdateWalkable),
		WithGameplayChecks(health.Update),
		WithGameplayChecks(garbage.Update),
		WithGameplayChecks(waves.Update),
		WithGameplayChecks(spawn.Update),
		WithGameplayChecks(UpdateScheduler),
		outcome.Update,
		FlushCommands,
	}
}

// Tick runs each system once, in order.
func Tick(w donburi.World, systems []System) {
	for _, s := range systems {
		s(w)
	}
}

package systems

import (
	"math/rand/v2"

	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/enemy"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// Spawner creates the enemies asked for by SpawnEnemy and SpawnBoss.
type Spawner struct {
	reader *events.Reader
	rng    *rand.Rand
}

func NewSpawner(w donburi.World, rng *rand.Rand) *Spawner {
	return &Spawner{reader: components.BusOf(w).Register("spawner"), rng: rng}
}

func (s *Spawner) Update(w donburi.World) {
	for _, ev := range components.BusOf(w).Read(s.reader) {
		switch ev := ev.(type) {
		case events.SpawnEnemy:
			s.spawnEnemies(w, ev.Count)
		case events.SpawnBoss:
			s.spawnBoss(w)
		}
	}
}

func (s *Spawner) spawnEnemies(w donburi.World, n int) {
	var points []math.Vec2
	components.SpawnLocation.Each(w, func(e *donburi.Entry) {
		points = append(points, components.SpawnLocation.Get(e).Position)
	})
	if len(points) == 0 {
		zap.L().Error("no spawn locations in arena", zap.Int("requested", n))
		return
	}

	jitter := cfg.Arena.SpawnJitter
	for i := 0; i < n; i++ {
		p := points[s.rng.IntN(len(points))]
		x := p.X + (s.rng.Float64()*2-1)*jitter
		y := p.Y + (s.rng.Float64()*2-1)*jitter
		if _, err := factory.CreateEnemy(w, enemy.Simple, x, y); err != nil {
			zap.L().Error("enemy spawn failed", zap.Error(err))
		}
	}
}

func (s *Spawner) spawnBoss(w donburi.World) {
	arena := components.ArenaOf(w)
	if arena == nil || arena.BossSpawn == nil {
		zap.L().Error("boss requested but arena has no boss spawn")
		return
	}
	p := *arena.BossSpawn
	if _, err := factory.CreateEnemy(w, enemy.CreepyFirstBoss, p.X, p.Y); err != nil {
		zap.L().Error("boss spawn failed", zap.Error(err))
		return
	}
	zap.L().Info("boss spawned", zap.String("arena", arena.Name))
}

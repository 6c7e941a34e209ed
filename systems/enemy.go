package systems

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/enemy"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// Enemies advances every enemy behaviour by one tick.
type Enemies struct {
	spawner *factory.BulletSpawner
}

func NewEnemies(spawner *factory.BulletSpawner) *Enemies {
	return &Enemies{spawner: spawner}
}

// deferredShooter queues enemy bullets until the enemy query is done.
type deferredShooter struct {
	cmds    *components.CommandBuffer
	spawner *factory.BulletSpawner
}

func (s *deferredShooter) Shoot(origin, direction math.Vec2, speed float64, bullet int) error {
	if _, err := s.spawner.Lookup(bullet); err != nil {
		return err
	}
	s.cmds.Push(func(w donburi.World) {
		if _, err := s.spawner.SpawnEnemyBullet(w, bullet, origin, direction, speed); err != nil {
			zap.L().Error("enemy bullet spawn failed", zap.Error(err))
		}
	})
	return nil
}

func (s *Enemies) Update(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position

	cmds := components.CommandsOf(w)
	shooter := &deferredShooter{cmds: cmds, spawner: s.spawner}
	dt := components.DeltaOf(w)

	components.Enemy.Each(w, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		ctx := &enemy.Context{
			Delta:    dt,
			Position: &t.Position,
			Player:   target,
			Shooter:  shooter,
		}
		if e.HasComponent(components.Animation) {
			anim := components.Animation.Get(e)
			anim.Previous = anim.Current
			ctx.Animation = &anim.Current
		}
		behavior := components.Enemy.Get(e).Behavior
		if err := behavior.Update(ctx); err != nil {
			zap.L().Error("enemy update failed",
				zap.Stringer("kind", behavior.Kind()),
				zap.String("state", behavior.State()),
				zap.Error(err))
		}
	})

	cmds.Flush(w)
}

package systems

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Combat fires the player's weapon toward the aim point.
type Combat struct {
	spawner *factory.BulletSpawner
}

func NewCombat(spawner *factory.BulletSpawner) *Combat {
	return &Combat{spawner: spawner}
}

func (c *Combat) Update(w donburi.World) {
	dt := components.DeltaOf(w)
	cmds := components.CommandsOf(w)

	tags.Player.Each(w, func(e *donburi.Entry) {
		weapon := components.Weapon.Get(e)
		if weapon.Cooldown > 0 {
			weapon.Cooldown -= dt
			if weapon.Cooldown < 0 {
				weapon.Cooldown = 0
			}
		}
		if components.Player.Get(e).Status != components.PlayerWalking {
			return
		}
		input := components.Input.Get(e)
		if !input.Fire || weapon.Cooldown > 0 {
			return
		}
		origin := components.Transform.Get(e).Position
		dir := input.Aim.Sub(origin).Normalized()
		if dir.IsZero() {
			return
		}
		weapon.Cooldown = weapon.ReloadTime

		index, speed := weapon.Bullet, weapon.BulletSpeed
		cmds.Push(func(w donburi.World) {
			if _, err := c.spawner.SpawnPlayerBullet(w, index, origin, dir, speed); err != nil {
				zap.L().Error("player bullet spawn failed", zap.Error(err))
			}
		})
	})
}

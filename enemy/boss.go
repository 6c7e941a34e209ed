package enemy

import (
	"github.com/automoto/thief-arena/config"
	"github.com/yohamta/donburi/features/math"
)

type bossState int

const (
	bossWaiting bossState = iota
	bossShooting
)

// Boss alternates between idling and a volley of shots fired
// straight down every few ticks.
type Boss struct {
	cfg     config.BossConfig
	state   bossState
	elapsed float64
	frames  int
}

func NewBoss(cfg config.BossConfig) *Boss {
	return &Boss{cfg: cfg}
}

func (b *Boss) Kind() Kind { return CreepyFirstBoss }
func (b *Boss) sealed()    {}

func (b *Boss) State() string {
	if b.state == bossShooting {
		return "shooting"
	}
	return "waiting"
}

func (b *Boss) Update(ctx *Context) error {
	b.elapsed += ctx.Delta

	switch b.state {
	case bossWaiting:
		if b.elapsed >= b.cfg.WaitDuration {
			b.elapsed = 0
			b.state = bossShooting
		}

	case bossShooting:
		if b.elapsed >= b.cfg.ShootDuration {
			b.elapsed = 0
			b.frames = 0
			b.state = bossWaiting
			return nil
		}
		if b.frames != b.cfg.FramesBetweenShot {
			b.frames++
			return nil
		}
		b.frames = 0
		origin := math.Vec2{X: ctx.Position.X, Y: ctx.Position.Y + b.cfg.ShotOffset}
		return ctx.Shooter.Shoot(origin, math.Vec2{Y: 1}, b.cfg.BulletSpeed, b.cfg.Bullet)
	}
	return nil
}

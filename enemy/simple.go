package enemy

import (
	"github.com/automoto/thief-arena/config"
)

// Animation names set by the simple enemy.
const (
	AnimWalkLeft  = "walk_left"
	AnimWalkRight = "walk_right"
	AnimWalkUp    = "walk_up"
	AnimWalkDown  = "walk_down"
	AnimShoot     = "shoot"
)

type simpleState int

const (
	simpleWalking simpleState = iota
	simpleShooting
	simplePostShooting
)

// SimpleEnemy walks toward the player, stops to fire one bullet and holds
// its shooting pose briefly before walking again.
type SimpleEnemy struct {
	cfg      config.SimpleEnemyConfig
	state    simpleState
	elapsed  float64
	facingUp bool // shooting pose suppressed while facing away
}

func NewSimpleEnemy(cfg config.SimpleEnemyConfig) *SimpleEnemy {
	return &SimpleEnemy{cfg: cfg}
}

func (e *SimpleEnemy) Kind() Kind { return Simple }
func (e *SimpleEnemy) sealed()    {}

func (e *SimpleEnemy) State() string {
	switch e.state {
	case simpleShooting:
		return "shooting"
	case simplePostShooting:
		return "post_shooting"
	}
	return "walking"
}

func (e *SimpleEnemy) Update(ctx *Context) error {
	e.elapsed += ctx.Delta
	prev := ctx.takeAnimation()

	switch e.state {
	case simpleWalking:
		d := ctx.Player.Sub(*ctx.Position).Normalized()
		*ctx.Position = ctx.Position.Add(d.MulScalar(e.cfg.WalkSpeed))
		anim := walkAnimation(d.X, d.Y)
		if anim == "" {
			anim = prev
		}
		ctx.setAnimation(anim)
		if e.elapsed >= e.cfg.WalkDuration {
			e.elapsed = 0
			e.state = simpleShooting
			e.facingUp = anim == AnimWalkUp
		}

	case simpleShooting:
		e.elapsed = 0
		e.state = simplePostShooting
		if !e.facingUp {
			ctx.setAnimation(AnimShoot)
		}
		dir := ctx.Player.Sub(*ctx.Position).Normalized()
		if dir.IsZero() {
			return nil
		}
		return ctx.Shooter.Shoot(*ctx.Position, dir, e.cfg.BulletSpeed, e.cfg.Bullet)

	case simplePostShooting:
		if e.elapsed >= e.cfg.ShootDuration {
			e.elapsed = 0
			e.state = simpleWalking
			return nil
		}
		if !e.facingUp {
			ctx.setAnimation(AnimShoot)
		}
	}
	return nil
}

// walkAnimation picks a clip from the movement direction. Horizontal
// movement wins; y grows downward.
func walkAnimation(dx, dy float64) string {
	switch {
	case dx < 0:
		return AnimWalkLeft
	case dx > 0:
		return AnimWalkRight
	case dy < 0:
		return AnimWalkUp
	case dy > 0:
		return AnimWalkDown
	}
	return ""
}

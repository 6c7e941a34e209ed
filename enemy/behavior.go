// Package enemy holds enemy behaviours. Each behaviour is a small state
// machine advanced once per tick.
package enemy

import (
	"github.com/yohamta/donburi/features/math"
)

// Kind names a behaviour.
type Kind int

const (
	Simple Kind = iota
	CreepyFirstBoss
)

func (k Kind) String() string {
	if k == CreepyFirstBoss {
		return "creepy_first_boss"
	}
	return "simple"
}

// Shooter spawns enemy bullets. Implementations defer the spawn so it is
// safe to call while entities are being iterated.
type Shooter interface {
	Shoot(origin, direction math.Vec2, speed float64, bullet int) error
}

// Context is what a behaviour sees and may change during one tick.
type Context struct {
	Delta     float64    // seconds
	Position  *math.Vec2 // owner centre, moved in place
	Animation *string    // nil when the owner has no animation
	Player    math.Vec2
	Shooter   Shooter
}

// takeAnimation clears the animation slot and returns what it held.
func (c *Context) takeAnimation() string {
	if c.Animation == nil {
		return ""
	}
	prev := *c.Animation
	*c.Animation = ""
	return prev
}

func (c *Context) setAnimation(name string) {
	if c.Animation != nil {
		*c.Animation = name
	}
}

// Behavior is the closed set of enemy AIs.
type Behavior interface {
	Kind() Kind
	// State returns a short label of the current state for debugging.
	State() string
	Update(ctx *Context) error
	sealed()
}

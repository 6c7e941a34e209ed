package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type BulletData struct {
	Speed     float64   // world units per second
	Direction math.Vec2 // unit vector
	Curvature float64   // radians the direction turns per tick; 0 flies straight
	FiredBy   ColliderKind
	Archetype string
}

var Bullet = donburi.NewComponentType[BulletData]()

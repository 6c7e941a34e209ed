package components

import (
	"github.com/automoto/thief-arena/spatial"
	"github.com/yohamta/donburi"
)

// ColliderKind is the semantic type of a collider.
type ColliderKind int

const (
	KindNone ColliderKind = iota
	KindPlayer
	KindEnemy
	KindBullet
	KindWall
)

func (k ColliderKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindWall:
		return "wall"
	}
	return "none"
}

// Group is the collision group id used by the spatial index. The mapping
// is fixed.
func (k ColliderKind) Group() int {
	return int(k)
}

// ColliderInfo rides along with each shape in the spatial index and ties it
// back to its owning entity.
type ColliderInfo struct {
	Kind  ColliderKind
	Owner donburi.Entity
	Bound bool // false until the owner entity exists
}

// ColliderData is the component side of a collider.
type ColliderData struct {
	Handle spatial.Handle
	HalfW  float64
	HalfH  float64
}

var Collider = donburi.NewComponentType[ColliderData]()

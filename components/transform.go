package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData places an entity in the arena. Position is the centre of
// the entity in world units with y growing downward.
type TransformData struct {
	Position math.Vec2
	Rotation float64 // radians
	Scale    math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()

// NewTransform returns an unrotated, unscaled transform at (x, y).
func NewTransform(x, y float64) TransformData {
	return TransformData{
		Position: math.Vec2{X: x, Y: y},
		Scale:    math.Vec2{X: 1, Y: 1},
	}
}

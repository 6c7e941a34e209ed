package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData is the player's intent for this tick. Scenes fill it from the
// keyboard and mouse; tests fill it directly.
type InputData struct {
	Move    math.Vec2 // each axis in [-1, 1]
	Aim     math.Vec2 // world position of the cursor
	Fire    bool
	Confirm bool // edge: pressed this tick
}

var Input = donburi.NewComponentType[InputData]()

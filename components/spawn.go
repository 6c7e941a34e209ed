package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpawnLocationData marks a point where wave enemies may appear.
type SpawnLocationData struct {
	Position math.Vec2
}

var SpawnLocation = donburi.NewComponentType[SpawnLocationData]()

// ArenaData describes the arena loaded into the world.
type ArenaData struct {
	Name      string
	Width     float64
	Height    float64
	BossSpawn *math.Vec2
	Next      string // map of the following arena; empty for the last one
}

var Arena = donburi.NewComponentType[ArenaData]()

// ArenaOf returns the loaded arena, or nil.
func ArenaOf(w donburi.World) *ArenaData {
	e, ok := Arena.First(w)
	if !ok {
		return nil
	}
	return Arena.Get(e)
}

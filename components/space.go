package components

import (
	"github.com/automoto/thief-arena/spatial"
	"github.com/yohamta/donburi"
)

// SpaceIndex is the collision world for one arena.
type SpaceIndex = spatial.Index[ColliderInfo]

type SpaceData struct {
	Index *SpaceIndex
}

var Space = donburi.NewComponentType[SpaceData]()

// SpaceOf returns the arena's spatial index, or nil before it exists.
func SpaceOf(w donburi.World) *SpaceIndex {
	e, ok := Space.First(w)
	if !ok {
		return nil
	}
	return Space.Get(e).Index
}

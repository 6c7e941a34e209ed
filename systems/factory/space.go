package factory

import (
	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/spatial"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Index: spatial.NewIndex[components.ColliderInfo](width, height, cellSize),
	})
	return space
}

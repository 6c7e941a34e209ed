package factory

import (
	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/shared/leveldata"
	"github.com/automoto/thief-arena/spatial"
	"github.com/yohamta/donburi"
)

var wallHits = []components.ColliderKind{components.KindPlayer, components.KindEnemy, components.KindBullet}

// CreateWall adds a solid obstacle.
func CreateWall(w donburi.World, r leveldata.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	b := spatial.BoxFromRect(r.X, r.Y, r.W, r.H)
	cx, cy := b.Center()
	components.Transform.SetValue(wall, components.NewTransform(cx, cy))
	collider.Attach(components.SpaceOf(w), wall, collider.Rect{
		X:         cx,
		Y:         cy,
		HalfW:     b.Width() / 2,
		HalfH:     b.Height() / 2,
		Kind:      components.KindWall,
		Whitelist: wallHits,
	})
	return wall
}

// CreateWalkable adds an area the player may stand on. Walkable zones are
// sensors that only notice the player.
func CreateWalkable(w donburi.World, r leveldata.Rect, sensor bool) *donburi.Entry {
	zone := archetypes.Walkable.Spawn(w)
	b := spatial.BoxFromRect(r.X, r.Y, r.W, r.H)
	cx, cy := b.Center()
	components.Transform.SetValue(zone, components.NewTransform(cx, cy))
	collider.Attach(components.SpaceOf(w), zone, collider.Rect{
		X:         cx,
		Y:         cy,
		HalfW:     b.Width() / 2,
		HalfH:     b.Height() / 2,
		Kind:      components.KindNone,
		Whitelist: []components.ColliderKind{components.KindPlayer},
		Sensor:    sensor,
	})
	return zone
}

// CreateProp adds decoration with no collider.
func CreateProp(w donburi.World, p leveldata.Prop) *donburi.Entry {
	prop := archetypes.Prop.Spawn(w)
	cx, cy := p.Center()
	t := components.NewTransform(cx, cy)
	t.Scale.X, t.Scale.Y = p.W, p.H
	components.Transform.SetValue(prop, t)
	return prop
}

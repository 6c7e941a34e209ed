package systems

import (
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/yohamta/donburi"
)

// UpdateBullets moves every bullet along its direction. Curved bullets
// turn after moving.
func UpdateBullets(w donburi.World) {
	dt := components.DeltaOf(w)
	components.Bullet.Each(w, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(b.Direction.MulScalar(b.Speed * dt))
		if b.Curvature != 0 {
			b.Direction = b.Direction.Rotate(b.Curvature)
		}
	})
}

// CullBullets removes bullets that left the arena.
func CullBullets(w donburi.World) {
	idx := components.SpaceOf(w)
	if idx == nil {
		return
	}
	bounds := idx.Bounds()
	m := cfg.Bullet.BoundsMargin
	bounds.MinX -= m
	bounds.MinY -= m
	bounds.MaxX += m
	bounds.MaxY += m

	var toRemove []donburi.Entity
	components.Bullet.Each(w, func(e *donburi.Entry) {
		p := components.Transform.Get(e).Position
		if !bounds.Contains(p.X, p.Y) {
			toRemove = append(toRemove, e.Entity())
		}
	})
	for _, e := range toRemove {
		collider.Destroy(w, e)
	}
}

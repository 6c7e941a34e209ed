package systems

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateWalkable starts the fall of any walking player whose collider no
// longer touches a walkable zone. Shared edges count as touching.
func UpdateWalkable(w donburi.World) {
	idx := components.SpaceOf(w)
	if idx == nil {
		return
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		if components.Player.Get(e).Status != components.PlayerWalking {
			return
		}
		pb, ok := idx.Box(components.Collider.Get(e).Handle)
		if !ok {
			zap.L().Warn("player collider missing from space")
			return
		}

		onGround := false
		tags.Walkable.Each(w, func(z *donburi.Entry) {
			if onGround {
				return
			}
			zb, ok := idx.Box(components.Collider.Get(z).Handle)
			if ok && pb.Intersects(zb) {
				onGround = true
			}
		})
		if !onGround {
			StartFalling(e)
		}
	})
}

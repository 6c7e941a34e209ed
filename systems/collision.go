package systems

import (
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/spatial"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateCollisions turns last tick's contact starts into gameplay events,
// deletes spent bullets, then syncs transforms and steps the index.
func UpdateCollisions(w donburi.World) {
	idx := components.SpaceOf(w)
	bus := components.BusOf(w)
	if idx == nil || bus == nil {
		return
	}

	var toRemove []donburi.Entity
	for _, ev := range idx.ContactEvents() {
		if ev.Kind != spatial.Started {
			continue
		}
		a, okA := collider.Lookup(idx, ev.A)
		b, okB := collider.Lookup(idx, ev.B)
		if !okA || !okB {
			zap.L().Debug("contact with removed collider", zap.Uint64("a", uint64(ev.A)), zap.Uint64("b", uint64(ev.B)))
			continue
		}
		hit, spent := resolveContact(a, b)
		if hit != nil {
			bus.Publish(events.EntityHit{Entity: *hit})
		}
		if spent != nil {
			toRemove = append(toRemove, *spent)
		}
	}

	for _, e := range toRemove {
		collider.Destroy(w, e)
	}

	collider.Sync(w)
	idx.Step()
}

// resolveContact applies the contact rules for one pair. It returns the
// entity that was hit, if any, and the bullet to delete, if any.
func resolveContact(a, b components.ColliderInfo) (hit, spent *donburi.Entity) {
	if b.Kind == components.KindBullet && a.Kind != components.KindBullet {
		a, b = b, a
	}
	if a.Kind != components.KindBullet || b.Kind == components.KindBullet {
		return nil, nil
	}
	if !a.Bound {
		panic("bullet collider has no owner")
	}

	bullet := a.Owner
	switch b.Kind {
	case components.KindPlayer, components.KindEnemy:
		if !b.Bound {
			zap.L().Warn("bullet hit an unbound collider", zap.Stringer("kind", b.Kind))
			return nil, &bullet
		}
		target := b.Owner
		return &target, &bullet
	case components.KindWall:
		return nil, &bullet
	}
	return nil, nil
}

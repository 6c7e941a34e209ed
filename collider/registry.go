// Package collider ties entities to shapes in the arena's spatial index.
//
// Creating a collider is two-phase: the shape is inserted first (so the
// handle can be stored on the entity being built) and the owner is bound
// once the entity exists. Teardown removes the shape and the entity and is
// safe to call more than once.
package collider

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/spatial"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Rect describes a collider to create. X and Y are the centre.
type Rect struct {
	X, Y         float64
	HalfW, HalfH float64
	Kind         components.ColliderKind
	Whitelist    []components.ColliderKind // nil collides with every kind
	Sensor       bool
}

func groups(kinds []components.ColliderKind) []int {
	if kinds == nil {
		return nil
	}
	out := make([]int, len(kinds))
	for i, k := range kinds {
		out[i] = k.Group()
	}
	return out
}

// Create inserts an unbound shape and returns the component data pointing
// at it.
func Create(idx *components.SpaceIndex, r Rect) components.ColliderData {
	q := spatial.Contacts
	if r.Sensor {
		q = spatial.Proximity
	}
	h := idx.Insert(spatial.Shape{
		X:         r.X,
		Y:         r.Y,
		HalfW:     r.HalfW,
		HalfH:     r.HalfH,
		Group:     r.Kind.Group(),
		Whitelist: groups(r.Whitelist),
		Query:     q,
	}, components.ColliderInfo{Kind: r.Kind})
	return components.ColliderData{Handle: h, HalfW: r.HalfW, HalfH: r.HalfH}
}

// Bind records e as the owner of the shape behind c.
func Bind(idx *components.SpaceIndex, c components.ColliderData, e donburi.Entity) error {
	info, ok := idx.Aux(c.Handle)
	if !ok {
		return spatial.ErrStaleHandle
	}
	info.Owner = e
	info.Bound = true
	return nil
}

// Attach creates a collider for entry, binds it and stores the component.
func Attach(idx *components.SpaceIndex, entry *donburi.Entry, r Rect) components.ColliderData {
	c := Create(idx, r)
	if err := Bind(idx, c, entry.Entity()); err != nil {
		// the handle was issued on the line above
		panic(err)
	}
	if entry.HasComponent(components.Collider) {
		components.Collider.SetValue(entry, c)
	} else {
		donburi.Add(entry, components.Collider, &c)
	}
	return c
}

// Lookup resolves a handle to its collider info.
func Lookup(idx *components.SpaceIndex, h spatial.Handle) (components.ColliderInfo, bool) {
	info, ok := idx.Aux(h)
	if !ok {
		return components.ColliderInfo{}, false
	}
	return *info, true
}

// Teardown removes the shape behind c. It reports false when the shape was
// already gone.
func Teardown(idx *components.SpaceIndex, c components.ColliderData) bool {
	return idx.Remove(c.Handle)
}

// Destroy removes e and its collider, if any, from the world. Destroying an
// entity twice in one tick is tolerated and logged.
func Destroy(w donburi.World, e donburi.Entity) {
	if !w.Valid(e) {
		zap.L().Debug("entity already deleted", zap.Any("entity", e))
		return
	}
	entry := w.Entry(e)
	if entry.HasComponent(components.Collider) {
		if idx := components.SpaceOf(w); idx != nil {
			if !Teardown(idx, *components.Collider.Get(entry)) {
				zap.L().Debug("collider already removed", zap.Any("entity", e))
			}
		}
	}
	w.Remove(e)
}

// Sync copies every collider-bearing entity's transform into the index.
func Sync(w donburi.World) {
	idx := components.SpaceOf(w)
	if idx == nil {
		return
	}
	components.Collider.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		c := components.Collider.Get(e)
		t := components.Transform.Get(e)
		if err := idx.SetPosition(c.Handle, t.Position.X, t.Position.Y, t.Rotation); err != nil {
			zap.L().Warn("collider out of sync", zap.Any("entity", e.Entity()), zap.Error(err))
		}
	})
}

package archetypes

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Collider,
		components.Health,
		components.Animation,
		components.Weapon,
		components.Input,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Collider,
		components.Health,
		components.Animation,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Transform,
		components.Collider,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Transform,
		components.Collider,
	)
	Walkable = newArchetype(
		tags.Walkable,
		components.Transform,
		components.Collider,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Transform,
	)
	SpawnLocation = newArchetype(
		components.SpawnLocation,
	)
	ScheduledEvent = newArchetype(
		components.ScheduledEvent,
	)
	Dialog = newArchetype(
		components.Dialog,
	)
	Waves = newArchetype(
		components.Waves,
	)
	Space = newArchetype(
		components.Space,
	)
	Events = newArchetype(
		components.Events,
	)
	Time = newArchetype(
		components.Time,
	)
	Commands = newArchetype(
		components.Commands,
	)
	Session = newArchetype(
		components.Session,
	)
	Arena = newArchetype(
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}

package factory

import (
	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// CreateEvents adds the event channel singleton.
func CreateEvents(w donburi.World, capacity int) *donburi.Entry {
	e := archetypes.Events.Spawn(w)
	components.Events.SetValue(e, components.EventsData{Bus: events.NewBus(capacity)})
	return e
}

// CreateTime adds the clock singleton with a fixed tick length.
func CreateTime(w donburi.World, delta float64) *donburi.Entry {
	e := archetypes.Time.Spawn(w)
	components.Time.SetValue(e, components.TimeData{Delta: delta})
	return e
}

func CreateCommands(w donburi.World) *donburi.Entry {
	e := archetypes.Commands.Spawn(w)
	components.Commands.SetValue(e, components.CommandsData{Buffer: &components.CommandBuffer{}})
	return e
}

// CreateSession starts a new run with a fresh id.
func CreateSession(w donburi.World, arena string) *donburi.Entry {
	e := archetypes.Session.Spawn(w)
	components.Session.SetValue(e, components.SessionData{
		ID:    uuid.NewString(),
		Arena: arena,
		State: components.SessionPlaying,
	})
	return e
}

// CreateSingletons adds every per-world singleton a simulation needs.
func CreateSingletons(w donburi.World, width, height, cellSize, eventCapacity int, delta float64) {
	CreateSpace(w, width, height, cellSize)
	CreateEvents(w, eventCapacity)
	CreateTime(w, delta)
	CreateCommands(w)
}

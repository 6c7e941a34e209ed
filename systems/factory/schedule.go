package factory

import (
	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateScheduledEvent publishes ev after timeout seconds.
func CreateScheduledEvent(w donburi.World, timeout float64, ev events.AppEvent) *donburi.Entry {
	e := archetypes.ScheduledEvent.Spawn(w)
	components.ScheduledEvent.SetValue(e, components.ScheduledEventData{Timeout: timeout, Event: ev})
	return e
}

func CreateSpawnLocation(w donburi.World, p leveldata.Point) *donburi.Entry {
	e := archetypes.SpawnLocation.Spawn(w)
	components.SpawnLocation.SetValue(e, components.SpawnLocationData{Position: math.Vec2{X: p.X, Y: p.Y}})
	return e
}

// CreateDialog opens a dialog box. Callers make sure only one exists.
func CreateDialog(w donburi.World, lines []string, then *events.Deferred) *donburi.Entry {
	e := archetypes.Dialog.Spawn(w)
	components.Dialog.SetValue(e, components.DialogData{Lines: lines, Then: then})
	return e
}

package components

import (
	"github.com/automoto/thief-arena/events"
	"github.com/yohamta/donburi"
)

type EventsData struct {
	Bus *events.Bus
}

var Events = donburi.NewComponentType[EventsData]()

// BusOf returns the world's event channel, or nil before it exists.
func BusOf(w donburi.World) *events.Bus {
	e, ok := Events.First(w)
	if !ok {
		return nil
	}
	return Events.Get(e).Bus
}

package components

import (
	"github.com/automoto/thief-arena/events"
	"github.com/yohamta/donburi"
)

// ScheduledEventData publishes Event once Timeout has counted down to zero.
type ScheduledEventData struct {
	Timeout float64
	Event   events.AppEvent
}

var ScheduledEvent = donburi.NewComponentType[ScheduledEventData]()

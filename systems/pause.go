package systems

import (
	"github.com/automoto/thief-arena/components"
	"github.com/yohamta/donburi"
)

// System is one pass over the world per tick.
type System func(w donburi.World)

// IsPaused reports whether gameplay should stand still: a dialog is open or
// the run has ended.
func IsPaused(w donburi.World) bool {
	if _, open := components.Dialog.First(w); open {
		return true
	}
	if s := components.SessionOf(w); s != nil && s.State != components.SessionPlaying {
		return true
	}
	return false
}

// WithGameplayChecks wraps a system so it only runs while gameplay is live.
func WithGameplayChecks(system System) System {
	return func(w donburi.World) {
		if IsPaused(w) {
			return
		}
		system(w)
	}
}

// AdvanceClock moves simulated time forward by one tick.
func AdvanceClock(w donburi.World) {
	e, ok := components.Time.First(w)
	if !ok {
		return
	}
	t := components.Time.Get(e)
	t.Elapsed += t.Delta
	t.Tick++
}

// FlushCommands applies deferred world mutations.
func FlushCommands(w donburi.World) {
	if cmds := components.CommandsOf(w); cmds != nil {
		cmds.Flush(w)
	}
}

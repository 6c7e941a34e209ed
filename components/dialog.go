package components

import (
	"github.com/automoto/thief-arena/events"
	"github.com/yohamta/donburi"
)

// DialogData is the single open dialog box. While it exists gameplay is
// paused.
type DialogData struct {
	Lines   []string
	Current int
	Then    *events.Deferred
}

// Line returns the line on screen.
func (d *DialogData) Line() string {
	if d.Current >= len(d.Lines) {
		return ""
	}
	return d.Lines[d.Current]
}

var Dialog = donburi.NewComponentType[DialogData]()

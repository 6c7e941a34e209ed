package systems

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Dialogs opens dialog boxes one at a time and advances them on confirm.
// Closing the last line publishes DialogOver and schedules the dialog's
// follow-up event.
type Dialogs struct {
	reader  *events.Reader
	pending []events.NewDialog
}

func NewDialogs(w donburi.World) *Dialogs {
	return &Dialogs{reader: components.BusOf(w).Register("dialogs")}
}

func (d *Dialogs) Update(w donburi.World) {
	bus := components.BusOf(w)
	for _, ev := range bus.Read(d.reader) {
		if nd, ok := ev.(events.NewDialog); ok {
			d.pending = append(d.pending, nd)
		}
	}

	entry, open := components.Dialog.First(w)
	if !open {
		if len(d.pending) == 0 {
			return
		}
		next := d.pending[0]
		d.pending = d.pending[1:]
		factory.CreateDialog(w, next.Lines, next.Then)
		return
	}

	dialog := components.Dialog.Get(entry)
	if len(dialog.Lines) > 0 {
		if !confirmed(w) {
			return
		}
		dialog.Current++
		if dialog.Current < len(dialog.Lines) {
			return
		}
	}

	then := dialog.Then
	w.Remove(entry.Entity())
	bus.Publish(events.DialogOver{})
	if then != nil {
		factory.CreateScheduledEvent(w, then.Timeout, then.Event)
		zap.L().Debug("dialog follow-up scheduled",
			zap.String("event", events.Name(then.Event)),
			zap.Float64("timeout", then.Timeout))
	}
}

func confirmed(w donburi.World) bool {
	e, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	return components.Input.Get(e).Confirm
}

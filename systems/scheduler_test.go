package systems

import (
	"testing"

	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/yohamta/donburi"
)

func TestScheduledEventFiresOnceWhenDue(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w)
	s := factory.CreateScheduledEvent(w, 0.25, events.NextWave{})

	UpdateScheduler(w)
	UpdateScheduler(w)
	if n := countOf[events.NextWave](p.drain()); n != 0 {
		t.Fatal("fired early")
	}
	UpdateScheduler(w)
	if n := countOf[events.NextWave](p.drain()); n != 1 {
		t.Fatalf("fired %d times", n)
	}
	if w.Valid(s.Entity()) {
		t.Fatal("scheduled entity not removed")
	}
	UpdateScheduler(w)
	if n := countOf[events.NextWave](p.drain()); n != 0 {
		t.Fatal("fired again")
	}
}

func TestDialogPausesAndSchedulesFollowUp(t *testing.T) {
	w := newTestWorld(t)
	dialogs := NewDialogs(w)
	p := newRecorder(w)
	player := factory.CreatePlayer(w, 100, 100)
	input := components.Input.Get(player)

	components.BusOf(w).Publish(events.NewDialog{
		Lines: []string{"one", "two"},
		Then:  &events.Deferred{Timeout: 3.0, Event: events.NextWave{}},
	})
	dialogs.Update(w)
	if !IsPaused(w) {
		t.Fatal("open dialog should pause gameplay")
	}
	d := components.Dialog.Get(components.Dialog.MustFirst(w))
	if d.Line() != "one" {
		t.Fatalf("line = %q", d.Line())
	}

	dialogs.Update(w) // no confirm
	if d.Line() != "one" {
		t.Fatal("dialog advanced without confirm")
	}

	input.Confirm = true
	dialogs.Update(w)
	if d.Line() != "two" {
		t.Fatalf("line = %q", d.Line())
	}
	dialogs.Update(w)

	if IsPaused(w) {
		t.Fatal("gameplay still paused after the dialog closed")
	}
	if n := countOf[events.DialogOver](p.drain()); n != 1 {
		t.Fatalf("DialogOver published %d times", n)
	}
	e, ok := components.ScheduledEvent.First(w)
	if !ok {
		t.Fatal("follow-up not scheduled")
	}
	if s := components.ScheduledEvent.Get(e); s.Timeout != 3.0 {
		t.Fatalf("scheduled = %+v", s)
	}
}

func TestDialogsQueue(t *testing.T) {
	w := newTestWorld(t)
	dialogs := NewDialogs(w)
	player := factory.CreatePlayer(w, 100, 100)
	bus := components.BusOf(w)

	bus.Publish(events.NewDialog{Lines: []string{"first"}})
	bus.Publish(events.NewDialog{Lines: []string{"second"}})
	dialogs.Update(w)

	n := 0
	components.Dialog.Each(w, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Fatalf("%d dialogs open", n)
	}

	components.Input.Get(player).Confirm = true
	dialogs.Update(w) // closes first
	dialogs.Update(w) // opens second
	d := components.Dialog.Get(components.Dialog.MustFirst(w))
	if d.Line() != "second" {
		t.Fatalf("line = %q", d.Line())
	}
}

func TestSessionEndsOnGameOver(t *testing.T) {
	w := newTestWorld(t)
	outcome := NewOutcome(w)
	components.BusOf(w).Publish(events.GameOver{})
	components.BusOf(w).Publish(events.NextArena{})
	outcome.Update(w)
	if s := components.SessionOf(w).State; s != components.SessionLost {
		t.Fatalf("state = %v", s)
	}
	if !IsPaused(w) {
		t.Fatal("gameplay should stop after game over")
	}
}

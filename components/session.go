package components

import "github.com/yohamta/donburi"

// SessionState is the outcome of the current arena run.
type SessionState int

const (
	SessionPlaying SessionState = iota
	SessionLost
	SessionArenaCleared
)

type SessionData struct {
	ID           string
	Arena        string
	State        SessionState
	Kills        int
	WavesCleared int
}

var Session = donburi.NewComponentType[SessionData]()

// SessionOf returns the running session, or nil when none exists.
func SessionOf(w donburi.World) *SessionData {
	e, ok := Session.First(w)
	if !ok {
		return nil
	}
	return Session.Get(e)
}

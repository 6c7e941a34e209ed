package systems

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Outcome ends the session on GameOver or NextArena. The scene decides
// what to show next from the session state.
type Outcome struct {
	reader *events.Reader
}

func NewOutcome(w donburi.World) *Outcome {
	return &Outcome{reader: components.BusOf(w).Register("outcome")}
}

func (o *Outcome) Update(w donburi.World) {
	session := components.SessionOf(w)
	for _, ev := range components.BusOf(w).Read(o.reader) {
		if session == nil || session.State != components.SessionPlaying {
			continue
		}
		switch ev.(type) {
		case events.GameOver:
			session.State = components.SessionLost
			zap.L().Info("game over",
				zap.String("session", session.ID),
				zap.Int("kills", session.Kills),
				zap.Int("waves", session.WavesCleared))
		case events.NextArena:
			session.State = components.SessionArenaCleared
			zap.L().Info("arena cleared",
				zap.String("session", session.ID),
				zap.String("arena", session.Arena))
		}
	}
}

package systems

import (
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/events"
	"github.com/yohamta/donburi"
)

// Garbage deletes dead enemies and counts the kill.
type Garbage struct {
	reader *events.Reader
}

func NewGarbage(w donburi.World) *Garbage {
	return &Garbage{reader: components.BusOf(w).Register("garbage")}
}

func (g *Garbage) Update(w donburi.World) {
	session := components.SessionOf(w)
	for _, ev := range components.BusOf(w).Read(g.reader) {
		died, ok := ev.(events.EnemyDied)
		if !ok {
			continue
		}
		if session != nil && w.Valid(died.Entity) {
			session.Kills++
		}
		collider.Destroy(w, died.Entity)
	}
}

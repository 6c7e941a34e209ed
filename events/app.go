package events

import (
	"github.com/yohamta/donburi"
)

// AppEvent is the closed set of gameplay events.
type AppEvent interface {
	appEvent()
}

// EntityHit is published when a bullet reaches a player or enemy.
type EntityHit struct {
	Entity donburi.Entity
}

// EnemyDied is published once when an enemy's health reaches zero.
type EnemyDied struct {
	Entity donburi.Entity
}

type GameOver struct{}

// SpawnEnemy asks the spawner for Count regular enemies.
type SpawnEnemy struct {
	Count int
}

type SpawnBoss struct{}

// NewDialog opens a dialog box. When the last line is confirmed, Then (if
// set) is scheduled.
type NewDialog struct {
	Lines []string
	Then  *Deferred
}

// Deferred is an event to publish after Timeout seconds.
type Deferred struct {
	Timeout float64
	Event   AppEvent
}

type DialogOver struct{}

type NextWave struct{}

type NextArena struct{}

func (EntityHit) appEvent()  {}
func (EnemyDied) appEvent()  {}
func (GameOver) appEvent()   {}
func (SpawnEnemy) appEvent() {}
func (SpawnBoss) appEvent()  {}
func (NewDialog) appEvent()  {}
func (DialogOver) appEvent() {}
func (NextWave) appEvent()   {}
func (NextArena) appEvent()  {}

// Name returns a short label for logs.
func Name(ev AppEvent) string {
	switch ev.(type) {
	case EntityHit:
		return "entity_hit"
	case EnemyDied:
		return "enemy_died"
	case GameOver:
		return "game_over"
	case SpawnEnemy:
		return "spawn_enemy"
	case SpawnBoss:
		return "spawn_boss"
	case NewDialog:
		return "new_dialog"
	case DialogOver:
		return "dialog_over"
	case NextWave:
		return "next_wave"
	case NextArena:
		return "next_arena"
	}
	return "unknown"
}

// Bus is the channel type stored in the world.
type Bus = Channel[AppEvent]

func NewBus(capacity int) *Bus {
	return NewChannel[AppEvent](capacity)
}

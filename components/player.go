package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerStatus int

const (
	PlayerWalking PlayerStatus = iota
	PlayerFalling
	PlayerGameOver
)

func (s PlayerStatus) String() string {
	switch s {
	case PlayerFalling:
		return "falling"
	case PlayerGameOver:
		return "game_over"
	}
	return "walking"
}

// FallingData tracks a fall off the walkable area.
type FallingData struct {
	Duration float64
	Elapsed  float64
	Shrink   *gween.Tween // scale 1 -> 0 over Duration
}

type PlayerData struct {
	Status  PlayerStatus
	Falling FallingData
	Speed   float64
	Facing  string // last walking animation, kept while idle
}

var Player = donburi.NewComponentType[PlayerData]()

package components

import (
	"github.com/automoto/thief-arena/enemy"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Behavior enemy.Behavior
}

var Enemy = donburi.NewComponentType[EnemyData]()

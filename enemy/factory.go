package enemy

import (
	"fmt"

	"github.com/automoto/thief-arena/config"
)

// New returns a fresh behaviour of the given kind.
func New(kind Kind, cfg config.EnemyConfig) (Behavior, error) {
	switch kind {
	case Simple:
		return NewSimpleEnemy(cfg.Simple), nil
	case CreepyFirstBoss:
		return NewBoss(cfg.Boss), nil
	}
	return nil, fmt.Errorf("enemy: unknown kind %d", kind)
}

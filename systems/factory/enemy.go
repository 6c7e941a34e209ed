package factory

import (
	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/enemy"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, kind enemy.Kind, x, y float64) (*donburi.Entry, error) {
	behavior, err := enemy.New(kind, cfg.Enemy)
	if err != nil {
		return nil, err
	}

	health, size := cfg.Enemy.Simple.Health, cfg.Enemy.Simple.ColliderSize
	var e *donburi.Entry
	if kind == enemy.CreepyFirstBoss {
		health, size = cfg.Enemy.Boss.Health, cfg.Enemy.Boss.ColliderSize
		e = archetypes.Enemy.Spawn(w, tags.Boss)
	} else {
		e = archetypes.Enemy.Spawn(w)
	}

	components.Transform.SetValue(e, components.NewTransform(x, y))
	components.Enemy.SetValue(e, components.EnemyData{Behavior: behavior})
	components.Health.SetValue(e, components.HealthData{Current: health, Max: health})

	collider.Attach(components.SpaceOf(w), e, collider.Rect{
		X:     x,
		Y:     y,
		HalfW: size / 2,
		HalfH: size / 2,
		Kind:  components.KindEnemy,
	})

	return e, nil
}

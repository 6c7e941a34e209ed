package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ErrBulletNotFound matches every BulletNotFoundError.
var ErrBulletNotFound = errors.New("bullet archetype not found")

// BulletNotFoundError reports an index outside the bullet table.
type BulletNotFoundError struct {
	Index int
}

func (e *BulletNotFoundError) Error() string {
	return fmt.Sprintf("bullet archetype %d not found", e.Index)
}

func (e *BulletNotFoundError) Is(target error) bool {
	return target == ErrBulletNotFound
}

var (
	playerBulletHits = []components.ColliderKind{components.KindEnemy, components.KindWall}
	enemyBulletHits  = []components.ColliderKind{components.KindPlayer, components.KindWall}
)

// BulletSpawner creates bullets from an indexed archetype table.
type BulletSpawner struct {
	types []config.BulletTypeConfig
}

func NewBulletSpawner(types []config.BulletTypeConfig) *BulletSpawner {
	return &BulletSpawner{types: types}
}

// Lookup returns the archetype at index.
func (s *BulletSpawner) Lookup(index int) (config.BulletTypeConfig, error) {
	if index < 0 || index >= len(s.types) {
		return config.BulletTypeConfig{}, &BulletNotFoundError{Index: index}
	}
	return s.types[index], nil
}

// SpawnPlayerBullet fires a bullet that hits enemies and walls.
func (s *BulletSpawner) SpawnPlayerBullet(w donburi.World, index int, origin, direction math.Vec2, speed float64) (*donburi.Entry, error) {
	return s.spawn(w, index, components.KindPlayer, playerBulletHits, origin, direction, speed)
}

// SpawnEnemyBullet fires a bullet that hits the player and walls.
func (s *BulletSpawner) SpawnEnemyBullet(w donburi.World, index int, origin, direction math.Vec2, speed float64) (*donburi.Entry, error) {
	return s.spawn(w, index, components.KindEnemy, enemyBulletHits, origin, direction, speed)
}

func (s *BulletSpawner) spawn(w donburi.World, index int, firedBy components.ColliderKind, hits []components.ColliderKind, origin, direction math.Vec2, speed float64) (*donburi.Entry, error) {
	bt, err := s.Lookup(index)
	if err != nil {
		return nil, err
	}
	idx := components.SpaceOf(w)
	if idx == nil {
		return nil, errors.New("no collision space in world")
	}

	b := archetypes.Bullet.Spawn(w)
	components.Transform.SetValue(b, components.NewTransform(origin.X, origin.Y))
	components.Bullet.SetValue(b, components.BulletData{
		Speed:     speed,
		Direction: direction.Normalized(),
		Curvature: bt.Curvature,
		FiredBy:   firedBy,
		Archetype: bt.Name,
	})
	collider.Attach(idx, b, collider.Rect{
		X:         origin.X,
		Y:         origin.Y,
		HalfW:     bt.Width / 2,
		HalfH:     bt.Height / 2,
		Kind:      components.KindBullet,
		Whitelist: hits,
	})
	return b, nil
}

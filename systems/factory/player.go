package factory

import (
	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Transform.SetValue(player, components.NewTransform(x, y))
	components.Player.SetValue(player, components.PlayerData{
		Status: components.PlayerWalking,
		Speed:  cfg.Player.Speed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Weapon.SetValue(player, components.WeaponData{
		ReloadTime:  cfg.Player.ReloadTime,
		BulletSpeed: cfg.Player.BulletSpeed,
		Bullet:      cfg.Player.Bullet,
	})
	components.Input.SetValue(player, components.InputData{Aim: math.Vec2{X: x, Y: y}})

	half := cfg.Player.ColliderSize / 2
	collider.Attach(components.SpaceOf(w), player, collider.Rect{
		X:     x,
		Y:     y,
		HalfW: half,
		HalfH: half,
		Kind:  components.KindPlayer,
	})

	return player
}

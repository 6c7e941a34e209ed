package components

import "github.com/yohamta/donburi"

type WeaponData struct {
	ReloadTime  float64 // seconds between shots
	Cooldown    float64 // seconds until the next shot
	BulletSpeed float64
	Bullet      int // index into the bullet archetype table
}

var Weapon = donburi.NewComponentType[WeaponData]()

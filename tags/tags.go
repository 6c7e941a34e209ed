package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Boss     = donburi.NewTag().SetName("Boss")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Wall     = donburi.NewTag().SetName("Wall")
	Walkable = donburi.NewTag().SetName("Walkable")
	Prop     = donburi.NewTag().SetName("Prop")
)

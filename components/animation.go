package components

import "github.com/yohamta/donburi"

// AnimationData names the clip an entity should show. Behaviours clear
// Current every tick and set it again only when they want a clip.
type AnimationData struct {
	Current  string
	Previous string
}

var Animation = donburi.NewComponentType[AnimationData]()

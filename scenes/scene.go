package scenes

import (
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	layerWorld ecs.LayerID = iota
	layerUI
)

// runTotals accumulates across the arenas of one run.
type runTotals struct {
	Arenas  int
	Kills   int
	Waves   int
	Seconds float64
}

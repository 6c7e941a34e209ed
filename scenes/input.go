package scenes

import (
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// readInput copies keyboard and mouse state into the player's Input.
// The arena is drawn 1:1, so the cursor is already in world space.
func readInput(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		in := components.Input.Get(entry)
		in.Move = math.Vec2{}
		if anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
			in.Move.X--
		}
		if anyPressed(ebiten.KeyD, ebiten.KeyArrowRight) {
			in.Move.X++
		}
		if anyPressed(ebiten.KeyW, ebiten.KeyArrowUp) {
			in.Move.Y--
		}
		if anyPressed(ebiten.KeyS, ebiten.KeyArrowDown) {
			in.Move.Y++
		}

		x, y := ebiten.CursorPosition()
		in.Aim = math.Vec2{X: float64(x), Y: float64(y)}
		in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.Confirm = confirmPressed()
	})
}

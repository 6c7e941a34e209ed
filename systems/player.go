package systems

import (
	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/events"
	"github.com/automoto/thief-arena/spatial"
	"github.com/automoto/thief-arena/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// Player animation names.
const (
	AnimPlayerLeft  = "walk_left"
	AnimPlayerRight = "walk_right"
	AnimPlayerUp    = "walk_up"
	AnimPlayerDown  = "walk_down"
	AnimPlayerFall  = "fall"
)

// UpdatePlayer moves a walking player and animates a falling one.
func UpdatePlayer(w donburi.World) {
	dt := components.DeltaOf(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		switch player.Status {
		case components.PlayerWalking:
			walk(w, e, player, dt)
		case components.PlayerFalling:
			fall(w, e, player, dt)
		}
	})
}

func walk(w donburi.World, e *donburi.Entry, player *components.PlayerData, dt float64) {
	input := components.Input.Get(e)
	t := components.Transform.Get(e)

	dir := input.Move
	if dir.Magnitude() > 1 {
		dir = dir.Normalized()
	}
	step := dir.MulScalar(player.Speed * dt)

	if step.X != 0 || step.Y != 0 {
		t.Position = moveAgainstWalls(w, e, t.Position, step)
	}

	if e.HasComponent(components.Animation) {
		anim := components.Animation.Get(e)
		anim.Previous = anim.Current
		if name := facing(step); name != "" {
			player.Facing = name
		}
		anim.Current = player.Facing
	}
}

// moveAgainstWalls applies step, sliding along any wall in the way.
func moveAgainstWalls(w donburi.World, e *donburi.Entry, from, step math.Vec2) math.Vec2 {
	idx := components.SpaceOf(w)
	if idx == nil || !e.HasComponent(components.Collider) {
		return from.Add(step)
	}
	c := components.Collider.Get(e)
	blocked := func(p math.Vec2) bool {
		b := spatial.BoxAround(p.X, p.Y, c.HalfW, c.HalfH)
		return len(idx.Query(b, components.KindWall.Group())) > 0
	}

	to := from.Add(step)
	if !blocked(to) {
		return to
	}
	if x := (math.Vec2{X: from.X + step.X, Y: from.Y}); step.X != 0 && !blocked(x) {
		return x
	}
	if y := (math.Vec2{X: from.X, Y: from.Y + step.Y}); step.Y != 0 && !blocked(y) {
		return y
	}
	return from
}

func facing(step math.Vec2) string {
	switch {
	case step.X < 0:
		return AnimPlayerLeft
	case step.X > 0:
		return AnimPlayerRight
	case step.Y < 0:
		return AnimPlayerUp
	case step.Y > 0:
		return AnimPlayerDown
	}
	return ""
}

// StartFalling switches a walking player into the falling state.
func StartFalling(e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.Status != components.PlayerWalking {
		return
	}
	d := cfg.Player.FallingDuration
	player.Status = components.PlayerFalling
	player.Falling = components.FallingData{
		Duration: d,
		Shrink:   gween.New(1, 0, float32(d), ease.Linear),
	}
	if e.HasComponent(components.Animation) {
		components.Animation.Get(e).Current = AnimPlayerFall
	}
	zap.L().Info("player is falling")
}

func fall(w donburi.World, e *donburi.Entry, player *components.PlayerData, dt float64) {
	f := &player.Falling
	f.Elapsed += dt

	t := components.Transform.Get(e)
	scale := 0.0
	if f.Shrink != nil {
		s, _ := f.Shrink.Update(float32(dt))
		scale = float64(s)
	}
	if scale < 0 {
		scale = 0
	}
	t.Scale = math.Vec2{X: scale, Y: scale}
	t.Rotation += cfg.Player.FallRotSpeed * dt

	if f.Elapsed >= f.Duration {
		player.Status = components.PlayerGameOver
		if bus := components.BusOf(w); bus != nil {
			bus.Publish(events.GameOver{})
		}
		zap.L().Info("player fell off the arena")
	}
}

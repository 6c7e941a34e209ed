package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/thief-arena/assets"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/automoto/thief-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func loadCourtyard(t *testing.T) (donburi.World, []System) {
	t.Helper()
	config.Reset()
	a, err := assets.LoadArena(assets.FS(), "arenas/arena1.tmx")
	if err != nil {
		t.Fatal(err)
	}
	w := donburi.NewWorld()
	factory.CreateArena(w, a)
	spawner := factory.NewBulletSpawner(config.Bullet.Types)
	return w, Pipeline(w, spawner, rand.New(rand.NewPCG(7, 7)))
}

func skipIntro(t *testing.T, w donburi.World, systems []System) {
	t.Helper()
	player := tags.Player.MustFirst(w)
	input := components.Input.Get(player)
	input.Confirm = true
	for i := 0; i < 10 && IsPaused(w); i++ {
		Tick(w, systems)
	}
	input.Confirm = false
	if IsPaused(w) {
		t.Fatal("intro dialog never closed")
	}
}

func TestArenaIntroThenFirstWave(t *testing.T) {
	w, systems := loadCourtyard(t)

	if !IsPaused(w) {
		t.Fatal("intro dialog should pause the arena")
	}
	Tick(w, systems)
	if n := countEnemies(w); n != 1 {
		t.Fatalf("%d enemies before the intro ends, want the pre-placed one", n)
	}

	skipIntro(t, w, systems)

	// pre-placed enemy plus the first wave's in-flight count
	if n := countEnemies(w); n != 3 {
		t.Fatalf("%d enemies after the first wave started", n)
	}
	waves := components.Waves.Get(components.Waves.MustFirst(w))
	if wave := waves.Active(); wave.Status != components.WaveRunning || wave.EnemiesLeft != 3 {
		t.Fatalf("wave = %+v", wave)
	}
}

func TestFallingIntoThePitLosesTheRun(t *testing.T) {
	w, systems := loadCourtyard(t)
	skipIntro(t, w, systems)

	player := tags.Player.MustFirst(w)
	components.Transform.Get(player).Position = math.Vec2{X: 320, Y: 320}

	for i := 0; i < 3*config.C.TPS && components.SessionOf(w).State == components.SessionPlaying; i++ {
		Tick(w, systems)
	}

	if s := components.SessionOf(w).State; s != components.SessionLost {
		t.Fatalf("session state = %v", s)
	}
	if st := components.Player.Get(player).Status; st != components.PlayerGameOver {
		t.Fatalf("player status = %v", st)
	}
}

func TestBridgeKeepsPlayerWalking(t *testing.T) {
	w, systems := loadCourtyard(t)
	skipIntro(t, w, systems)

	player := tags.Player.MustFirst(w)
	components.Transform.Get(player).Position = math.Vec2{X: 320, Y: 240}
	for i := 0; i < 10; i++ {
		Tick(w, systems)
	}
	if st := components.Player.Get(player).Status; st != components.PlayerWalking {
		t.Fatalf("player status on the bridge = %v", st)
	}
}

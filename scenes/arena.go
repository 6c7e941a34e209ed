package scenes

import (
	"image/color"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/thief-arena/assets"
	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/records"
	"github.com/automoto/thief-arena/systems"
	"github.com/automoto/thief-arena/systems/factory"
	"github.com/automoto/thief-arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ArenaScene plays one arena and hands over to the next arena or to the
// game over screen when the session ends.
type ArenaScene struct {
	ecs          *ecs.ECS
	dialog       *ui.DialogUI
	sceneChanger SceneChanger
	store        *records.Store
	path         string
	totals       runTotals
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, store *records.Store, path string) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, store: store, path: path}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.ecs == nil {
		return
	}
	as.ecs.Update()
	as.dialog.SetLine(dialogLine(as.ecs.World))
	as.dialog.Update()
	as.checkOutcome()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.dialog.Draw(screen)
}

func (as *ArenaScene) configure() {
	arena, err := assets.LoadArena(assets.FS(), as.path)
	if err != nil {
		zap.L().Error("failed to load arena", zap.String("arena", as.path), zap.Error(err))
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger, as.store))
		return
	}

	w := donburi.NewWorld()
	factory.CreateArena(w, arena)

	spawner := factory.NewBulletSpawner(cfg.Bullet.Types)
	seed := uint64(time.Now().UnixNano())
	pipeline := systems.Pipeline(w, spawner, rand.New(rand.NewPCG(seed, seed>>1)))

	e := ecs.NewECS(w)
	e.AddSystem(readInput)
	for _, s := range pipeline {
		e.AddSystem(func(e *ecs.ECS) { s(e.World) })
	}

	e.AddRenderer(layerWorld, drawArena)
	e.AddRenderer(layerWorld, drawActors)
	e.AddRenderer(layerWorld, drawColliders)
	e.AddRenderer(layerUI, drawHUD)

	as.dialog = ui.NewDialogUI(cfg.C.Width)
	as.ecs = e
}

func (as *ArenaScene) checkOutcome() {
	w := as.ecs.World
	session := components.SessionOf(w)
	if session == nil || session.State == components.SessionPlaying {
		return
	}

	seconds := 0.0
	if t, ok := components.Time.First(w); ok {
		seconds = components.Time.Get(t).Elapsed
	}
	totals := as.totals
	totals.Kills += session.Kills
	totals.Waves += session.WavesCleared
	totals.Seconds += seconds

	next := ""
	if a := components.ArenaOf(w); a != nil {
		next = a.Next
	}

	outcome := records.Lost
	switch {
	case session.State == components.SessionArenaCleared && next != "":
		outcome = records.Cleared
	case session.State == components.SessionArenaCleared:
		outcome = records.Victory
	}
	if err := as.store.SaveRun(records.FromSession(*session, outcome, seconds)); err != nil {
		zap.L().Warn("could not save run", zap.Error(err))
	}

	factory.DestroyArena(w)

	if outcome == records.Cleared {
		totals.Arenas++
		scene := NewArenaScene(as.sceneChanger, as.store, next)
		scene.totals = totals
		as.sceneChanger.ChangeScene(scene)
		return
	}
	if outcome == records.Victory {
		totals.Arenas++
	}
	as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, as.store, totals, outcome == records.Victory))
}

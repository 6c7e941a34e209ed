package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/fonts"
	"github.com/automoto/thief-arena/records"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// MenuScene displays the title and the best stored run
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	store        *records.Store
	best         string
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, store *records.Store) *MenuScene {
	return &MenuScene{sceneChanger: sc, store: store}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	best, ok, err := ms.store.Best()
	switch {
	case err != nil:
		zap.L().Warn("could not read run history", zap.Error(err))
	case ok:
		ms.best = fmt.Sprintf("Best: %d kills, %d waves", best.Kills, best.WavesCleared)
	}

	ms.ecs.AddSystem(ms.update)
	ms.ecs.AddRenderer(layerUI, ms.draw)
}

func (ms *MenuScene) update(_ *ecs.ECS) {
	if confirmPressed() {
		ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger, ms.store, cfg.Arena.Start))
	}
}

func (ms *MenuScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	drawCentered(screen, "THIEF ARENA", fonts.Title.Get(), h/3, cfg.Yellow)
	drawCentered(screen, "Press Enter to start", fonts.HUD.Get(), h/2, cfg.White)
	if ms.best != "" {
		drawCentered(screen, ms.best, fonts.Small.Get(), h/2+32, cfg.White)
	}
}

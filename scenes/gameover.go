package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/fonts"
	"github.com/automoto/thief-arena/records"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the totals of a finished run
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	store        *records.Store
	totals       runTotals
	victory      bool
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, store *records.Store, totals runTotals, victory bool) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, store: store, totals: totals, victory: victory}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.ecs.AddSystem(gs.update)
	gs.ecs.AddRenderer(layerUI, gs.draw)
}

func (gs *GameOverScene) update(_ *ecs.ECS) {
	if confirmPressed() {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.store))
	}
}

func (gs *GameOverScene) draw(_ *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	title, clr := "GAME OVER", cfg.Red
	if gs.victory {
		title, clr = "VICTORY", cfg.Yellow
	}
	drawCentered(screen, title, fonts.Title.Get(), h/3, clr)

	lines := []string{
		fmt.Sprintf("Arenas cleared: %d", gs.totals.Arenas),
		fmt.Sprintf("Waves cleared:  %d", gs.totals.Waves),
		fmt.Sprintf("Kills:          %d", gs.totals.Kills),
		fmt.Sprintf("Time:           %.0fs", gs.totals.Seconds),
	}
	for i, l := range lines {
		text.Draw(screen, l, face, w/2-80, h/2+i*18, cfg.White)
	}
	drawCentered(screen, "Press Enter", fonts.Small.Get(), h-48, cfg.White)
}

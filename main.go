package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/thief-arena/assets"
	"github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/fonts"
	"github.com/automoto/thief-arena/records"
	"github.com/automoto/thief-arena/scenes"
	"github.com/automoto/thief-arena/shared/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(store *records.Store, skipMenu bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipMenu {
		g.scene = scenes.NewArenaScene(g, store, config.Arena.Start)
	} else {
		g.scene = scenes.NewMenuScene(g, store)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning := flag.String("config", assets.TuningFile, "tuning file overlaid on the built-in defaults")
	arena := flag.String("arena", "", "start directly in this arena map")
	debug := flag.Bool("debug", false, "draw colliders")
	flag.Parse()

	if err := config.LoadFS(assets.FS(), assets.TuningFile); err != nil {
		return err
	}
	if err := config.Load(*tuning); err != nil {
		return err
	}
	if *arena != "" {
		config.Arena.Start = *arena
	}
	if *debug {
		config.Debug.DrawColliders = true
	}

	flush, err := logging.Install(config.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer flush()

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	store, err := records.Open(config.Records)
	if err != nil {
		zap.L().Warn("run history disabled", zap.Error(err))
		store = nil
	}

	ebiten.SetWindowTitle("Thief Arena")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetTPS(config.C.TPS)

	zap.L().Info("starting", zap.String("arena", config.Arena.Start), zap.Int("tps", config.C.TPS))
	return ebiten.RunGame(NewGame(store, *arena != ""))
}

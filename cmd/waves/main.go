// Command waves prints the arenas embedded in the game: map contents and
// the wave script of each.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/automoto/thief-arena/assets"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/shared/leveldata"
	"github.com/automoto/thief-arena/shared/logging"
	"go.uber.org/zap"
)

func main() {
	arena := flag.String("arena", "", "print only this arena map (e.g. arenas/arena1.tmx)")
	flag.Parse()

	cfg.Logging.Level = "warn"
	flush, err := logging.Install(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	arenas, err := load(*arena)
	if err != nil {
		zap.L().Error("arenas do not load", zap.String("arena", *arena), zap.Error(err))
		os.Exit(1)
	}
	for _, a := range arenas {
		describe(os.Stdout, a)
	}
}

// load returns the named arena, or every embedded arena when name is empty.
func load(name string) ([]*assets.Arena, error) {
	if name == "" {
		return assets.LoadAll(assets.FS(), "arenas")
	}
	a, err := assets.LoadArena(assets.FS(), name)
	if err != nil {
		return nil, err
	}
	return []*assets.Arena{a}, nil
}

func describe(out io.Writer, a *assets.Arena) {
	m := a.Map
	fmt.Fprintf(out, "%s (%s) %dx%d\n", a.Script.Name, a.Path, m.MapWidth, m.MapHeight)
	fmt.Fprintf(out, "  walls %d, walkable %d, props %d, enemies %d, spawn points %d\n",
		len(m.Walls), len(m.Walkables), len(m.Props), len(m.Enemies), len(m.SpawnLocations))
	if m.PlayerSpawn != nil {
		fmt.Fprintf(out, "  player at %s\n", point(*m.PlayerSpawn))
	}
	if m.BossSpawn != nil {
		fmt.Fprintf(out, "  boss at %s\n", point(*m.BossSpawn))
	}
	for i, w := range a.Script.Waves {
		if w.Boss {
			fmt.Fprintf(out, "  wave %d: boss\n", i+1)
			continue
		}
		fmt.Fprintf(out, "  wave %d: %d enemies, %d at once\n", i+1, w.TotalEnemies, w.EnemiesInFly)
	}
	if next := a.NextPath(); next != "" {
		fmt.Fprintf(out, "  next %s\n", next)
	} else {
		fmt.Fprintln(out, "  last arena")
	}
}

func point(p leveldata.Point) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}

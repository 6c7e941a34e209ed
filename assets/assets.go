package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/shared/leveldata"
)

//go:embed all:arenas tuning.toml
var files embed.FS

// TuningFile is the name of the embedded default tuning document.
const TuningFile = "tuning.toml"

// FS exposes the embedded arenas and tuning as one filesystem.
func FS() fs.FS {
	return files
}

// Arena is a map together with its wave script.
type Arena struct {
	Path   string
	Map    *leveldata.ArenaData
	Script *config.ArenaScript
}

// NextPath resolves the script's next arena relative to this arena's map.
func (a *Arena) NextPath() string {
	if a.Script.Next == "" {
		return ""
	}
	return path.Join(path.Dir(a.Path), a.Script.Next)
}

// LoadArena loads a map and its wave script and checks that a boss arena
// has somewhere to put the boss.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := leveldata.LoadArena(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	return withScript(fsys, tmxPath, m)
}

func withScript(fsys fs.FS, tmxPath string, m *leveldata.ArenaData) (*Arena, error) {
	var err error
	script := &config.ArenaScript{Name: m.Name}
	if m.Script != "" {
		script, err = config.LoadArenaScript(fsys, m.Script)
		if err != nil {
			return nil, err
		}
	}
	if script.Name == "" {
		script.Name = m.Name
	}
	if script.HasBoss() && m.BossSpawn == nil {
		return nil, fmt.Errorf("arena %s: %w", tmxPath, leveldata.ErrMissingBossSpawn)
	}
	return &Arena{Path: tmxPath, Map: m, Script: script}, nil
}

// LoadAll loads every map under dir together with its wave script, in
// path order.
func LoadAll(fsys fs.FS, dir string) ([]*Arena, error) {
	maps, paths, err := leveldata.LoadAllArenas(fsys, dir)
	if err != nil {
		return nil, err
	}
	out := make([]*Arena, 0, len(paths))
	for _, p := range paths {
		a, err := withScript(fsys, p, maps[p])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

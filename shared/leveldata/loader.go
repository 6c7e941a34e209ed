package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"
)

// LoadArena parses a TMX arena. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:      levelMap.Properties.GetString("name"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	if data.Name == "" {
		data.Name = strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	}
	if script := levelMap.Properties.GetString("waves"); script != "" {
		data.Script = path.Join(path.Dir(tmxPath), script)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupColliders:
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, rectOf(o))
			}
		case GroupWalkable:
			for _, o := range og.Objects {
				data.Walkables = append(data.Walkables, rectOf(o))
			}
		case GroupProps:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Name
				}
				data.Props = append(data.Props, Prop{Rect: rectOf(o), Kind: kind})
			}
		case GroupPlayer:
			if len(og.Objects) > 0 {
				p := pointOf(og.Objects[0])
				data.PlayerSpawn = &p
			}
			if len(og.Objects) > 1 {
				zap.L().Warn("several player spawns, using the first", zap.String("map", tmxPath))
			}
		case GroupEnemy:
			for _, o := range og.Objects {
				data.Enemies = append(data.Enemies, pointOf(o))
			}
		case GroupSpawn:
			for _, o := range og.Objects {
				data.SpawnLocations = append(data.SpawnLocations, pointOf(o))
			}
		case GroupBoss:
			if len(og.Objects) > 0 {
				p := pointOf(og.Objects[0])
				data.BossSpawn = &p
			}
		default:
			zap.L().Debug("ignoring object group", zap.String("map", tmxPath), zap.String("group", og.Name))
		}
	}

	if len(data.Walkables) == 0 {
		zap.L().Warn("arena has no walkable area", zap.String("map", tmxPath))
	}

	return data, nil
}

// rectOf converts a Tiled rectangle; tile objects are anchored bottom-left.
func rectOf(o *tiled.Object) Rect {
	y := o.Y
	if o.GID != 0 {
		y -= o.Height
	}
	return Rect{X: o.X, Y: y, W: o.Width, H: o.Height}
}

// pointOf returns the centre of a Tiled object. Point objects have no size.
func pointOf(o *tiled.Object) Point {
	r := rectOf(o)
	cx, cy := r.Center()
	return Point{X: cx, Y: cy}
}

// LoadAllArenas discovers all .tmx files in dir within fsys and loads each,
// returning a map keyed by path plus the sorted list of paths.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	for _, p := range matches {
		data, err := LoadArena(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		arenas[p] = data
	}

	sort.Strings(matches)
	return arenas, matches, nil
}

// Package leveldata parses arena TMX maps into plain data.
// It depends on neither ebitengine, donburi nor resolv.
package leveldata

import "errors"

// ErrMissingBossSpawn is returned when an arena needs a boss but its map
// has no boss spawn point.
var ErrMissingBossSpawn = errors.New("leveldata: arena has no boss spawn point")

// Object group names recognised in arena maps.
const (
	GroupColliders = "colliders"
	GroupWalkable  = "walkable"
	GroupProps     = "props"
	GroupPlayer    = "player"
	GroupEnemy     = "enemy"
	GroupSpawn     = "spawn"
	GroupBoss      = "boss"
)

// ArenaData holds everything parsed from one arena map.
type ArenaData struct {
	Name      string
	Script    string // wave script path from the map's "waves" property
	MapWidth  int
	MapHeight int

	Walls          []Rect
	Walkables      []Rect
	Props          []Prop
	Enemies        []Point
	SpawnLocations []Point
	PlayerSpawn    *Point
	BossSpawn      *Point
}

// Rect is an axis-aligned area with a top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type Point struct {
	X, Y float64
}

// Prop is decoration placed in the arena.
type Prop struct {
	Rect
	Kind string
}

// MustBossSpawn returns the boss spawn point and panics when the map has
// none. Missing boss spawns are authoring errors.
func (a *ArenaData) MustBossSpawn() Point {
	if a.BossSpawn == nil {
		panic(ErrMissingBossSpawn)
	}
	return *a.BossSpawn
}

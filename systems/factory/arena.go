package factory

import (
	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/assets"
	"github.com/automoto/thief-arena/collider"
	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/enemy"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// CreateArena builds a complete arena world: singletons, map geometry, the
// player, pre-placed enemies, the wave list and the intro dialog.
func CreateArena(w donburi.World, a *assets.Arena) *donburi.Entry {
	m := a.Map
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	CreateSingletons(w, m.MapWidth, m.MapHeight, cfg.Arena.CellSize, cfg.Arena.EventCapacity, 1/float64(tps))
	CreateSession(w, a.Path)

	arena := archetypes.Arena.Spawn(w)
	data := components.ArenaData{
		Name:   a.Script.Name,
		Width:  float64(m.MapWidth),
		Height: float64(m.MapHeight),
		Next:   a.NextPath(),
	}
	if a.Script.HasBoss() || m.BossSpawn != nil {
		p := m.MustBossSpawn() // assets.LoadArena rejects boss scripts without one
		data.BossSpawn = &math.Vec2{X: p.X, Y: p.Y}
	}
	components.Arena.SetValue(arena, data)

	for _, r := range m.Walls {
		CreateWall(w, r)
	}
	for _, r := range m.Walkables {
		CreateWalkable(w, r, cfg.Arena.WalkableSensors)
	}
	for _, p := range m.Props {
		CreateProp(w, p)
	}
	for _, p := range m.SpawnLocations {
		CreateSpawnLocation(w, p)
	}

	px, py := cfg.Arena.DefaultSpawnX, cfg.Arena.DefaultSpawnY
	if m.PlayerSpawn != nil {
		px, py = m.PlayerSpawn.X, m.PlayerSpawn.Y
	} else {
		zap.L().Warn("arena has no player spawn, using default", zap.String("arena", a.Path))
	}
	CreatePlayer(w, px, py)

	for _, p := range m.Enemies {
		if _, err := CreateEnemy(w, enemy.Simple, p.X, p.Y); err != nil {
			zap.L().Error("failed to place enemy", zap.Error(err))
		}
	}

	CreateWaves(w, a.Script.Waves)

	if len(a.Script.Intro) > 0 {
		CreateDialog(w, a.Script.Intro, nil)
	}

	zap.L().Info("arena created",
		zap.String("arena", data.Name),
		zap.Int("walls", len(m.Walls)),
		zap.Int("waves", len(a.Script.Waves)))

	return arena
}

// DestroyArena removes every gameplay entity, taking colliders out of the
// spatial index first. Singletons are left alone. It is safe to call twice.
func DestroyArena(w donburi.World) int {
	var doomed []donburi.Entity
	collect := func(e *donburi.Entry) { doomed = append(doomed, e.Entity()) }

	components.Transform.Each(w, collect)
	components.SpawnLocation.Each(w, collect)
	components.ScheduledEvent.Each(w, collect)
	components.Dialog.Each(w, collect)
	components.Waves.Each(w, collect)

	for _, e := range doomed {
		collider.Destroy(w, e)
	}
	return len(doomed)
}

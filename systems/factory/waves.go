package factory

import (
	"github.com/automoto/thief-arena/archetypes"
	"github.com/automoto/thief-arena/components"
	"github.com/automoto/thief-arena/config"
	"github.com/yohamta/donburi"
)

// CreateWaves adds the wave list for an arena. A boss wave spawns exactly
// one enemy.
func CreateWaves(w donburi.World, waves []config.WaveConfig) *donburi.Entry {
	e := archetypes.Waves.Spawn(w)
	data := components.WavesData{Waves: make([]components.Wave, 0, len(waves))}
	for _, wc := range waves {
		wave := components.Wave{
			EnemiesLeft:  wc.TotalEnemies,
			EnemiesInFly: wc.EnemiesInFly,
			Boss:         wc.Boss,
		}
		if wc.Boss {
			wave.EnemiesLeft, wave.EnemiesInFly = 1, 1
		}
		data.Waves = append(data.Waves, wave)
	}
	if len(data.Waves) == 0 {
		data.Status = components.WavesFinished
	}
	components.Waves.SetValue(e, data)
	return e
}

package systems

import (
	"fmt"

	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/automoto/thief-arena/events"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Waves runs the arena's wave list: it asks for spawns, tops up the wave
// as enemies die and announces when a wave or the whole arena is cleared.
type Waves struct {
	reader *events.Reader
}

func NewWaves(w donburi.World) *Waves {
	return &Waves{reader: components.BusOf(w).Register("waves")}
}

func (s *Waves) Update(w donburi.World) {
	entry, ok := components.Waves.First(w)
	if !ok {
		return
	}
	waves := components.Waves.Get(entry)
	bus := components.BusOf(w)

	died, advance := 0, false
	for _, ev := range bus.Read(s.reader) {
		switch ev.(type) {
		case events.EnemyDied:
			died++
		case events.NextWave:
			advance = true
		}
	}

	if advance {
		nextWave(waves)
	}

	if waves.Status == components.WavesFinished {
		if !waves.Announced {
			waves.Announced = true
			bus.Publish(events.NextArena{})
			zap.L().Info("all waves cleared")
		}
		return
	}

	wave := waves.Active()
	switch wave.Status {
	case components.WaveIdle:
		startWave(bus, wave)
		zap.L().Info("wave started",
			zap.Int("wave", waves.Current+1),
			zap.Int("enemies", wave.CurrentEnemies+wave.EnemiesLeft),
			zap.Bool("boss", wave.Boss))
		if wave.CurrentEnemies == 0 {
			finishWave(w, bus, waves, wave)
		}

	case components.WaveRunning:
		if died == 0 {
			return
		}
		wave.CurrentEnemies = max(wave.CurrentEnemies-died, 0)
		if wave.CurrentEnemies == 0 {
			finishWave(w, bus, waves, wave)
			return
		}
		n := min(wave.EnemiesInFly-wave.CurrentEnemies, wave.EnemiesLeft)
		if n > 0 {
			wave.EnemiesLeft -= n
			wave.CurrentEnemies += n
			bus.Publish(events.SpawnEnemy{Count: n})
		}
	}
}

func startWave(bus *events.Bus, wave *components.Wave) {
	wave.Status = components.WaveRunning
	if wave.Boss {
		wave.EnemiesLeft = 0
		wave.CurrentEnemies = 1
		bus.Publish(events.SpawnBoss{})
		return
	}
	n := min(wave.EnemiesLeft, wave.EnemiesInFly)
	if n <= 0 {
		return
	}
	wave.EnemiesLeft -= n
	wave.CurrentEnemies = n
	bus.Publish(events.SpawnEnemy{Count: n})
}

func finishWave(w donburi.World, bus *events.Bus, waves *components.WavesData, wave *components.Wave) {
	wave.Status = components.WaveOver
	if s := components.SessionOf(w); s != nil {
		s.WavesCleared++
	}
	bus.Publish(events.NewDialog{
		Lines: []string{fmt.Sprintf("Wave %d cleared.", waves.Current+1)},
		Then:  &events.Deferred{Timeout: cfg.Arena.WaveClearDelay, Event: events.NextWave{}},
	})
	zap.L().Info("wave cleared", zap.Int("wave", waves.Current+1))
}

func nextWave(waves *components.WavesData) {
	wave := waves.Active()
	if wave == nil || wave.Status != components.WaveOver {
		return
	}
	waves.Current++
	if waves.Current >= len(waves.Waves) {
		waves.Status = components.WavesFinished
	}
}

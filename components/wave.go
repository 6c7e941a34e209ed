package components

import "github.com/yohamta/donburi"

type WaveStatus int

const (
	WaveIdle WaveStatus = iota
	WaveRunning
	WaveOver
)

func (s WaveStatus) String() string {
	switch s {
	case WaveRunning:
		return "running"
	case WaveOver:
		return "over"
	}
	return "idle"
}

// Wave is one batch of enemies. EnemiesLeft counts enemies not spawned yet,
// CurrentEnemies counts spawned enemies still alive.
type Wave struct {
	EnemiesLeft    int
	EnemiesInFly   int
	CurrentEnemies int
	Boss           bool
	Status         WaveStatus
}

type WavesStatus int

const (
	WavesRunning WavesStatus = iota
	WavesFinished
)

// WavesData is the ordered wave list for an arena.
type WavesData struct {
	Waves     []Wave
	Current   int
	Status    WavesStatus
	Announced bool // NextArena published
}

// Active returns the wave being played, or nil once all waves are done.
func (w *WavesData) Active() *Wave {
	if w.Status == WavesFinished || w.Current >= len(w.Waves) {
		return nil
	}
	return &w.Waves[w.Current]
}

var Waves = donburi.NewComponentType[WavesData]()

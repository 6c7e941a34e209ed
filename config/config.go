package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds general game configuration
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	TPS    int `toml:"tps"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed        float64 `toml:"speed"` // world units per second
	Health       int     `toml:"health"`
	ColliderSize float64 `toml:"collider_size"`

	// Falling off the walkable area
	FallingDuration float64 `toml:"falling_duration"` // seconds
	FallRotSpeed    float64 `toml:"fall_rot_speed"`   // radians per second

	// Weapon
	ReloadTime  float64 `toml:"reload_time"`
	BulletSpeed float64 `toml:"bullet_speed"`
	Bullet      int     `toml:"bullet"` // index into Bullet.Types
}

// SimpleEnemyConfig tunes the walk-then-shoot enemy.
type SimpleEnemyConfig struct {
	Health        int     `toml:"health"`
	ColliderSize  float64 `toml:"collider_size"`
	BulletSpeed   float64 `toml:"bullet_speed"`
	WalkSpeed     float64 `toml:"walk_speed"` // units per tick
	WalkDuration  float64 `toml:"walk_duration"`
	ShootDuration float64 `toml:"shoot_duration"`
	Bullet        int     `toml:"bullet"`
}

// BossConfig tunes the wave boss.
type BossConfig struct {
	Health            int     `toml:"health"`
	ColliderSize      float64 `toml:"collider_size"`
	WaitDuration      float64 `toml:"wait_duration"`
	ShootDuration     float64 `toml:"shoot_duration"`
	FramesBetweenShot int     `toml:"frames_between_shot"`
	BulletSpeed       float64 `toml:"bullet_speed"`
	ShotOffset        float64 `toml:"shot_offset"` // distance below the boss centre
	Bullet            int     `toml:"bullet"`
}

type EnemyConfig struct {
	Simple SimpleEnemyConfig `toml:"simple"`
	Boss   BossConfig        `toml:"boss"`
}

// BulletTypeConfig is one entry of the bullet archetype table.
type BulletTypeConfig struct {
	Name      string  `toml:"name"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Curvature float64 `toml:"curvature"` // radians per tick
}

type BulletConfig struct {
	Types []BulletTypeConfig `toml:"types"`
	// Bullets further than this outside the arena are removed.
	BoundsMargin float64 `toml:"bounds_margin"`
}

// ArenaConfig controls arena loading and pacing.
type ArenaConfig struct {
	Start           string  `toml:"start"` // map of the first arena
	CellSize        int     `toml:"cell_size"`
	EventCapacity   int     `toml:"event_capacity"`
	WaveClearDelay  float64 `toml:"wave_clear_delay"` // seconds between a cleared wave and the next
	DefaultSpawnX   float64 `toml:"default_spawn_x"`
	DefaultSpawnY   float64 `toml:"default_spawn_y"`
	SpawnJitter     float64 `toml:"spawn_jitter"` // 0 places enemies exactly on spawn points
	WalkableSensors bool    `toml:"walkable_sensors"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawColliders bool `toml:"draw_colliders"`
}

type RecordsConfig struct {
	AppName string `toml:"app_name"`
	Enabled bool   `toml:"enabled"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Bullet BulletConfig
var Arena ArenaConfig
var Logging LoggingConfig
var Debug DebugConfig
var Records RecordsConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 480,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:        50,
		Health:       3,
		ColliderSize: 16,

		FallingDuration: 1.0,
		FallRotSpeed:    25,

		ReloadTime:  1.0,
		BulletSpeed: 100,
		Bullet:      0,
	}

	Enemy = EnemyConfig{
		Simple: SimpleEnemyConfig{
			Health:        2,
			ColliderSize:  16,
			BulletSpeed:   100,
			WalkSpeed:     0.2,
			WalkDuration:  3.0,
			ShootDuration: 0.3,
			Bullet:        0,
		},
		Boss: BossConfig{
			Health:            20,
			ColliderSize:      40,
			WaitDuration:      2.0,
			ShootDuration:     3.0,
			FramesBetweenShot: 10,
			BulletSpeed:       50,
			ShotOffset:        25,
			Bullet:            1,
		},
	}

	Bullet = BulletConfig{
		Types: []BulletTypeConfig{
			{Name: "small", Width: 4, Height: 4},
			{Name: "orb", Width: 8, Height: 8},
			{Name: "spiral", Width: 4, Height: 4, Curvature: 0.05},
		},
		BoundsMargin: 32,
	}

	Arena = ArenaConfig{
		Start:           "arenas/arena1.tmx",
		CellSize:        16,
		EventCapacity:   256,
		WaveClearDelay:  3.0,
		DefaultSpawnX:   50,
		DefaultSpawnY:   50,
		SpawnJitter:     0,
		WalkableSensors: true,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	Debug = DebugConfig{}

	Records = RecordsConfig{
		AppName: "thief_arena",
		Enabled: true,
	}
}

// tuning is the TOML document layout. Sections that are absent keep the
// values already in the globals.
type tuning struct {
	Game    Config        `toml:"game"`
	Player  PlayerConfig  `toml:"player"`
	Enemy   EnemyConfig   `toml:"enemy"`
	Bullet  BulletConfig  `toml:"bullet"`
	Arena   ArenaConfig   `toml:"arena"`
	Logging LoggingConfig `toml:"logging"`
	Debug   DebugConfig   `toml:"debug"`
	Records RecordsConfig `toml:"records"`
}

// Load overlays the TOML file at path onto the globals. A missing file is
// not an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return apply(path, data)
}

// LoadFS is Load for embedded or test filesystems. The file must exist.
func LoadFS(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return apply(path, data)
}

func apply(path string, data []byte) error {
	t := tuning{
		Game:    *C,
		Player:  Player,
		Enemy:   Enemy,
		Bullet:  Bullet,
		Arena:   Arena,
		Logging: Logging,
		Debug:   Debug,
		Records: Records,
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(t.Bullet.Types) == 0 {
		return fmt.Errorf("parse config %s: bullet.types must not be empty", path)
	}

	C = &t.Game
	Player = t.Player
	Enemy = t.Enemy
	Bullet = t.Bullet
	Arena = t.Arena
	Logging = t.Logging
	Debug = t.Debug
	Records = t.Records
	return nil
}

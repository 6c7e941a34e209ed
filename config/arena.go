package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// WaveConfig is one wave in an arena script.
type WaveConfig struct {
	TotalEnemies int  `yaml:"total_enemies"`
	EnemiesInFly int  `yaml:"enemies_in_fly"`
	Boss         bool `yaml:"boss"`
}

// ArenaScript is the YAML wave script that goes with an arena map.
type ArenaScript struct {
	Name  string       `yaml:"name"`
	Intro []string     `yaml:"intro"`
	Waves []WaveConfig `yaml:"waves"`
	Next  string       `yaml:"next"` // map of the following arena
}

// HasBoss reports whether any wave spawns the boss.
func (a *ArenaScript) HasBoss() bool {
	for _, w := range a.Waves {
		if w.Boss {
			return true
		}
	}
	return false
}

// LoadArenaScript reads and validates a wave script.
func LoadArenaScript(fsys fs.FS, path string) (*ArenaScript, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read arena script %s: %w", path, err)
	}
	var s ArenaScript
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse arena script %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("arena script %s: %w", path, err)
	}
	return &s, nil
}

func (a *ArenaScript) validate() error {
	var errs []error
	for i, w := range a.Waves {
		if w.Boss {
			continue
		}
		if w.TotalEnemies < 0 {
			errs = append(errs, fmt.Errorf("wave %d: total_enemies is negative", i))
		}
		if w.TotalEnemies > 0 && w.EnemiesInFly <= 0 {
			errs = append(errs, fmt.Errorf("wave %d: enemies_in_fly must be positive", i))
		}
	}
	return errors.Join(errs...)
}

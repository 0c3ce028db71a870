// Package config provides YAML-based configuration loading for tilemerge.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for a tilemerge installation.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
}

// BoardConfig defines the game rules.
type BoardConfig struct {
	Size              int     `yaml:"size"`
	Spawn4Probability float64 `yaml:"spawn4_probability"` // 0.0-1.0
}

// AnimationConfig defines how long the terminal UI takes to present a move.
type AnimationConfig struct {
	FPS        int `yaml:"fps"`
	SlideTicks int `yaml:"slide_ticks"` // Ticks for tiles to reach their destination
	PopTicks   int `yaml:"pop_ticks"`   // Ticks for the spawned tile highlight
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Auto-generated under ~/.tilemerge when empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("config: board.size %d must be at least 2", c.Board.Size)
	}
	if c.Board.Spawn4Probability < 0 || c.Board.Spawn4Probability > 1 {
		return fmt.Errorf("config: board.spawn4_probability %v must be within [0,1]", c.Board.Spawn4Probability)
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("config: animation.fps %d must be positive", c.Animation.FPS)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 {
		return fmt.Errorf("config: animation ticks must not be negative")
	}
	return nil
}

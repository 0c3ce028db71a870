package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tilemerge.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:              4,
			Spawn4Probability: 0.1,
		},
		Animation: AnimationConfig{
			FPS:        60,
			SlideTicks: 8, // ~133ms at 60fps
			PopTicks:   6, // ~100ms at 60fps
		},
		Storage: StorageConfig{
			DBPath: "~/.tilemerge/scores.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

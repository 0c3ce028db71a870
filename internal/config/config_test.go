package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tilemerge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Board.Size)
	assert.InDelta(t, 0.1, cfg.Board.Spawn4Probability, 1e-9)
	assert.Equal(t, 30*time.Minute, cfg.Server.IdleTimeout)
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := writeConfig(t, `
board:
  size: 5
server:
  idle_timeout: 90s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Board.Size)
	assert.Equal(t, 90*time.Second, cfg.Server.IdleTimeout)
	// Untouched keys keep their defaults
	assert.Equal(t, Default().Animation, cfg.Animation)
	assert.Equal(t, Default().Storage.DBPath, cfg.Storage.DBPath)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := writeConfig(t, "board: [not, a, map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "board:\n  size: 1\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "board.size")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"size 2", func(c *Config) { c.Board.Size = 2 }, true},
		{"size 1", func(c *Config) { c.Board.Size = 1 }, false},
		{"probability 0", func(c *Config) { c.Board.Spawn4Probability = 0 }, true},
		{"probability 1", func(c *Config) { c.Board.Spawn4Probability = 1 }, true},
		{"probability above 1", func(c *Config) { c.Board.Spawn4Probability = 1.5 }, false},
		{"negative probability", func(c *Config) { c.Board.Spawn4Probability = -0.1 }, false},
		{"zero fps", func(c *Config) { c.Animation.FPS = 0 }, false},
		{"negative slide ticks", func(c *Config) { c.Animation.SlideTicks = -1 }, false},
		{"zero ticks", func(c *Config) { c.Animation.SlideTicks, c.Animation.PopTicks = 0, 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.tilemerge/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tilemerge", "scores.db"), got)

	got, err = ExpandHome("/tmp/scores.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/scores.db", got)
}

// tilemerge is a sliding-tile merge puzzle for the terminal.
//
// Usage:
//
//	tilemerge play            - Play a local game
//	tilemerge serve           - Start SSH server for remote play
//	tilemerge scores          - Show high scores for a board size
//	tilemerge sim <moves>     - Apply moves headlessly and print the result
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.tilemerge/config.yaml, ./configs/tilemerge.yaml)
//	--size <n>        - Board size
//	--seed <value>    - RNG seed for reproducible games (0 = time based)
//	--fps <rate>      - Animation frame rate
//	--db <path>       - Scores database path
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSize     int
	flagSeed     int64
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilemerge",
	Short: "tilemerge - slide and merge numbered tiles in your terminal",
	Long: `tilemerge is a 2048-style puzzle. Slide the tiles with the arrow keys;
equal tiles that collide merge into their sum.

Available commands:
  play     - Play a local game
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a move sequence without a terminal

Examples:
  tilemerge play
  tilemerge play --size 5
  tilemerge serve
  tilemerge scores --size 4
  tilemerge sim LLUR --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Animation frame rate (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}

	return cfg, cfg.Validate()
}

// logLevel parses --log-level.
func logLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return level, nil
}

// newLogger builds the stderr logger for local commands.
func newLogger(prefix string) (*log.Logger, error) {
	return newLoggerTo(os.Stderr, prefix)
}

// newLoggerTo builds a logger writing to w at the --log-level level.
func newLoggerTo(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := logLevel()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// exitOnError prints err the way every command reports failures.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

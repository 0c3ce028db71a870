package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/controller"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local game",
	Long: `Start a game in this terminal.

Controls:
  Arrows / WASD / hjkl - Slide tiles
  R                    - Restart
  + / -                - Bigger / smaller board
  ?                    - Toggle help
  Q / Ctrl+C           - Quit

Scores are saved when a game ends. The terminal belongs to the game while it
runs, so log output goes to --log-file instead of stderr.

Examples:
  tilemerge play
  tilemerge play --size 5
  tilemerge play --seed 42
  tilemerge play --pick
  tilemerge play --config ./my-tilemerge.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var (
	flagPick    bool
	flagLogFile string
)

func init() {
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the board size from a menu before playing")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.tilemerge/play.log", "File receiving log output while the game runs (empty = discard)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	exitOnError(err)

	logOut, closeLog := playLogOutput(flagLogFile)
	defer closeLog()
	logger, err := newLoggerTo(logOut, "tilemerge")
	exitOnError(err)

	width, height := terminalSize()

	if flagPick {
		size, ok, pickErr := tui.RunSizeSelector(cfg.Board.Size, width, height)
		exitOnError(pickErr)
		if !ok {
			return
		}
		cfg.Board.Size = size
	}

	e, err := engine.New(cfg.Board.Size,
		engine.WithSeed(flagSeed),
		engine.WithSpawn4Probability(cfg.Board.Spawn4Probability),
	)
	exitOnError(err)
	ctrl := controller.New(e, controller.WithLogger(logger))

	opts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithWindowSize(width, height),
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		ctrl.Subscribe(storage.NewRecorder(store, ctrl, logger))
		opts = append(opts, tui.WithHighScores(store))
	}

	runErr := tui.Run(ctrl, cfg.Animation, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLogOutput returns the log destination for a running game. Logs must
// never reach the terminal the game is drawn on, so an unusable file falls
// back to io.Discard.
func playLogOutput(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	f, err := openLogFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

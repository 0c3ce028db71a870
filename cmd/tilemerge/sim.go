package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/controller"
	"github.com/vovakirdan/tilemerge/internal/engine"
)

var flagVerbose bool

var simCmd = &cobra.Command{
	Use:   "sim <moves>",
	Short: "Apply a move sequence without a terminal UI",
	Long: `Play a sequence of moves headlessly and print the resulting board.

Moves are the letters U, D, L and R (case-insensitive); spaces and commas
are ignored. Moves after the game ends are skipped. With the same --seed
the output is always the same.

Examples:
  tilemerge sim LLUR --seed 42
  tilemerge sim "u,r,d,l" --seed 7 --verbose
  tilemerge sim RRRRDDDD --size 3`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every move")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	exitOnError(err)

	logger, err := newLogger("tilemerge-sim")
	exitOnError(err)

	dirs, err := parseMoves(args[0])
	exitOnError(err)

	e, err := engine.New(cfg.Board.Size,
		engine.WithSeed(flagSeed),
		engine.WithSpawn4Probability(cfg.Board.Spawn4Probability),
	)
	exitOnError(err)

	ctrl := controller.New(e, controller.WithLogger(logger))
	exitOnError(simulate(os.Stdout, ctrl, dirs, flagVerbose))
}

// parseMoves turns a move string like "LLUR" or "l, u" into directions.
func parseMoves(s string) ([]engine.Direction, error) {
	var dirs []engine.Direction
	for i, r := range s {
		if r == ' ' || r == ',' {
			continue
		}
		dir, err := engine.ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		dirs = append(dirs, dir)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no moves in %q", s)
	}
	return dirs, nil
}

// simulate drives ctrl through dirs, settling every move at once, and
// prints the final state.
func simulate(w io.Writer, ctrl *controller.Controller, dirs []engine.Direction, verbose bool) error {
	for i, dir := range dirs {
		outcome, err := ctrl.RequestMove(dir)
		if err != nil {
			return err
		}
		ctrl.SettlementComplete()

		if outcome == controller.OutcomeGameOver {
			fmt.Fprintf(w, "game over, skipped %d remaining moves\n\n", len(dirs)-i)
			break
		}
		if verbose {
			fmt.Fprintf(w, "move %d: %s (%s) score %d\n%s\n\n", i+1, dir, outcome, ctrl.Score(), ctrl.Board())
		}
	}

	printSnapshot(w, ctrl.Snapshot(), ctrl.Board())
	return nil
}

func printSnapshot(w io.Writer, snap engine.Snapshot, board engine.Board) {
	var sb strings.Builder
	sb.WriteString(board.String())
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "score:    %d\n", snap.Score)
	fmt.Fprintf(&sb, "moves:    %d\n", snap.Moves)
	fmt.Fprintf(&sb, "max tile: %d\n", snap.MaxTile)
	fmt.Fprintf(&sb, "status:   %s\n", snap.Status)
	io.WriteString(w, sb.String())
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores for a board size",
	Long: `Display the top scores for a board size (4x4 unless --size is given).

Examples:
  tilemerge scores
  tilemerge scores --size 5
  tilemerge scores --limit 20
  tilemerge scores --clear
  tilemerge scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the board size")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse every board size in a scoreboard view")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	exitOnError(err)
	variant := storage.Variant(cfg.Board.Size)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", variant)
		return
	}

	if flagInteractive {
		width, height := terminalSize()
		if err := tui.RunScoreboard(store, cfg.Board.Size, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(variant, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.Stats(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	renderScores(os.Stdout, variant, scores, stats)
}

// renderScores prints the leaderboard table and summary.
func renderScores(w io.Writer, variant string, scores []storage.ScoreEntry, stats *storage.VariantStats) {
	fmt.Fprintf(w, "High Scores - %s\n\n", variant)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tilemerge play' to set the first high score!")
		return
	}

	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Max", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, 0, len(scores))
	for i, entry := range scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(entry.Score),
			strconv.Itoa(entry.MaxTile),
			strconv.Itoa(entry.Moves),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(styles),
	)

	fmt.Fprintln(w, t.View())
	fmt.Fprintln(w)

	if stats != nil {
		fmt.Fprintf(w, "Best: %d  Games: %d  Average: %.0f  Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestTile)
	}
}

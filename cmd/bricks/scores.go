package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/registry"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show high scores for a layout",
	Long: `Display the best rounds for the specified layout (default: bricks).

Examples:
  bricks scores
  bricks scores bricks_grid --limit 20
  bricks scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds for the layout")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'bricks list' to see available layouts.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared rounds for %s.\n", game.Title())
		return
	}

	if err := printScores(cmd.OutOrStdout(), store, gameID, game.Title(), flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the best rounds and the totals for one game.
func printScores(w io.Writer, store *storage.Store, gameID, title string, limit int) error {
	rounds, err := store.TopRounds(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'bricks play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Result", "Blocks", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "------", "------", "----")
	for i, r := range rounds {
		fmt.Fprintf(w, "  %-4d  %-8d  %-6s  %-6d  %s\n",
			i+1, r.Score, r.Outcome, r.BlocksLeft, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Played: %d  Won: %d\n", stats.BestScore, stats.Played, stats.Won)
	return nil
}

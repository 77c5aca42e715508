// bricks is a colour-matching brick breaker for the terminal.
//
// Usage:
//
//	bricks list              - List available layouts
//	bricks play [layout]     - Play a round (default: bricks)
//	bricks menu              - Pick a layout interactively
//	bricks serve             - Start SSH server for remote play
//	bricks scores [layout]   - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.arcade/bricks.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - a colour-matching brick breaker for your terminal",
	Long: `Bricks is a terminal brick breaker. Balls take the colour of the
blocks they break and can only break blocks of a different colour.

Available commands:
  list     - Show all available layouts
  play     - Play a round directly
  menu     - Interactive layout picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  bricks play
  bricks play bricks_grid --difficulty hard
  bricks serve --ssh :2222
  bricks scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/bricks.db", "Path to rounds database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

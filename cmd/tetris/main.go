// tetris is a terminal Tetris with a shared HTTP leaderboard.
//
// Usage:
//
//	tetris play       - Play locally
//	tetris serve      - Start the score API (and optionally SSH play)
//	tetris scores     - Show the top 10 scores
//	tetris config     - Print the default rules YAML
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--store <kind>    - Score store: file or sqlite (default: file)
//	--scores <path>   - Score store path (default: ~/.tetris/scores.json or scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagStore      string
	flagScoresPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, with a shared leaderboard",
	Long: `Tetris for the terminal plus a small JSON score service.

Available commands:
  play     - Play a game locally
  serve    - Start the score API and, with --ssh, remote play
  scores   - View the top scores
  config   - Print the default rules file

Examples:
  tetris play
  tetris play --server http://localhost:3000 --name ada
  tetris serve --http :3000 --ssh :23234
  tetris scores --store sqlite`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeFile, "Score store: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "", "Path to the score store (default depends on --store)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/scores"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresServer string
	flagPlain        bool
	flagClear        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top scores",
	Long: `Display the top 10 scores from the local store or a remote server.

On a terminal the scores open in an interactive table; otherwise, or with
--plain, they are printed as text.

Examples:
  tetris scores
  tetris scores --plain
  tetris scores --server http://localhost:3000
  tetris scores --store sqlite --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresServer, "server", "", "Score API base URL (default: local store)")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score (sqlite store only)")
}

func runScores(_ *cobra.Command, _ []string) {
	var backend scores.Backend
	var store scores.Store

	if flagScoresServer != "" {
		backend = scores.NewClient(flagScoresServer, nil)
	} else {
		var err error
		store, err = openStore(nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		backend = scores.NewService(store)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if flagClear {
		db, ok := store.(*storage.Store)
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: --clear needs the local sqlite store")
			return
		}
		if err := db.Clear(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(backend, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	records, err := backend.Leaderboard(ctx, scores.DefaultLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "----", "-----", "----")

	for i, r := range records {
		dateStr := time.UnixMilli(r.At).Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n", i+1, r.Name, r.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	fmt.Printf("Best: %d\n", records[0].Score)

	// Show totals when the store can aggregate
	if db, ok := store.(*storage.Store); ok {
		if st, statsErr := db.Stats(ctx); statsErr == nil {
			fmt.Printf("Games: %d  Average: %.0f\n", st.Count, st.AvgScore)
		}
	}
}

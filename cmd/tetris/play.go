package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/scores"
)

var (
	flagConfig    string
	flagName      string
	flagServerURL string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris",
	Long: `Start a local game of Tetris.

Controls:
  ←/→ or h/l     - Move
  ↓ or j         - Soft drop
  Space          - Hard drop
  ↑/x and z      - Rotate clockwise / counter-clockwise
  C/Tab          - Hold
  P/Esc          - Pause
  R              - Restart
  Q/Ctrl+C       - Quit

When the game ends you are asked for a name and the score is saved to the
local store, or to --server when given.

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml
  tetris play --server http://localhost:3000 --name ada`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name pre-filled in the score prompt")
	playCmd.Flags().StringVar(&flagServerURL, "server", "", "Score API base URL (default: local store)")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	tetris.SetConfigPath(flagConfig)

	game, err := registry.Create(tetris.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{PlayerName: playerName()}

	var store scores.Store
	if flagServerURL != "" {
		opts.Backend = scores.NewClient(flagServerURL, nil)
	} else {
		var storeErr error
		store, storeErr = openStore(nil)
		if storeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", storeErr)
			// Continue without storage - game still works
			store = nil
		} else {
			opts.Backend = scores.NewService(store)
		}
	}

	runErr := tui.Run(game, cfg, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName returns --name, falling back to the login name.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

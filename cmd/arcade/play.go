package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitarcade/internal/registry"
)

var (
	flagPlatform string
	flagTicks    uint64
	flagRecord   string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space/Enter  - Action
  Esc/Q        - Quit
  F12 / Ctrl+S - Screenshot (window / terminal)

Platforms:
  window   - Desktop window (default from config)
  tui      - Terminal, drawn with half-block characters
  headless - No output; runs --ticks ticks with no keys and prints the final state

Examples:
  arcade play snake
  arcade play lightsout --platform tui
  arcade play snake --platform headless --ticks 600
  arcade play snake --record ~/snake-run.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlatform, "platform", "", "window, tui or headless (default from config)")
	playCmd.Flags().Uint64Var(&flagTicks, "ticks", 600, "Tick limit for the headless platform")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay file when the session ends")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	platform := flagPlatform
	if platform == "" {
		platform = cfg.Platform
	}

	record := flagRecord
	if record != "" {
		abs, err := filepath.Abs(record)
		if err == nil {
			record = abs
		}
	}

	store := openStore()
	runErr := session{
		gameID:   gameID,
		platform: platform,
		ticks:    flagTicks,
		record:   record,
		store:    store,
	}.run()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "game", gameID, "error", runErr)
		os.Exit(1)
	}
}

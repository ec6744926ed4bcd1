package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitarcade/internal/config"
	"github.com/vovakirdan/bitarcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
Games run in the terminal.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// Menu loop
	for {
		width, height := terminalSize()

		menuResult, err := tui.RunMenu(store, width)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.TickRate, width, height)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		err = session{
			gameID:   menuResult.GameID,
			platform: config.PlatformTUI,
			store:    store,
		}.run()
		if err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
		}

		// Loop back to menu
	}
}

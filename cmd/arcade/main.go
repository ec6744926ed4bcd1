// arcade hosts bit-packed games: every game keeps its whole state in one
// uint64 and draws with colored rectangles.
//
// Usage:
//
//	arcade list                  - List available games
//	arcade play <game>           - Play a game in a window or the terminal
//	arcade menu                  - Start menu to pick games interactively
//	arcade scores <game>         - Show high scores for a game
//	arcade replay <file>         - Re-simulate a recorded session
//	arcade replays [game]        - List recorded sessions
//	arcade layout <game>         - Print a game's state bit layout
//	arcade inspect <game> <hex>  - Decode a packed state
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate
//	--config <path>      - Use a specific arcade.yaml
//	--db <path>          - Override the database path
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitarcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/bitarcade/internal/games/lightsout"
	_ "github.com/vovakirdan/bitarcade/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Bit Arcade - tiny games with 64 bits of state",
	Long: `Bit Arcade runs games whose entire state is a single 64-bit integer.
Each tick the game maps the previous state and the held keys to the next
state and a list of rectangles, which are rasterized and shown in a window
or in the terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores
  replay   - Verify a recorded session
  replays  - List recorded sessions
  layout   - Show a game's state bit layout
  inspect  - Decode a packed state

Examples:
  arcade list
  arcade play snake
  arcade play lightsout --platform tui
  arcade play snake --record run.yaml
  arcade replay run.yaml
  arcade inspect snake 0x00000000003a0024`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arcade.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(inspectCmd)
}

// setup configures logging and loads the configuration, applying flag overrides.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "arcade",
		Level:           level,
	})

	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS != 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Debug("config loaded", "tick_rate", cfg.TickRate, "platform", cfg.Platform, "clip", cfg.Clip, "db", cfg.DBPath)
	return nil
}

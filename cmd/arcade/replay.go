package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitarcade/internal/engine"
	"github.com/vovakirdan/bitarcade/internal/platform/screenshot"
	"github.com/vovakirdan/bitarcade/internal/registry"
	"github.com/vovakirdan/bitarcade/internal/replay"
)

var flagReplayPNG string

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session and verify its final state",
	Long: `Replays the key stream of a recorded session from the game's start
state and checks that it ends in exactly the recorded state.

Examples:
  arcade replay run.yaml
  arcade replay run.yaml --png last.png`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayPNG, "png", "", "Write the final frame to this PNG file")
}

func runReplay(_ *cobra.Command, args []string) {
	trace, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(trace.Game)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e, err := replay.Play(game, trace,
		engine.WithConfig(cfg.Runtime()),
		engine.WithLogger(logger.WithPrefix(trace.Game)),
	)
	switch {
	case errors.Is(err, replay.ErrMismatch):
		fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", args[0], err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, game.Layout().Describe(e.State()))
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK %s: %s, %d ticks in %d runs, final state %#016x\n",
		args[0], game.Title(), trace.Ticks, len(trace.Runs), e.State())

	if flagReplayPNG != "" {
		file, err := os.Create(flagReplayPNG)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		if err := screenshot.Encode(file, e.Frame(), cfg.Scale); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

var replaysCmd = &cobra.Command{
	Use:   "replays [game]",
	Short: "List recorded sessions",
	Args:  cobra.MaximumNArgs(1),
	Run:   runReplays,
}

func runReplays(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
	}

	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Replays(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No replays recorded yet. Use 'arcade play <game> --record <file>'.")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-18s  %-16s  %s\n", "Game", "Ticks", "Final state", "Date", "Path")
	for _, r := range entries {
		fmt.Printf("  %-10s  %-8d  %#016x  %-16s  %s\n",
			r.GameID, r.Ticks, r.FinalState, r.CreatedAt.Format("2006-01-02 15:04"), r.Path)
	}
}

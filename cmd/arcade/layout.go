package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bitarcade/internal/core"
	"github.com/vovakirdan/bitarcade/internal/registry"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <game>",
	Short: "Print a game's state bit layout",
	Long: `Lists the bit fields of a game's packed state and draws a map of the
64 bits, one character per bit from bit 63 down to bit 0.

Examples:
  arcade layout snake`,
	Args: cobra.ExactArgs(1),
	Run:  runLayout,
}

var (
	flagInspectKeys string
	flagInspectTick uint64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <game> <state>",
	Short: "Decode a packed state",
	Long: `Decodes a packed state (hex with 0x, or decimal) field by field.
With --keys the state is stepped once and the next state is decoded too.

Examples:
  arcade inspect snake 0x00000000003a0024
  arcade inspect snake 0x00000000003a0024 --keys Down --tick 15`,
	Args: cobra.ExactArgs(2),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectKeys, "keys", "", "Held keys for one step, e.g. Left+Space")
	inspectCmd.Flags().Uint64Var(&flagInspectTick, "tick", 0, "Tick counter for the step")
}

func mustCreate(gameID string) registry.Game {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	return game
}

func runLayout(_ *cobra.Command, args []string) {
	game := mustCreate(args[0])
	layout := game.Layout()

	fmt.Printf("%s state layout (%d of %d bits)\n\n", game.Title(), layout.Bits(), core.StateBits)
	fmt.Printf("  %-3s  %-10s  %-9s  %-5s  %s\n", "Key", "Field", "Bits", "Width", "Max")
	for i, f := range layout {
		fmt.Printf("  %-3s  %-10s  %-9s  %-5d  %d\n", fieldKey(i), f.Name, fmt.Sprintf("[%d,%d)", f.Offset, f.End()), f.Width, f.Max())
	}

	fmt.Println()
	fmt.Println("  63" + strings.Repeat(" ", 60) + "0")
	fmt.Println("  " + bitMap(layout))
}

// fieldKey is the one-character label of the i-th field in the bit map.
func fieldKey(i int) string {
	const keys = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	return string(keys[i%len(keys)])
}

// bitMap draws bit 63 first; unused bits are dots.
func bitMap(layout core.Layout) string {
	var sb strings.Builder
	for bit := core.StateBits - 1; bit >= 0; bit-- {
		ch := "."
		for i, f := range layout {
			if f.Mask()&(1<<uint(bit)) != 0 {
				ch = fieldKey(i)
				break
			}
		}
		sb.WriteString(ch)
	}
	return sb.String()
}

func runInspect(_ *cobra.Command, args []string) {
	game := mustCreate(args[0])

	packed, err := strconv.ParseUint(args[1], 0, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid state %q: %v\n", args[1], err)
		os.Exit(1)
	}

	layout := game.Layout()
	fmt.Printf("%s state %#016x\n\n", game.Title(), packed)
	fmt.Print(layout.Describe(packed))
	if stray := packed &^ layout.Mask(); stray != 0 {
		fmt.Printf("\nbits outside any field: %#016x\n", stray)
	}

	if !cmdFlagSet(inspectCmd, "keys") {
		return
	}
	keys, err := core.ParseKeySet(flagInspectKeys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := core.NewDrawList()
	next := game.Step(packed, core.NewInput(flagInspectTick, keys), out)
	fmt.Printf("\nafter tick %d with %v: %#016x (%d draw commands)\n\n", flagInspectTick, keys, next, out.Len())
	fmt.Print(layout.Describe(next))
}

func cmdFlagSet(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

package lightsout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bitarcade/internal/core"
)

// Bit layout of the packed state.
var (
	fieldBoard     = core.NewField("board", 0, Cells)
	fieldCursor    = core.NewField("cursor", 25, 5)
	fieldLatch     = core.NewField("latch", 30, 7)
	fieldMoves     = core.NewField("moves", 37, 10)
	fieldWon       = core.NewField("won", 47, 1)
	fieldCelebrate = core.NewField("celebrate", 48, 6)

	layout = core.Layout{fieldBoard, fieldCursor, fieldLatch, fieldMoves, fieldWon, fieldCelebrate}
)

// State is the decoded form of the packed state.
type State struct {
	Board     uint32      // Bit i is lit when light i is on; i = row*Side + col
	Cursor    uint8       // Selected light index
	Latch     core.KeySet // Keys held on the previous tick
	Moves     uint16
	Won       bool
	Celebrate uint8 // Ticks spent on the win screen
}

// Encode packs a state into its 64-bit form.
func Encode(s State) uint64 {
	var packed uint64
	packed = fieldBoard.Put(packed, uint64(s.Board))
	packed = fieldCursor.Put(packed, uint64(s.Cursor))
	packed = fieldLatch.Put(packed, uint64(s.Latch))
	packed = fieldMoves.Put(packed, uint64(s.Moves))
	packed = fieldWon.PutFlag(packed, s.Won)
	return fieldCelebrate.Put(packed, uint64(s.Celebrate))
}

// Decode unpacks a 64-bit state.
func Decode(packed uint64) State {
	return State{
		Board:     uint32(fieldBoard.Get(packed)),
		Cursor:    uint8(fieldCursor.Get(packed)),
		Latch:     core.KeySet(fieldLatch.Get(packed)),
		Moves:     uint16(fieldMoves.Get(packed)),
		Won:       fieldWon.Flag(packed),
		Celebrate: uint8(fieldCelebrate.Get(packed)),
	}
}

// Lit reports whether the light at (col, row) is on.
func (s State) Lit(col, row int) bool {
	return s.Board&(1<<(row*Side+col)) != 0
}

// String draws the board as rows of '#' and '.', marking the cursor with brackets.
func (s State) String() string {
	var sb strings.Builder
	for row := 0; row < Side; row++ {
		for col := 0; col < Side; col++ {
			ch := "."
			if s.Lit(col, row) {
				ch = "#"
			}
			if int(s.Cursor) == row*Side+col {
				ch = "[" + ch + "]"
			} else {
				ch = " " + ch + " "
			}
			sb.WriteString(ch)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "moves=%d won=%v latch=%v", s.Moves, s.Won, s.Latch)
	return sb.String()
}

// toggle flips the light at index i and its orthogonal neighbours.
func toggle(board uint32, i int) uint32 {
	col, row := i%Side, i/Side
	board ^= 1 << i
	if col > 0 {
		board ^= 1 << (i - 1)
	}
	if col < Side-1 {
		board ^= 1 << (i + 1)
	}
	if row > 0 {
		board ^= 1 << (i - Side)
	}
	if row < Side-1 {
		board ^= 1 << (i + Side)
	}
	return board
}

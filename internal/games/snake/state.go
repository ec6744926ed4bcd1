package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bitarcade/internal/core"
)

// TailLen is the number of trailing segments the packed state can remember.
const TailLen = 19

// Bit layout of the packed state. Bit 16 is left unused.
var (
	fieldPos   = core.NewField("pos", 0, 8)
	fieldDir   = core.NewField("dir", 8, 2)
	fieldScore = core.NewField("score", 10, 6)
	fieldFruit = core.NewField("fruit", 17, 8)
	fieldTail  = tailFields()
	fieldDead  = core.NewField("dead", 63, 1)

	layout = buildLayout()
)

func tailFields() [TailLen]core.Field {
	var fs [TailLen]core.Field
	for i := range fs {
		fs[i] = core.NewField(fmt.Sprintf("tail%d", i), 25+uint(i)*2, 2)
	}
	return fs
}

func buildLayout() core.Layout {
	l := core.Layout{fieldPos, fieldDir, fieldScore, fieldFruit}
	l = append(l, fieldTail[:]...)
	return append(l, fieldDead)
}

// Direction is a 2-bit heading. Opposite directions differ by 2.
type Direction uint8

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y uint8
}

// index packs a cell into its 8-bit field value.
func (c Cell) index() uint64 {
	return (uint64(c.Y)*Cells + uint64(c.X)) & 0xFF
}

func cellAt(index uint64) Cell {
	return Cell{X: uint8(index % Cells), Y: uint8(index / Cells)}
}

// step returns the neighbouring cell in direction d, wrapping at the edges.
func (c Cell) step(d Direction) Cell {
	switch d {
	case DirRight:
		c.X = (c.X + 1) % Cells
	case DirUp:
		c.Y = (c.Y + Cells - 1) % Cells
	case DirLeft:
		c.X = (c.X + Cells - 1) % Cells
	case DirDown:
		c.Y = (c.Y + 1) % Cells
	}
	return c
}

// State is the decoded form of the packed state. It only lives for the
// duration of one Step call.
type State struct {
	Pos   Cell
	Dir   Direction
	Score uint8
	Fruit Cell
	// Tail holds, for each segment behind the head, the direction to walk
	// from that segment to the next one.
	Tail [TailLen]Direction
	Dead bool
}

// Encode packs a state into its 64-bit form.
func Encode(s State) uint64 {
	var packed uint64
	packed = fieldPos.Put(packed, s.Pos.index())
	packed = fieldDir.Put(packed, uint64(s.Dir))
	packed = fieldScore.Put(packed, uint64(s.Score))
	packed = fieldFruit.Put(packed, s.Fruit.index())
	for i, f := range fieldTail {
		packed = f.Put(packed, uint64(s.Tail[i]))
	}
	return fieldDead.PutFlag(packed, s.Dead)
}

// Decode unpacks a 64-bit state. Every read is masked, so any input
// decodes to some well-typed value.
func Decode(packed uint64) State {
	s := State{
		Pos:   cellAt(fieldPos.Get(packed)),
		Dir:   Direction(fieldDir.Get(packed)),
		Score: uint8(fieldScore.Get(packed)),
		Fruit: cellAt(fieldFruit.Get(packed)),
		Dead:  fieldDead.Flag(packed),
	}
	for i, f := range fieldTail {
		s.Tail[i] = Direction(f.Get(packed))
	}
	return s
}

// String renders a one-line summary for debugging and the inspect command.
func (s State) String() string {
	var tail strings.Builder
	for _, d := range s.Tail {
		tail.WriteByte("RULD"[d%4])
	}
	return fmt.Sprintf("pos=(%d,%d) dir=%s score=%d fruit=(%d,%d) dead=%v tail=%s",
		s.Pos.X, s.Pos.Y, s.Dir, s.Score, s.Fruit.X, s.Fruit.Y, s.Dead, tail.String())
}

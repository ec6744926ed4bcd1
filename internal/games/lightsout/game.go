// Package lightsout is a 5x5 Lights Out puzzle packed into a uint64.
// Each press toggles a light and its neighbours; turning every light off wins.
package lightsout

import (
	"github.com/vovakirdan/bitarcade/internal/core"
	"github.com/vovakirdan/bitarcade/internal/registry"
)

const (
	Side     = 5
	Cells    = Side * Side
	CellSize = 48
	Gap      = 4
	HUDH     = 32

	Width  = Side * CellSize
	Height = Side*CellSize + HUDH

	CelebrateTicks = 60   // Length of the win screen before the puzzle restarts
	MaxMoves       = 1023 // Moves saturate at the 10-bit field's limit
)

// startPresses are the cells pressed on a dark board to build the puzzle,
// so it is always solvable by pressing them again.
var startPresses = []int{6, 12, 18, 4}

// latchKeys are the keys whose previous state is remembered.
var latchKeys = core.Keys(core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeySpace, core.KeyEnter)

var (
	colorOn     = core.RGB(255, 200, 40)
	colorOff    = core.RGB(30, 30, 60)
	colorCursor = core.RGB(255, 255, 255)
	colorHUD    = core.RGB(60, 60, 60)
	colorMoves  = core.RGB(200, 80, 80)
	colorWin    = core.RGB(40, 200, 120)
)

// Game implements registry.Game for Lights Out.
type Game struct{}

// New creates a Lights Out game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("lightsout", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "lightsout"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lights Out"
}

// Size returns the frame dimensions.
func (g *Game) Size() (int, int) {
	return Width, Height
}

// Layout returns the packed state schema.
func (g *Game) Layout() core.Layout {
	return layout
}

// Init returns the start puzzle with the cursor in the centre.
func (g *Game) Init() uint64 {
	var board uint32
	for _, i := range startPresses {
		board = toggle(board, i)
	}
	return Encode(State{Board: board, Cursor: Cells / 2})
}

// Step applies one tick of input. A key acts once when it goes down;
// holding it does nothing further until it is released.
func (g *Game) Step(prev uint64, in core.Input, out *core.DrawList) uint64 {
	s := Decode(prev)
	pressed := func(k core.Key) bool {
		return in.IsKeyDown(k) && !s.Latch.Has(k)
	}

	if s.Won {
		s.Celebrate++
		if s.Celebrate >= CelebrateTicks {
			return g.Init()
		}
	} else {
		col, row := int(s.Cursor)%Side, int(s.Cursor)/Side
		switch {
		case pressed(core.KeyUp) && row > 0:
			row--
		case pressed(core.KeyDown) && row < Side-1:
			row++
		case pressed(core.KeyLeft) && col > 0:
			col--
		case pressed(core.KeyRight) && col < Side-1:
			col++
		}
		s.Cursor = uint8(row*Side + col)

		if pressed(core.KeySpace) || pressed(core.KeyEnter) {
			s.Board = toggle(s.Board, int(s.Cursor))
			if s.Moves < MaxMoves {
				s.Moves++
			}
			s.Won = s.Board == 0
		}
	}
	s.Latch = in.Keys() & latchKeys

	g.draw(s, in.Tick(), out)
	return Encode(s)
}

func (g *Game) draw(s State, tick uint64, out *core.DrawList) {
	hud := colorHUD
	if s.Won && tick%16 < 8 {
		hud = colorWin
	}
	out.Rect(0, 0, Width, HUDH, hud)
	out.Rect(0, 0, min(uint(s.Moves)*4, Width), HUDH/4, colorMoves)

	for row := 0; row < Side; row++ {
		for col := 0; col < Side; col++ {
			c := colorOff
			if s.Lit(col, row) {
				c = colorOn
			}
			x, y := col*CellSize, row*CellSize+HUDH
			out.Rect(x+Gap/2, y+Gap/2, CellSize-Gap, CellSize-Gap, c)
		}
	}

	if s.Won {
		return
	}
	// Cursor outline, drawn over the cells
	x, y := int(s.Cursor)%Side*CellSize, int(s.Cursor)/Side*CellSize+HUDH
	out.Rect(x, y, CellSize, Gap/2, colorCursor)
	out.Rect(x, y+CellSize-Gap/2, CellSize, Gap/2, colorCursor)
	out.Rect(x, y, Gap/2, CellSize, colorCursor)
	out.Rect(x+CellSize-Gap/2, y, Gap/2, CellSize, colorCursor)
}

// Outcome reports a solved puzzle. Fewer moves score higher.
func (g *Game) Outcome(prev, next uint64) (int, bool) {
	before := Decode(prev)
	after := Decode(next)
	if !before.Won && after.Won {
		return max(1, 100-int(after.Moves)), true
	}
	return 0, false
}

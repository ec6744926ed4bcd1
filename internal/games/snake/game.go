// Package snake is an 8x8 wrap-around Snake whose entire state fits in a
// single uint64. See state.go for the bit layout.
package snake

import (
	"github.com/vovakirdan/bitarcade/internal/core"
	"github.com/vovakirdan/bitarcade/internal/registry"
)

const (
	Cells     = 8  // Grid width and height in cells
	CellSize  = 32 // Cell edge in pixels
	ScoreH    = 64 // Height of the score strip above the grid
	MoveEvery = 15 // The snake moves on ticks divisible by this
	MaxScore  = 63 // Largest score the 6-bit field holds; also the death animation length
	BarUnit   = 5  // Progress bar pixels per point

	Width  = Cells * CellSize
	Height = Cells*CellSize + ScoreH
)

var (
	colorFruit    = core.RGB(0, 255, 0)
	colorStrip    = core.RGB(100, 100, 100)
	colorProgress = core.RGB(0, 255, 0)
)

// Game implements registry.Game for Snake. It holds no state of its own.
type Game struct{}

// New creates a Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Size returns the frame dimensions.
func (g *Game) Size() (int, int) {
	return Width, Height
}

// Layout returns the packed state schema.
func (g *Game) Layout() core.Layout {
	return layout
}

// Init returns the start state: head at (4,4) facing right, fruit at (5,3).
func (g *Game) Init() uint64 {
	return Encode(State{
		Pos:   Cell{X: 4, Y: 4},
		Dir:   DirRight,
		Fruit: Cell{X: 5, Y: 3},
	})
}

// Step advances the snake by one tick.
func (g *Game) Step(prev uint64, in core.Input, out *core.DrawList) uint64 {
	s := Decode(prev)
	wasDead := s.Dead
	tick := in.Tick()

	if tick%MoveEvery == 0 && !s.Dead {
		s.Pos = s.Pos.step(s.Dir)

		if s.Pos == s.Fruit {
			x := mix(tick)
			y := mix(x)
			s.Fruit = Cell{X: uint8(x % Cells), Y: uint8(y % Cells)}
			if s.Score < MaxScore {
				s.Score++
			}
		}

		copy(s.Tail[1:], s.Tail[:TailLen-1])
		s.Tail[0] = s.Dir.Opposite()
	}

	// Steering is sampled every tick, not just on move ticks
	newDir := s.Dir
	switch {
	case in.IsKeyDown(core.KeyRight):
		newDir = DirRight
	case in.IsKeyDown(core.KeyLeft):
		newDir = DirLeft
	case in.IsKeyDown(core.KeyUp):
		newDir = DirUp
	case in.IsKeyDown(core.KeyDown):
		newDir = DirDown
	}
	if newDir != s.Dir.Opposite() {
		s.Dir = newDir
	}

	if !s.Dead {
		g.drawBody(&s, out)
	}

	out.Rect(cellX(s.Fruit), cellY(s.Fruit), CellSize, CellSize, colorFruit)

	if s.Dead {
		var blue uint8
		if tick%16 < 8 {
			blue = 255
		}
		out.Rect(0, 0, Width, ScoreH, core.RGB(0, 0, blue))

		// The score counts death animation ticks up to the restart.
		if wasDead {
			s.Score++
			if s.Score >= MaxScore {
				return g.Init()
			}
		}
	} else {
		out.Rect(0, 0, Width, ScoreH, colorStrip)
		out.Rect(0, 0, uint(s.Score)*BarUnit, ScoreH, colorProgress)
	}

	return Encode(s)
}

// drawBody walks score+1 segments from the head along the tail history.
// Reaching the head's cell again kills the snake.
func (g *Game) drawBody(s *State, out *core.DrawList) {
	segments := int(s.Score) + 1
	seg := s.Pos
	for i := 0; i < segments; i++ {
		if i > 0 && seg == s.Pos {
			s.Dead = true
			s.Score = 0
		}

		shade := uint8(i) * 10
		out.Rect(cellX(seg), cellY(seg), CellSize, CellSize, core.RGB(0, shade, 255-shade))

		if i >= TailLen {
			break
		}
		seg = seg.step(s.Tail[i])
	}
}

// Outcome reports the score when a living snake dies.
func (g *Game) Outcome(prev, next uint64) (int, bool) {
	before := Decode(prev)
	after := Decode(next)
	if !before.Dead && after.Dead {
		return int(before.Score), true
	}
	return 0, false
}

func cellX(c Cell) int {
	return int(c.X) * CellSize
}

func cellY(c Cell) int {
	return int(c.Y)*CellSize + ScoreH
}

// mix is a fixed integer mixing function used to place fruit.
// It is deterministic but makes no claim of uniformity.
func mix(seed uint64) uint64 {
	x := ((seed*182099923 ^ seed) + 8301719803) ^ seed
	return x ^ seed ^ x/21273
}

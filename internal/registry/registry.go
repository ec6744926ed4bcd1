// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bitarcade/internal/core"
)

// Game is the contract every hosted game implements.
// The whole mutable state of a game lives in the uint64 passed through Step;
// implementations keep no other state between calls.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	// Used for CLI commands, replays and score storage.
	ID() string

	// Title returns a human-readable name for display and the window title.
	Title() string

	// Size returns the frame dimensions in pixels.
	Size() (width, height int)

	// Layout returns the bit-field schema of the packed state.
	Layout() core.Layout

	// Init returns the packed start state. It is a fixed constant.
	Init() uint64

	// Step advances the game by one tick. It must be a pure function of
	// prev and in; drawing commands for this tick are appended to out.
	Step(prev uint64, in core.Input, out *core.DrawList) uint64
}

// Scorer is implemented by games that finish rounds with a score.
type Scorer interface {
	// Outcome inspects one transition and reports whether a round ended
	// on it, together with the final score of that round.
	Outcome(prev, next uint64) (score int, over bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Width  int
	Height int
	Bits   uint
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if the ID is taken or the game's layout is malformed, so schema
// mistakes surface at startup rather than as corrupted state.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	layout := g.Layout()
	if err := layout.Validate(); err != nil {
		panic(fmt.Sprintf("registry: game %q: %v", id, err))
	}

	factories[id] = f

	w, h := g.Size()
	infos[id] = GameInfo{
		ID:     id,
		Title:  g.Title(),
		Width:  w,
		Height: h,
		Bits:   layout.Bits(),
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Package replay records the held keys of a session and re-simulates them.
// Because Step is a pure function of the previous state and the input, the
// key stream alone reproduces a session; the final packed state is stored
// alongside it so Play can verify the result bit for bit.
package replay

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bitarcade/internal/core"
	"github.com/vovakirdan/bitarcade/internal/engine"
	"github.com/vovakirdan/bitarcade/internal/registry"
)

// FormatVersion is written to every trace file.
const FormatVersion = 1

// ErrMismatch is returned by Play when re-simulation ends in a different state.
var ErrMismatch = errors.New("replay: final state mismatch")

// Run is a stretch of consecutive ticks with the same held keys.
type Run struct {
	Keys  core.KeySet
	Ticks uint64
}

// runYAML is the on-disk form of a Run.
type runYAML struct {
	Keys  string `yaml:"keys"`
	Ticks uint64 `yaml:"ticks"`
}

// MarshalYAML writes keys by name.
func (r Run) MarshalYAML() (any, error) {
	return runYAML{Keys: r.Keys.String(), Ticks: r.Ticks}, nil
}

// UnmarshalYAML reads keys by name.
func (r *Run) UnmarshalYAML(node *yaml.Node) error {
	var raw runYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}
	keys, err := core.ParseKeySet(raw.Keys)
	if err != nil {
		return fmt.Errorf("replay: line %d: %w", node.Line, err)
	}
	r.Keys = keys
	r.Ticks = raw.Ticks
	return nil
}

// State is a packed state that serializes as fixed-width hex.
type State uint64

// MarshalYAML writes the state as 0x-prefixed hex.
func (s State) MarshalYAML() (any, error) {
	return fmt.Sprintf("%#016x", uint64(s)), nil
}

// UnmarshalYAML accepts hex or decimal.
func (s *State) UnmarshalYAML(node *yaml.Node) error {
	v, err := strconv.ParseUint(node.Value, 0, 64)
	if err != nil {
		return fmt.Errorf("replay: line %d: bad state %q: %w", node.Line, node.Value, err)
	}
	*s = State(v)
	return nil
}

// Trace is a recorded session.
type Trace struct {
	Version    int    `yaml:"version"`
	Game       string `yaml:"game"`
	Ticks      uint64 `yaml:"ticks"`
	FinalState State  `yaml:"final_state"`
	Runs       []Run  `yaml:"runs"`
}

// Script expands the runs into one KeySet per tick.
func (t *Trace) Script() []core.KeySet {
	script := make([]core.KeySet, 0, t.Ticks)
	for _, r := range t.Runs {
		for range r.Ticks {
			script = append(script, r.Keys)
		}
	}
	return script
}

// Validate checks that the runs add up to the tick count.
func (t *Trace) Validate() error {
	if t.Version != FormatVersion {
		return fmt.Errorf("replay: unsupported version %d", t.Version)
	}
	if t.Game == "" {
		return errors.New("replay: missing game id")
	}
	var total uint64
	for _, r := range t.Runs {
		total += r.Ticks
	}
	if total != t.Ticks {
		return fmt.Errorf("replay: runs cover %d ticks, header says %d", total, t.Ticks)
	}
	return nil
}

// Recorder collects key runs. It implements engine.Recorder.
type Recorder struct {
	game  string
	runs  []Run
	ticks uint64
}

var _ engine.Recorder = (*Recorder)(nil)

// NewRecorder creates an empty recorder for the given game.
func NewRecorder(gameID string) *Recorder {
	return &Recorder{game: gameID}
}

// Record appends one tick. Ticks must arrive in order starting at 0.
func (r *Recorder) Record(tick uint64, keys core.KeySet) {
	if tick != r.ticks {
		panic(fmt.Sprintf("replay: recorded tick %d, expected %d", tick, r.ticks))
	}
	r.ticks++
	if n := len(r.runs); n > 0 && r.runs[n-1].Keys == keys {
		r.runs[n-1].Ticks++
		return
	}
	r.runs = append(r.runs, Run{Keys: keys, Ticks: 1})
}

// Ticks returns the number of recorded ticks.
func (r *Recorder) Ticks() uint64 {
	return r.ticks
}

// Trace snapshots the recording with the state reached after its last tick.
func (r *Recorder) Trace(finalState uint64) *Trace {
	runs := make([]Run, len(r.runs))
	copy(runs, r.runs)
	return &Trace{
		Version:    FormatVersion,
		Game:       r.game,
		Ticks:      r.ticks,
		FinalState: State(finalState),
		Runs:       runs,
	}
}

// Save writes a trace as YAML.
func Save(path string, t *Trace) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load reads and validates a trace file.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	var t Trace
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("replay: parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Play re-simulates a trace from the game's start state and returns the
// engine positioned after the last tick. The error wraps ErrMismatch when
// the reached state differs from the recorded one.
func Play(game registry.Game, t *Trace, opts ...engine.Option) (*engine.Engine, error) {
	if game.ID() != t.Game {
		return nil, fmt.Errorf("replay: trace is for %q, not %q", t.Game, game.ID())
	}

	e := engine.New(game, opts...)
	for _, r := range t.Runs {
		for range r.Ticks {
			e.Advance(r.Keys)
		}
	}

	if got := e.State(); got != uint64(t.FinalState) {
		return e, fmt.Errorf("%w: got %#016x, recorded %#016x", ErrMismatch, got, uint64(t.FinalState))
	}
	return e, nil
}

package core

import (
	"fmt"
	"strings"
)

// Key is a logical key, abstracted from physical keyboards.
// Platforms translate their own key codes into this set.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape // Quit request, checked by the engine before each tick
	KeySpace
	KeyEnter

	keyCount
)

// AllKeys lists every logical key in declaration order.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// KeySet is a bitmask of held keys. The zero value means nothing is held.
type KeySet uint16

// Keys builds a set from individual keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns the set with k held.
func (s KeySet) With(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

// Without returns the set with k released.
func (s KeySet) Without(k Key) KeySet {
	if k >= keyCount {
		return s
	}
	return s &^ (1 << k)
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return k < keyCount && s&(1<<k) != 0
}

// String lists held keys joined by "+", or "-" when empty.
func (s KeySet) String() string {
	var names []string
	for _, k := range AllKeys() {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "+")
}

// ParseKeySet parses the String form of a key set.
func ParseKeySet(s string) (KeySet, error) {
	var set KeySet
	if s == "-" || s == "" {
		return set, nil
	}
	for _, name := range strings.Split(s, "+") {
		k, ok := keyByName(strings.TrimSpace(name))
		if !ok {
			return 0, fmt.Errorf("core: unknown key %q in %q", name, s)
		}
		set = set.With(k)
	}
	return set, nil
}

func keyByName(name string) (Key, bool) {
	for _, k := range AllKeys() {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// KeySource is anything that can report whether a key is currently held.
type KeySource interface {
	IsKeyDown(k Key) bool
}

// Sample polls every logical key from src.
func Sample(src KeySource) KeySet {
	var s KeySet
	for _, k := range AllKeys() {
		if src.IsKeyDown(k) {
			s = s.With(k)
		}
	}
	return s
}

// Input is the read-only snapshot handed to a game for one tick.
type Input struct {
	tick uint64
	keys KeySet
}

// NewInput creates the snapshot for the given tick and held keys.
func NewInput(tick uint64, keys KeySet) Input {
	return Input{tick: tick, keys: keys}
}

// Tick returns the tick counter: 0 on the first tick, +1 per iteration.
func (in Input) Tick() uint64 {
	return in.tick
}

// IsKeyDown reports whether k was held when the tick started.
func (in Input) IsKeyDown(k Key) bool {
	return in.keys.Has(k)
}

// Keys returns the full held-key set.
func (in Input) Keys() KeySet {
	return in.keys
}

package headless

import (
	"testing"

	"github.com/vovakirdan/bitarcade/internal/core"
)

func TestScriptedKeys(t *testing.T) {
	p := New([]core.KeySet{core.Keys(core.KeyUp), 0, core.Keys(core.KeyLeft)})

	if !p.IsOpen() || !p.IsKeyDown(core.KeyUp) {
		t.Fatal("first tick should be open with Up held")
	}
	p.Present(core.NewFrame(1, 1, core.ClipInclusive))
	if p.IsKeyDown(core.KeyUp) {
		t.Error("second tick should hold nothing")
	}
	p.Present(nil)
	if !p.IsKeyDown(core.KeyLeft) {
		t.Error("third tick should hold Left")
	}
	p.Present(nil)

	if p.IsOpen() {
		t.Error("platform should close after the script ends")
	}
	if p.Presented() != 3 {
		t.Errorf("Presented() = %d, expected 3", p.Presented())
	}
	if p.IsKeyDown(core.KeyLeft) {
		t.Error("no keys should be held past the script")
	}
}

func TestIdle(t *testing.T) {
	p := NewIdle(2)
	for p.IsOpen() {
		for _, k := range core.AllKeys() {
			if p.IsKeyDown(k) {
				t.Fatalf("idle platform holds %v", k)
			}
		}
		p.Present(nil)
	}
	if p.Presented() != 2 {
		t.Errorf("Presented() = %d, expected 2", p.Presented())
	}
}

package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bitarcade/internal/core"
)

type stubGame struct {
	id     string
	layout core.Layout
}

func (g stubGame) ID() string          { return g.id }
func (g stubGame) Title() string       { return "Stub " + g.id }
func (g stubGame) Size() (int, int)    { return 16, 8 }
func (g stubGame) Layout() core.Layout { return g.layout }
func (g stubGame) Init() uint64        { return 0 }
func (g stubGame) Step(prev uint64, _ core.Input, _ *core.DrawList) uint64 {
	return prev + 1
}

func TestRegisterCreateList(t *testing.T) {
	g := stubGame{id: "stub_ok", layout: core.Layout{core.NewField("n", 0, 8)}}
	Register(g.id, func() Game { return g })

	if !Exists("stub_ok") {
		t.Fatal("Exists() should report a registered game")
	}

	created, err := Create("stub_ok")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if created.ID() != "stub_ok" {
		t.Errorf("Create() returned game %q", created.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub_ok" {
			found = true
			if info.Title != "Stub stub_ok" || info.Width != 16 || info.Height != 8 || info.Bits != 8 {
				t.Errorf("unexpected info: %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	g := stubGame{id: "stub_dup", layout: core.Layout{core.NewField("n", 0, 1)}}
	Register(g.id, func() Game { return g })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register(g.id, func() Game { return g })
}

func TestRegisterInvalidLayoutPanics(t *testing.T) {
	g := stubGame{id: "stub_bad", layout: core.Layout{core.NewField("a", 0, 4), core.NewField("b", 2, 4)}}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("an overlapping layout should panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "overlaps") {
			t.Errorf("panic message %q should mention the overlap", msg)
		}
		if Exists("stub_bad") {
			t.Error("a rejected game must not be registered")
		}
	}()
	Register(g.id, func() Game { return g })
}

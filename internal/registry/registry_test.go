package registry

import (
	"testing"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Board() core.Board { return core.Board{Width: 4, Height: 4, FPS: 30} }
func (g stubGame) Initialize([]string) (uint64, error) { return 1, nil }
func (g stubGame) Step(state uint64, _ core.InputFrame) uint64 { return state + 1 }
func (g stubGame) Draw(uint64) []core.DrawCommand { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub_a")
			}
		}
	}
	if !found {
		t.Error("List() should include stub_a")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for unknown ID")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for unknown ID")
	}
}

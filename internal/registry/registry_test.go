package registry

import (
	"testing"

	"github.com/vovakirdan/term-cruncher/internal/core"
)

type stubGame struct{ title string }

func (s stubGame) ID() string                           { return "stub" }
func (s stubGame) Title() string                        { return s.title }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{title: "B"} })
	Register("zz_stub_a", func() Game { return stubGame{title: "A"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "B" {
		t.Errorf("Create() title = %q, want B", g.Title())
	}

	var idxA, idxB = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "zz_stub_a":
			idxA = i
			if info.Title != "A" {
				t.Errorf("List() title = %q, want A", info.Title)
			}
		case "zz_stub_b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("List() should contain both stubs sorted by ID, got indexes %d, %d", idxA, idxB)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() of unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{} })
}

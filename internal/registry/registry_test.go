package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                          { return g.id }
func (g *stubGame) Title() string                                       { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) error                      { return nil }
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                                 {}
func (g *stubGame) State() core.GameState                               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", "second", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", "first", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Fatal("Exists() mismatch")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create() returned %q, expected stub_a", g.ID())
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	var infos []GameInfo
	for _, info := range List() {
		if info.ID == "stub_a" || info.ID == "stub_b" {
			infos = append(infos, info)
		}
	}
	if len(infos) != 2 {
		t.Fatalf("List() returned %d stub entries, expected 2", len(infos))
	}
	if infos[0].ID != "stub_a" || infos[0].Title != "Stub stub_a" || infos[0].Description != "first" {
		t.Errorf("List() not sorted or missing metadata: %+v", infos)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })
}

package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionMoveLeft)
	f.Press(ActionMoveRight)
	f.Release(ActionMoveLeft)

	events := f.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	want := []InputEvent{
		{Action: ActionMoveLeft},
		{Action: ActionMoveRight},
		{Action: ActionMoveLeft, Released: true},
	}
	for i, ev := range events {
		if ev != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, ev, want[i])
		}
	}
}

func TestInputFrameHas(t *testing.T) {
	f := NewInputFrame()
	f.Release(ActionPause)
	if f.Has(ActionPause) {
		t.Error("a release should not count as a press")
	}

	f.Press(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Has(Restart) should be true after Press")
	}

	f.Clear()
	if f.Has(ActionRestart) || len(f.Events()) != 0 {
		t.Error("Clear should drop all events")
	}
}

func TestActionIsMovement(t *testing.T) {
	for _, a := range []Action{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight} {
		if !a.IsMovement() {
			t.Errorf("%s should be a movement action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionFireUp, ActionFireRight, ActionPause, ActionQuit} {
		if a.IsMovement() {
			t.Errorf("%s should not be a movement action", a)
		}
	}
}

package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w":
		return core.ActionMoveUp, false
	case "s":
		return core.ActionMoveDown, false
	case "a":
		return core.ActionMoveLeft, false
	case "d":
		return core.ActionMoveRight, false
	case "up":
		return core.ActionFireUp, false
	case "down":
		return core.ActionFireDown, false
	case "left":
		return core.ActionFireLeft, false
	case "right":
		return core.ActionFireRight, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// HoldTracker turns the press-only key stream of a terminal into
// press/release pairs. A key counts as held until it has not repeated for
// the hold window.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// SetWindow changes the hold window for subsequent expirations.
func (h *HoldTracker) SetWindow(window time.Duration) {
	h.window = window
}

// Press records a key press at now. It returns true only for the first
// press of a hold; auto-repeats just extend it.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	_, held := h.last[a]
	h.last[a] = now
	return !held
}

// Expire releases every key whose last press is older than the window,
// in action order.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, t := range h.last {
		if now.Sub(t) >= h.window {
			released = append(released, a)
		}
	}
	sortActions(released)
	for _, a := range released {
		delete(h.last, a)
	}
	return released
}

// ReleaseAll releases every held key, in action order.
func (h *HoldTracker) ReleaseAll() []core.Action {
	released := make([]core.Action, 0, len(h.last))
	for a := range h.last {
		released = append(released, a)
	}
	sortActions(released)
	clear(h.last)
	return released
}

// Held reports whether the action is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.last[a]
	return ok
}

func sortActions(as []core.Action) {
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
}

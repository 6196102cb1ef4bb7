// Package shooter adapts the top-down shooter simulation to the terminal
// platform: it converts terminal frames into key events and world state
// into screen cells.
package shooter

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/sim"
)

// HUDRows is the number of screen rows below the play field reserved for labels.
const HUDRows = 2

// Caption prefix for the terminal title.
const captionPrefix = "Top Down Shooter - Score: "

// Variant describes one registered flavor of the game.
type Variant struct {
	ID          string
	Title       string
	Description string
}

var (
	settingsMu sync.RWMutex
	configPath string
	preset     config.DifficultyPreset
)

// SetConfigPath makes every subsequently reset game load its tuning from path.
// An empty path restores the normal search order.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset applies p on top of the loaded tuning at every Reset.
func SetDifficultyPreset(p config.DifficultyPreset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	preset = p
}

func currentSettings() (string, config.DifficultyPreset) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return configPath, preset
}

// Game implements registry.Game on top of sim.Sim.
type Game struct {
	variant  Variant
	cfg      config.ShooterConfig
	runtime  core.RuntimeConfig
	sim      *sim.Sim
	paused   bool
	gameOver bool
}

// New creates a game for the given variant. Reset must be called before Step.
func New(v Variant) *Game {
	return &Game{
		variant: v,
		cfg:     config.DefaultShooterConfig(),
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the variant's tuning and starts a fresh run sized to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	path, p := currentSettings()

	cfg, err := config.LoadShooter(g.variant.ID, path)
	if err != nil {
		return fmt.Errorf("shooter: %w", err)
	}
	config.ApplyPreset(&cfg, p)

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.cfg = cfg
	g.runtime = rc
	g.paused = false
	g.gameOver = false
	g.sim = sim.New(cfg)
	g.sim.Reset(g.area(rc.ScreenW, rc.ScreenH), seed)
	return nil
}

// area converts a screen size in cells into the play area in world units.
func (g *Game) area(screenW, screenH int) sim.Area {
	rows := max(screenH-HUDRows, 1)
	return sim.Area{
		W: float64(max(screenW, 1)) * g.cfg.World.CellWidth,
		H: float64(rows) * g.cfg.World.CellHeight,
	}
}

// Step forwards the frame's key events to the simulation and advances it by dt.
// Movement transitions are forwarded even while paused so that a key
// released during the pause does not stay held.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.gameOver || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Events() {
		switch {
		case ev.Action == core.ActionQuit:
			g.sim.Quit()
		case ev.Action == core.ActionPause && !ev.Released:
			g.paused = !g.paused
		case ev.Action.IsMovement():
			g.sim.HandleKey(ev)
		case isFire(ev.Action) && !g.paused:
			g.sim.HandleKey(ev)
		}
	}

	if g.sim.State().Terminated {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	st := g.sim.Step(dt.Seconds())
	g.gameOver = st.Terminated
	return core.StepResult{State: g.State()}
}

func isFire(a core.Action) bool {
	return a >= core.ActionFireUp && a <= core.ActionFireRight
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.sim != nil {
		score = g.sim.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Reason reports why the run ended, or sim.ReasonNone while it is running.
func (g *Game) Reason() sim.Reason {
	if g.sim == nil {
		return sim.ReasonNone
	}
	return g.sim.State().Reason
}

// EndReason describes how the run ended, for score records.
func (g *Game) EndReason() string {
	return g.Reason().String()
}

// Caption returns the terminal title for the current score.
func (g *Game) Caption() string {
	return fmt.Sprintf("%s%d", captionPrefix, g.State().Score)
}

// HoldDuration is how long a movement key counts as held without a repeat.
func (g *Game) HoldDuration() time.Duration {
	return time.Duration(g.cfg.Input.HoldMillis) * time.Millisecond
}

// Config returns the tuning of the current run.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Sim exposes the running simulation.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// maxFrameDelta caps the simulated time of one frame so a stalled terminal
// does not teleport entities.
const maxFrameDelta = 250 * time.Millisecond

// defaultHold is used for games that do not report a hold window.
const defaultHold = 600 * time.Millisecond

// endReasoner is implemented by games that can explain how a run ended.
type endReasoner interface {
	EndReason() string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	recorder   *Recorder
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time
	lastTick   time.Time
	caption    string
	started    bool // Whether the first step has run
	embedded   bool // Runs inside a session; quitting returns to the menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been recorded
	warnings   []error
}

// NewModel creates a Bubble Tea model for the given game and starts its first run.
func NewModel(game registry.Game, rec *Recorder, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	hold := defaultHold
	if hr, ok := game.(registry.HoldReporter); ok {
		hold = hr.HoldDuration()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   rec,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(hold),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		now:        time.Now,
	}, nil
}

// Init starts the tick loop and sets the initial window title.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if c, ok := m.game.(registry.Captioner); ok {
		cmds = append(cmds, tea.SetWindowTitle(c.Caption()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.endRun()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.embedded && msg.String() == "b" && (m.gameState.GameOver || m.gameState.Paused) {
		m.endRun()
		m.backToMenu = true
		return m, nil
	}

	switch {
	case action == core.ActionNone:
	case action.IsMovement():
		if m.holds.Press(action, m.now()) {
			m.inputFrame.Press(action)
		}
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Press(action)
		}
	default:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The run is only rebuilt before it has started; afterwards the play field
// keeps its size and the screen is clipped or padded.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.started && !m.gameState.GameOver {
		if err := m.game.Reset(m.config); err != nil {
			m.warnings = append(m.warnings, err)
		}
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick advances the game by the wall-clock time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Duration(0)
	if !m.lastTick.IsZero() {
		dt = min(max(now.Sub(m.lastTick), 0), maxFrameDelta)
	}
	m.lastTick = now

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		if err := m.game.Reset(m.config); err != nil {
			m.warnings = append(m.warnings, err)
		}
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.holds.ReleaseAll()
		m.inputFrame.Clear()
		cmd := m.frameCmds()
		return m, cmd
	}

	for _, a := range m.holds.Expire(now) {
		m.inputFrame.Release(a)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.started = true

	if m.gameState.GameOver {
		m.recordRun()
	}

	m.inputFrame.Clear()

	cmd := m.frameCmds()
	return m, cmd
}

// frameCmds schedules the next tick and refreshes the title when the
// caption changed.
func (m *Model) frameCmds() tea.Cmd {
	next := tickCmd(m.config.TickRate)
	c, ok := m.game.(registry.Captioner)
	if !ok {
		return next
	}
	caption := c.Caption()
	if caption == m.caption {
		return next
	}
	m.caption = caption
	return tea.Batch(next, tea.SetWindowTitle(caption))
}

// endRun closes the current run the same way a window close does and
// records it.
func (m *Model) endRun() {
	if !m.gameState.GameOver {
		m.inputFrame.Press(core.ActionQuit)
		m.gameState = m.game.Step(m.inputFrame, 0).State
		m.inputFrame.Clear()
	}
	m.recordRun()
}

// recordRun persists the current run once.
func (m *Model) recordRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	reason := ""
	if r, ok := m.game.(endReasoner); ok {
		reason = r.EndReason()
	}
	if err := m.recorder.Record(m.game.ID(), m.gameState.Score, reason); err != nil {
		m.warnings = append(m.warnings, err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.warnings = append(m.warnings, fmt.Errorf("screenshot: %w", err))
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warnings = append(m.warnings, fmt.Errorf("screenshot: %w", err))
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warnings = append(m.warnings, fmt.Errorf("screenshot: %w", err))
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// BackToMenu reports whether an embedded game asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Warnings returns the non-fatal errors collected during the session.
func (m Model) Warnings() []error {
	return m.warnings
}

// RunResult summarizes a finished interactive session.
type RunResult struct {
	Score    int     // Score of the last run
	Warnings []error // Score log, storage and screenshot failures
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, rec *Recorder, cfg core.RuntimeConfig) (RunResult, error) {
	model, err := NewModel(game, rec, cfg)
	if err != nil {
		return RunResult{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{Score: m.State().Score, Warnings: m.Warnings()}, nil
}

package sim

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// FlushOrder selects when deferred destructions are applied within a tick.
type FlushOrder int

const (
	// UpdateThenFlush removes entities at the end of the tick they were
	// queued in, so a dying entity is never drawn again.
	UpdateThenFlush FlushOrder = iota
	// FlushThenUpdate removes them at the start of the next tick; a dying
	// entity stays visible for one more frame.
	FlushThenUpdate
)

// ParseFlushOrder converts a config value into a FlushOrder.
func ParseFlushOrder(s string) FlushOrder {
	if s == config.FlushFlushFirst {
		return FlushThenUpdate
	}
	return UpdateThenFlush
}

// Reason explains why a run terminated.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonPlayerCaught
	ReasonQuit
)

// String returns a short description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonPlayerCaught:
		return "caught"
	case ReasonQuit:
		return "quit"
	default:
		return "running"
	}
}

// RunState is the top-level state machine: Running until a terminal
// transition, after which it never changes.
type RunState struct {
	Terminated bool
	Reason     Reason
}

// Sim drives one run: input intents, NPC spawning, entity updates and the
// flush, once per Step.
type Sim struct {
	cfg     config.ShooterConfig
	order   FlushOrder
	area    Area
	world   *World
	spawner *Spawner
	events  []core.InputEvent
	state   RunState
	elapsed float64
	ticks   int
}

// New creates a simulation with the given tuning. Call Reset before Step.
func New(cfg config.ShooterConfig) *Sim {
	return &Sim{
		cfg:   cfg,
		order: ParseFlushOrder(cfg.World.FlushOrder),
	}
}

// Reset starts a new run in the given area: a fresh world with the player
// at the center, a reseeded spawner and the Running state.
func (s *Sim) Reset(area Area, seed int64) {
	s.area = area
	s.world = NewWorld()
	s.spawner = NewSpawner(s.cfg, seed)
	s.events = s.events[:0]
	s.state = RunState{}
	s.elapsed = 0
	s.ticks = 0
	s.world.Spawn(s.newPlayer(area.Center()))
}

// HandleKey queues a key transition for the next Step.
func (s *Sim) HandleKey(ev core.InputEvent) {
	s.events = append(s.events, ev)
}

// Step advances the run by dt seconds and returns the resulting state.
// A terminated run is left untouched.
func (s *Sim) Step(dt float64) RunState {
	if s.state.Terminated {
		s.events = s.events[:0]
		return s.state
	}
	if dt < 0 {
		dt = 0
	}

	s.applyInput()

	for due := s.spawner.Advance(dt); due > 0; due-- {
		s.spawner.Spawn(s.world, s.area)
	}

	switch s.order {
	case FlushThenUpdate:
		s.world.Flush()
		s.world.ForEachLive(func(e *Entity) { s.update(e, dt) })
	default:
		s.world.ForEachLive(func(e *Entity) { s.update(e, dt) })
		s.world.Flush()
	}

	s.elapsed += dt
	s.ticks++
	return s.state
}

// applyInput drains queued key events into the player's intent.
// Movement keys add or remove one unit on their axis; fire keys set a
// one-shot direction on press only.
func (s *Sim) applyInput() {
	player := s.world.Player()
	for _, ev := range s.events {
		if player == nil {
			break
		}
		sign := 1.0
		if ev.Released {
			sign = -1.0
		}

		switch ev.Action {
		case core.ActionMoveLeft:
			player.Vel.X -= sign
		case core.ActionMoveRight:
			player.Vel.X += sign
		case core.ActionMoveUp:
			player.Vel.Y += sign
		case core.ActionMoveDown:
			player.Vel.Y -= sign
		}

		if ev.Released || player.Gun == nil {
			continue
		}
		switch ev.Action {
		case core.ActionFireUp:
			player.Gun.Direction = DirUp
		case core.ActionFireDown:
			player.Gun.Direction = DirDown
		case core.ActionFireLeft:
			player.Gun.Direction = DirLeft
		case core.ActionFireRight:
			player.Gun.Direction = DirRight
		}
	}
	s.events = s.events[:0]
}

// Quit ends the run as if the window had been closed.
func (s *Sim) Quit() {
	s.terminate(ReasonQuit)
}

// terminate records the first terminal transition only.
func (s *Sim) terminate(r Reason) {
	if s.state.Terminated {
		return
	}
	s.state = RunState{Terminated: true, Reason: r}
}

// State returns the current run state.
func (s *Sim) State() RunState {
	return s.state
}

// Score returns the number of NPCs spawned so far.
func (s *Sim) Score() int {
	return s.spawner.Count()
}

// Ammo returns the player's current ammunition.
func (s *Sim) Ammo() int {
	if p := s.world.Player(); p != nil && p.Gun != nil {
		return p.Gun.Ammo
	}
	return 0
}

// Player returns the player entity.
func (s *Sim) Player() *Entity {
	return s.world.Player()
}

// World returns the entity registry.
func (s *Sim) World() *World {
	return s.world
}

// Area returns the play area of the current run.
func (s *Sim) Area() Area {
	return s.area
}

// Elapsed returns the simulated seconds since Reset.
func (s *Sim) Elapsed() float64 {
	return s.elapsed
}

// Ticks returns the number of Steps applied since Reset.
func (s *Sim) Ticks() int {
	return s.ticks
}

// Package sim implements the shooter simulation: a world of entities that
// move, shoot and collide once per tick, with destruction deferred to a
// single flush point per tick. It has no knowledge of terminals or timers;
// the caller supplies dt and key events.
package sim

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Kind tags the variant an Entity represents.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindNPC
	KindBullet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// EntityID identifies an entity within one World. IDs are never reused.
type EntityID uint64

// Entity is the flat representation shared by all kinds. Fields that only
// one kind uses are left zero on the others.
type Entity struct {
	ID        EntityID
	Kind      Kind
	Pos       core.Vec2
	Vel       core.Vec2
	MoveSpeed float64
	Size      float64

	// Bullet lifetime in seconds.
	Age    float64
	MaxAge float64

	// Player only.
	Gun *Gun
}

// integrate advances the position by velocity * movespeed * dt.
func (e *Entity) integrate(dt float64) {
	e.Pos.X += e.Vel.X * e.MoveSpeed * dt
	e.Pos.Y += e.Vel.Y * e.MoveSpeed * dt
}

// Dir is a fire direction on one axis. The zero value means "no shot".
type Dir struct {
	X, Y int
}

// Fire directions.
var (
	DirUp    = Dir{X: 0, Y: 1}
	DirDown  = Dir{X: 0, Y: -1}
	DirLeft  = Dir{X: -1, Y: 0}
	DirRight = Dir{X: 1, Y: 0}
)

// IsZero reports whether no direction is set.
func (d Dir) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Vec returns the direction as a vector.
func (d Dir) Vec() core.Vec2 {
	return core.V(float64(d.X), float64(d.Y))
}

// Gun holds the player's ammunition and reload state.
type Gun struct {
	Ammo        int
	MaxAmmo     int
	ReloadTime  float64 // Seconds the timer must exceed to regenerate one round
	ReloadTimer float64 // Counts up; negative right after a shot
	Cooldown    float64 // ReloadTimer is set to -Cooldown after firing

	// Direction is the pending fire intent, cleared every tick.
	Direction Dir
}

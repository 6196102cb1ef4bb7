// Package config provides YAML-based configuration loading and
// difficulty presets for the shooter variants.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all tunables for one shooter variant.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Render     RenderConfig     `yaml:"render"`
	Player     PlayerConfig     `yaml:"player"`
	Gun        GunConfig        `yaml:"gun"`
	Bullet     BulletConfig     `yaml:"bullet"`
	NPC        NPCConfig        `yaml:"npc"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig maps terminal cells to world units and picks the flush ordering.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
	FlushOrder string  `yaml:"flush_order"` // "update_first" or "flush_first"
}

// Flush orders accepted in WorldConfig.FlushOrder.
const (
	FlushUpdateFirst = "update_first"
	FlushFlushFirst  = "flush_first"
)

// RenderConfig selects how entities are drawn.
type RenderConfig struct {
	Style string `yaml:"style"` // "sprites" or "quads"
}

// Render styles accepted in RenderConfig.Style.
const (
	StyleSprites = "sprites"
	StyleQuads   = "quads"
)

// PlayerConfig defines the player square.
type PlayerConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
	Size      float64 `yaml:"size"`
}

// GunConfig defines the player's gun.
type GunConfig struct {
	MaxAmmo      int     `yaml:"max_ammo"`
	ReloadTime   float64 `yaml:"reload_time"`   // Seconds per regenerated round
	FireCooldown float64 `yaml:"fire_cooldown"` // Reload timer is set to -FireCooldown after a shot
}

// BulletConfig defines fired bullets.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Size   float64 `yaml:"size"`
	MaxAge float64 `yaml:"max_age"` // Seconds before a bullet removes itself
}

// NPCConfig defines chasing enemies.
type NPCConfig struct {
	Size         float64 `yaml:"size"`
	HitDistance  float64 `yaml:"hit_distance"`  // Center distance below which contact counts
	EaseDistance float64 `yaml:"ease_distance"` // Steering vectors shorter than this are not normalized
}

// SpawnConfig defines the NPC spawn timer and geometry.
type SpawnConfig struct {
	Interval   float64 `yaml:"interval"`    // Seconds between spawns
	EdgeOffset float64 `yaml:"edge_offset"` // Distance from center as a fraction of the play-area extent
}

// DifficultyConfig defines the NPC speed ramp.
type DifficultyConfig struct {
	BaseSpeed         float64 `yaml:"base_speed"`
	PerSpawnIncrement float64 `yaml:"per_spawn_increment"`
}

// InputConfig defines how terminal key repeats are turned into held keys.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // A movement key is released after this long without a repeat
}

// NPCSpeed returns the move speed of the NPC spawned as number spawnCount.
func (d DifficultyConfig) NPCSpeed(spawnCount int) float64 {
	return d.BaseSpeed + float64(spawnCount)*d.PerSpawnIncrement
}

// Validate reports every invalid field at once.
func (c ShooterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.CellWidth > 0, "world.cell_width must be positive, got %v", c.World.CellWidth)
	check(c.World.CellHeight > 0, "world.cell_height must be positive, got %v", c.World.CellHeight)
	check(c.World.FlushOrder == FlushUpdateFirst || c.World.FlushOrder == FlushFlushFirst,
		"world.flush_order must be %q or %q, got %q", FlushUpdateFirst, FlushFlushFirst, c.World.FlushOrder)
	check(c.Render.Style == StyleSprites || c.Render.Style == StyleQuads,
		"render.style must be %q or %q, got %q", StyleSprites, StyleQuads, c.Render.Style)
	check(c.Player.MoveSpeed > 0, "player.move_speed must be positive, got %v", c.Player.MoveSpeed)
	check(c.Gun.MaxAmmo >= 0, "gun.max_ammo must not be negative, got %d", c.Gun.MaxAmmo)
	check(c.Gun.ReloadTime > 0, "gun.reload_time must be positive, got %v", c.Gun.ReloadTime)
	check(c.Bullet.Speed > 0, "bullet.speed must be positive, got %v", c.Bullet.Speed)
	check(c.Bullet.MaxAge > 0, "bullet.max_age must be positive, got %v", c.Bullet.MaxAge)
	check(c.NPC.HitDistance > 0, "npc.hit_distance must be positive, got %v", c.NPC.HitDistance)
	check(c.Spawn.Interval > 0, "spawn.interval must be positive, got %v", c.Spawn.Interval)
	check(c.Spawn.EdgeOffset > 0.5, "spawn.edge_offset must exceed 0.5 to spawn off-screen, got %v", c.Spawn.EdgeOffset)
	check(c.Difficulty.PerSpawnIncrement > 0,
		"difficulty.per_spawn_increment must be positive, got %v", c.Difficulty.PerSpawnIncrement)
	check(c.Input.HoldMillis > 0, "input.hold_ms must be positive, got %d", c.Input.HoldMillis)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid shooter config: %w", errors.Join(errs...))
}

package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Area is the visible play area in world units, with the origin at the
// bottom-left corner.
type Area struct {
	W, H float64
}

// Center returns the middle of the area.
func (a Area) Center() core.Vec2 {
	return core.V(a.W/2, a.H/2)
}

// Contains reports whether p lies inside the area, edges included.
func (a Area) Contains(p core.Vec2) bool {
	return p.X >= 0 && p.X <= a.W && p.Y >= 0 && p.Y <= a.H
}

// EdgeZone is one of the four off-screen strips NPCs enter from.
type EdgeZone int

const (
	ZoneLeft EdgeZone = iota
	ZoneRight
	ZoneTop
	ZoneBottom
)

// String returns the zone name.
func (z EdgeZone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// normal returns the outward direction of the zone.
func (z EdgeZone) normal() (int, int) {
	switch z {
	case ZoneLeft:
		return -1, 0
	case ZoneRight:
		return 1, 0
	case ZoneTop:
		return 0, 1
	default:
		return 0, -1
	}
}

// Spawner creates NPCs on a fixed interval and keeps the spawn counter,
// which doubles as the score.
type Spawner struct {
	interval float64
	offset   float64
	ramp     config.DifficultyConfig
	npc      config.NPCConfig
	rng      *rand.Rand
	elapsed  float64
	count    int
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(cfg config.ShooterConfig, seed int64) *Spawner {
	return &Spawner{
		interval: cfg.Spawn.Interval,
		offset:   cfg.Spawn.EdgeOffset,
		ramp:     cfg.Difficulty,
		npc:      cfg.NPC,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Advance accumulates dt and returns how many spawns became due.
// Every full interval elapsed yields one spawn.
func (sp *Spawner) Advance(dt float64) int {
	if dt <= 0 {
		return 0
	}
	sp.elapsed += dt
	due := 0
	for sp.elapsed >= sp.interval {
		sp.elapsed -= sp.interval
		due++
	}
	return due
}

// Spawn creates one NPC beyond a random edge of the area and registers it.
func (sp *Spawner) Spawn(w *World, area Area) *Entity {
	sp.count++
	zone := EdgeZone(sp.rng.Intn(4))
	return w.Spawn(&Entity{
		Kind:      KindNPC,
		Pos:       sp.SpawnPoint(zone, area),
		MoveSpeed: sp.ramp.NPCSpeed(sp.count),
		Size:      sp.npc.Size,
	})
}

// SpawnPoint picks a position in the given zone. The coordinate along the
// edge is uniform over the area; the other one is offset from the center
// by offset * extent, which lies outside the area for offsets above 0.5.
func (sp *Spawner) SpawnPoint(zone EdgeZone, area Area) core.Vec2 {
	nx, ny := zone.normal()

	x := sp.rng.Float64() * area.W
	if nx != 0 {
		x = float64(nx)*sp.offset*area.W + area.W/2
	}
	y := sp.rng.Float64() * area.H
	if ny != 0 {
		y = float64(ny)*sp.offset*area.H + area.H/2
	}
	return core.V(x, y)
}

// Count returns the number of NPCs spawned so far.
func (sp *Spawner) Count() int {
	return sp.count
}

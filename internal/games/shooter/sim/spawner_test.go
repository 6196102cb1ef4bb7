package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestSpawnerAdvance(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Spawn.Interval = 1
	sp := NewSpawner(cfg, 1)

	assert.Equal(t, 0, sp.Advance(0.5))
	assert.Equal(t, 1, sp.Advance(0.5))
	assert.Equal(t, 0, sp.Advance(0.25))
	assert.Equal(t, 2, sp.Advance(2.0), "each elapsed interval yields one spawn")
	assert.Equal(t, 0, sp.Advance(0))
	assert.Equal(t, 0, sp.Advance(-1))
}

func TestSpawnPointGeometry(t *testing.T) {
	area := Area{W: 1280, H: 704}

	for _, offset := range []float64{0.6, 1.0, 1.5} {
		cfg := config.DefaultShooterConfig()
		cfg.Spawn.EdgeOffset = offset
		sp := NewSpawner(cfg, 7)

		for i := 0; i < 200; i++ {
			for _, zone := range []EdgeZone{ZoneLeft, ZoneRight} {
				p := sp.SpawnPoint(zone, area)
				assert.True(t, p.X < 0 || p.X > area.W, "%s x=%v should be off-screen", zone, p.X)
				assert.True(t, p.Y >= 0 && p.Y <= area.H, "%s y=%v should be on the edge", zone, p.Y)
			}
			for _, zone := range []EdgeZone{ZoneTop, ZoneBottom} {
				p := sp.SpawnPoint(zone, area)
				assert.True(t, p.Y < 0 || p.Y > area.H, "%s y=%v should be off-screen", zone, p.Y)
				assert.True(t, p.X >= 0 && p.X <= area.W, "%s x=%v should be on the edge", zone, p.X)
			}
		}
	}
}

func TestSpawnPointSides(t *testing.T) {
	area := Area{W: 1000, H: 500}
	sp := NewSpawner(config.DefaultShooterConfig(), 3)

	assert.InDelta(t, -100, sp.SpawnPoint(ZoneLeft, area).X, 1e-9)
	assert.InDelta(t, 1100, sp.SpawnPoint(ZoneRight, area).X, 1e-9)
	assert.InDelta(t, 550, sp.SpawnPoint(ZoneTop, area).Y, 1e-9)
	assert.InDelta(t, -50, sp.SpawnPoint(ZoneBottom, area).Y, 1e-9)
}

func TestSpawnerRampsSpeed(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	sp := NewSpawner(cfg, 42)
	w := NewWorld()
	area := Area{W: 1280, H: 704}

	assert.Equal(t, 0, sp.Count())
	first := sp.Spawn(w, area)
	sp.Spawn(w, area)
	third := sp.Spawn(w, area)

	require.Equal(t, 3, sp.Count())
	assert.Equal(t, 3, w.Count(KindNPC))
	assert.Equal(t, 152.0, first.MoveSpeed)
	assert.Greater(t, third.MoveSpeed, first.MoveSpeed)
	assert.False(t, area.Contains(first.Pos), "NPCs spawn off-screen")
}

package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

var testArea = Area{W: 1280, H: 704}

// quietConfig returns the classic tuning with spawning pushed far out so a
// test controls every NPC in the world.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Spawn.Interval = 1000
	return cfg
}

func newTestSim(t *testing.T, cfg config.ShooterConfig) *Sim {
	t.Helper()
	s := New(cfg)
	s.Reset(testArea, 1)
	require.NotNil(t, s.Player())
	return s
}

func press(s *Sim, a core.Action) {
	s.HandleKey(core.InputEvent{Action: a})
}

func release(s *Sim, a core.Action) {
	s.HandleKey(core.InputEvent{Action: a, Released: true})
}

func TestResetPlacesPlayerAtCenter(t *testing.T) {
	s := newTestSim(t, quietConfig())

	p := s.Player()
	assert.Equal(t, testArea.Center(), p.Pos)
	assert.Equal(t, 5, s.Ammo())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.World().Len())
	assert.False(t, s.State().Terminated)
}

func TestMovementAccumulates(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()

	press(s, core.ActionMoveLeft)
	press(s, core.ActionMoveRight)
	s.Step(0)
	assert.Equal(t, 0.0, p.Vel.X, "opposite keys cancel")

	release(s, core.ActionMoveLeft)
	s.Step(0)
	assert.Equal(t, 1.0, p.Vel.X, "releasing one side leaves the other")

	release(s, core.ActionMoveRight)
	s.Step(0)
	assert.Equal(t, 0.0, p.Vel.X)
}

func TestMovementIntegrates(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()
	start := p.Pos

	press(s, core.ActionMoveLeft)
	s.Step(1.0)
	assert.InDelta(t, start.X-200, p.Pos.X, 1e-9)
	assert.InDelta(t, start.Y, p.Pos.Y, 1e-9)

	release(s, core.ActionMoveLeft)
	press(s, core.ActionMoveUp)
	s.Step(0.5)
	assert.InDelta(t, start.Y+100, p.Pos.Y, 1e-9, "up increases y")
}

func TestDiagonalMovementIsFaster(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()
	start := p.Pos

	press(s, core.ActionMoveUp)
	press(s, core.ActionMoveRight)
	s.Step(1.0)

	assert.InDelta(t, 200*math.Sqrt2, core.Dist(start, p.Pos), 1e-9)
}

func TestFireSpawnsBulletAndStartsCooldown(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()

	press(s, core.ActionFireRight)
	s.Step(0)

	require.Equal(t, 4, s.Ammo())
	assert.Equal(t, -0.25, p.Gun.ReloadTimer)
	assert.True(t, p.Gun.Direction.IsZero(), "fire intent is one-shot")
	assert.Equal(t, 1, s.World().Count(KindBullet))

	var bullet *Entity
	for _, e := range s.World().Live() {
		if e.Kind == KindBullet {
			bullet = e
		}
	}
	require.NotNil(t, bullet)
	assert.Equal(t, core.V(1, 0), bullet.Vel)
	assert.Equal(t, p.Pos, bullet.Pos)

	// Regenerates one round once the timer passes the reload time.
	s.Step(1.0)
	assert.Equal(t, 5, s.Ammo())
	assert.Equal(t, 0.0, p.Gun.ReloadTimer)
}

func TestRegenIsOneRoundPerTick(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()
	p.Gun.Ammo = 0

	s.Step(10)
	assert.Equal(t, 1, s.Ammo())
}

func TestReleasingFireKeyDoesNotShoot(t *testing.T) {
	s := newTestSim(t, quietConfig())

	release(s, core.ActionFireUp)
	s.Step(0)
	assert.Equal(t, 5, s.Ammo())
	assert.Equal(t, 0, s.World().Count(KindBullet))
}

func TestShotDroppedWithoutAmmo(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()
	p.Gun.Ammo = 0
	p.Gun.ReloadTimer = -10

	press(s, core.ActionFireLeft)
	s.Step(0)
	assert.Equal(t, 0, s.World().Count(KindBullet))
	assert.True(t, p.Gun.Direction.IsZero())

	// Once ammo is back, the old request must not fire by itself.
	p.Gun.ReloadTimer = 0
	p.Gun.Ammo = 1
	s.Step(0)
	assert.Equal(t, 0, s.World().Count(KindBullet))
	assert.Equal(t, 1, s.Ammo())
}

func TestBulletUpdatedOnceInSpawnTick(t *testing.T) {
	s := newTestSim(t, quietConfig())

	press(s, core.ActionFireUp)
	s.Step(0.1)

	var bullet *Entity
	for _, e := range s.World().Live() {
		if e.Kind == KindBullet {
			bullet = e
		}
	}
	require.NotNil(t, bullet)
	assert.InDelta(t, 0.1, bullet.Age, 1e-9)
	assert.InDelta(t, testArea.Center().Y+50, bullet.Pos.Y, 1e-9)
}

func TestBulletCollisionDestroysBoth(t *testing.T) {
	for _, tc := range []struct {
		name  string
		order string
	}{
		{"update then flush", config.FlushUpdateFirst},
		{"flush then update", config.FlushFlushFirst},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.World.FlushOrder = tc.order
			s := newTestSim(t, cfg)

			npc := s.World().Spawn(&Entity{Kind: KindNPC, Pos: core.V(100, 100), MoveSpeed: 0})
			bullet := s.World().Spawn(s.newBullet(core.V(110, 100), DirRight))

			s.Step(0)
			if tc.order == config.FlushFlushFirst {
				assert.True(t, s.World().Pending(npc))
				assert.True(t, s.World().Pending(bullet))
				assert.True(t, s.World().Contains(npc), "still live until the next tick")
				assert.True(t, s.World().Contains(bullet))
				s.Step(0)
			}
			assert.False(t, s.World().Contains(npc))
			assert.False(t, s.World().Contains(bullet))
			assert.False(t, s.State().Terminated)
		})
	}
}

func TestOneBulletMayHitTwoNPCs(t *testing.T) {
	s := newTestSim(t, quietConfig())

	a := s.World().Spawn(&Entity{Kind: KindNPC, Pos: core.V(100, 100)})
	b := s.World().Spawn(&Entity{Kind: KindNPC, Pos: core.V(120, 100)})
	s.World().Spawn(s.newBullet(core.V(110, 100), DirRight))

	s.Step(0)
	assert.False(t, s.World().Contains(a))
	assert.False(t, s.World().Contains(b))
	assert.Equal(t, 1, s.World().Len(), "only the player remains")
}

func TestNPCsDoNotCollideWithEachOther(t *testing.T) {
	s := newTestSim(t, quietConfig())

	a := s.World().Spawn(&Entity{Kind: KindNPC, Pos: core.V(100, 100)})
	b := s.World().Spawn(&Entity{Kind: KindNPC, Pos: core.V(101, 100)})

	s.Step(0)
	assert.True(t, s.World().Contains(a))
	assert.True(t, s.World().Contains(b))
}

func TestNPCContactEndsRun(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()
	s.World().Spawn(&Entity{Kind: KindNPC, Pos: p.Pos.Add(core.V(20, 0))})

	st := s.Step(0.016)
	require.True(t, st.Terminated)
	assert.Equal(t, ReasonPlayerCaught, st.Reason)
	ticks := s.Ticks()

	// Terminated runs ignore further steps and input.
	press(s, core.ActionFireUp)
	st = s.Step(1)
	assert.Equal(t, ReasonPlayerCaught, st.Reason)
	assert.Equal(t, ticks, s.Ticks())
	assert.Equal(t, 0, s.World().Count(KindBullet))
}

func TestQuitIsTerminal(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()
	s.Quit()
	s.World().Spawn(&Entity{Kind: KindNPC, Pos: p.Pos})

	st := s.Step(0.016)
	assert.True(t, st.Terminated)
	assert.Equal(t, ReasonQuit, st.Reason, "first terminal transition wins")
}

func TestNPCChasesPlayer(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()
	p.Pos = core.V(100, 0)
	npc := s.World().Spawn(&Entity{Kind: KindNPC, Pos: core.V(0, 0), MoveSpeed: 100})

	s.Step(0.1)
	assert.Equal(t, core.V(1, 0), npc.Vel)
	assert.InDelta(t, 10, npc.Pos.X, 1e-9)
}

func TestSteerTowards(t *testing.T) {
	tests := []struct {
		name string
		to   core.Vec2
		want core.Vec2
	}{
		{"far target is normalized", core.V(100, 0), core.V(1, 0)},
		{"close target keeps length", core.V(0.5, 0), core.V(0.5, 0)},
		{"same point", core.V(0, 0), core.V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SteerTowards(core.V(0, 0), tc.to, 1)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestBulletLifetime(t *testing.T) {
	s := newTestSim(t, quietConfig())
	b := s.World().Spawn(s.newBullet(core.V(0, 0), DirUp))

	for i := 0; i < 3; i++ {
		s.updateBullet(b, 1.0)
		require.False(t, s.World().Pending(b), "age %v must not expire", b.Age)
	}
	s.updateBullet(b, 1.0)
	assert.True(t, s.World().Pending(b))
}

func TestSpawnsRampDifficulty(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	s := newTestSim(t, cfg)

	for i := 0; i < 3; i++ {
		s.Step(1.0)
	}
	require.Equal(t, 3, s.Score())

	var npcs []*Entity
	for _, e := range s.World().Live() {
		if e.Kind == KindNPC {
			npcs = append(npcs, e)
		}
	}
	require.Len(t, npcs, 3)
	assert.Greater(t, npcs[2].MoveSpeed, npcs[0].MoveSpeed)
}

func TestNegativeDtIsClamped(t *testing.T) {
	s := newTestSim(t, quietConfig())
	p := s.Player()
	start := p.Pos

	press(s, core.ActionMoveRight)
	s.Step(-1)
	assert.Equal(t, start, p.Pos)
	assert.Equal(t, 0.0, s.Elapsed())
	assert.Equal(t, 1, s.Ticks())
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() []core.Vec2 {
		s := New(config.DefaultShooterConfig())
		s.Reset(testArea, 99)
		press(s, core.ActionMoveLeft)
		for i := 0; i < 5; i++ {
			s.Step(0.5)
		}
		var out []core.Vec2
		for _, e := range s.World().Live() {
			out = append(out, e.Pos)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestParseFlushOrder(t *testing.T) {
	assert.Equal(t, UpdateThenFlush, ParseFlushOrder(config.FlushUpdateFirst))
	assert.Equal(t, FlushThenUpdate, ParseFlushOrder(config.FlushFlushFirst))
	assert.Equal(t, UpdateThenFlush, ParseFlushOrder(""))
}

package sim

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// update advances one entity by dt.
func (s *Sim) update(e *Entity, dt float64) {
	switch e.Kind {
	case KindPlayer:
		s.updatePlayer(e, dt)
	case KindNPC:
		s.updateNPC(e, dt)
	case KindBullet:
		s.updateBullet(e, dt)
	}
}

// updatePlayer moves the player, regenerates ammo and fires the pending shot.
func (s *Sim) updatePlayer(e *Entity, dt float64) {
	e.integrate(dt)

	g := e.Gun
	if g == nil {
		return
	}

	// At most one round per tick, however long the tick was.
	g.ReloadTimer += dt
	if g.Ammo < g.MaxAmmo && g.ReloadTimer > g.ReloadTime {
		g.Ammo++
		g.ReloadTimer = 0
	}

	if !g.Direction.IsZero() && g.Ammo > 0 {
		s.world.Spawn(s.newBullet(e.Pos, g.Direction))
		g.ReloadTimer = -g.Cooldown
		g.Ammo--
	}

	// A shot that found no ammo is dropped, not queued.
	g.Direction = Dir{}
}

// updateNPC steers toward the player, moves, then resolves contacts.
func (s *Sim) updateNPC(e *Entity, dt float64) {
	player := s.world.Player()
	if player != nil {
		e.Vel = SteerTowards(e.Pos, player.Pos, s.cfg.NPC.EaseDistance)
	}
	e.integrate(dt)

	hit := s.cfg.NPC.HitDistance
	s.world.ForEachLive(func(o *Entity) {
		switch o.Kind {
		case KindBullet:
			if core.Dist(e.Pos, o.Pos) < hit {
				s.world.RequestDestroy(e)
				s.world.RequestDestroy(o)
			}
		case KindPlayer:
			if core.Dist(e.Pos, o.Pos) < hit {
				s.terminate(ReasonPlayerCaught)
			}
		}
	})
}

// updateBullet moves the bullet and expires it after MaxAge seconds.
func (s *Sim) updateBullet(e *Entity, dt float64) {
	e.integrate(dt)
	e.Age += dt
	if e.Age > e.MaxAge {
		s.world.RequestDestroy(e)
	}
}

// SteerTowards returns the velocity that points from `from` at `to`.
// Vectors longer than ease are normalized; shorter ones are kept as-is so
// the chaser slows down as it closes in.
func SteerTowards(from, to core.Vec2, ease float64) core.Vec2 {
	v := core.Between(from, to)
	if v.Len() > ease {
		v = v.Normalized()
	}
	return v
}

func (s *Sim) newPlayer(pos core.Vec2) *Entity {
	return &Entity{
		Kind:      KindPlayer,
		Pos:       pos,
		MoveSpeed: s.cfg.Player.MoveSpeed,
		Size:      s.cfg.Player.Size,
		Gun: &Gun{
			Ammo:       s.cfg.Gun.MaxAmmo,
			MaxAmmo:    s.cfg.Gun.MaxAmmo,
			ReloadTime: s.cfg.Gun.ReloadTime,
			Cooldown:   s.cfg.Gun.FireCooldown,
		},
	}
}

func (s *Sim) newBullet(pos core.Vec2, dir Dir) *Entity {
	return &Entity{
		Kind:      KindBullet,
		Pos:       pos,
		Vel:       dir.Vec(),
		MoveSpeed: s.cfg.Bullet.Speed,
		Size:      s.cfg.Bullet.Size,
		MaxAge:    s.cfg.Bullet.MaxAge,
	}
}

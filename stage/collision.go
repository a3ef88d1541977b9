package stage

import (
	"github.com/lixenwraith/hexfire/vmath"
)

// resolveCollisions runs the three circle passes in order:
// hostile fire and bodies against the player, player fire against enemies,
// pickups against the player
func (s *Stage) resolveCollisions() {
	p := s.player
	pos, radius := p.Position(), p.Radius()

	if !p.IsDead() && !p.IsInvulnerable() && !s.transitioning {
		for _, b := range s.bullets.EnemyBullets() {
			if !b.Active || !vmath.CirclesOverlap(b.Pos, b.Radius, pos, radius) {
				continue
			}
			if b.Damage > 0 {
				p.TakeDamage(b.Damage)
				s.bullets.Consume(b)
			}
		}
		for _, e := range s.enemies.Enemies() {
			if !e.Active || !vmath.CirclesOverlap(e.Pos, e.Radius, pos, radius) {
				continue
			}
			if e.Damage > 0 {
				p.TakeDamage(e.Damage)
			}
		}
	}

	for _, b := range s.bullets.PlayerBullets() {
		for _, e := range s.enemies.Enemies() {
			if !b.Active {
				break
			}
			if !e.Hittable() || !vmath.CirclesOverlap(b.Pos, b.Radius, e.Pos, e.Radius) {
				continue
			}

			hpBefore := e.HP
			killed := s.enemies.Damage(e, b.Damage)
			s.bullets.PassThrough(b, hpBefore)
			if !killed {
				continue
			}

			s.score += e.Score
			if kind, vel, ok := s.enemies.TakeDrop(e); ok {
				if _, err := s.items.Spawn(e.Pos, kind, vel); err != nil {
					s.log.Warn().Err(err).Msg("drop spawn failed")
				}
			}
		}
	}

	if !p.IsDead() {
		for _, it := range s.items.Items() {
			if !it.Collidable() || !vmath.CirclesOverlap(it.Pos, it.Radius, pos, radius) {
				continue
			}
			p.CollectItem(it.Kind)
			s.items.Collect(it)
		}
	}
}

package stage

import (
	"math"

	"github.com/lixenwraith/hexfire/component"
	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/system"
)

// tickScore moves the displayed score a tenth of the gap per frame, at least one point
func (s *Stage) tickScore() {
	if s.displayScore >= s.score {
		return
	}
	diff := s.score - s.displayScore
	s.displayScore += int(math.Ceil(float64(diff) * parameter.ScoreTickFraction))
	s.displayScore = min(s.displayScore, s.score)
}

func (s *Stage) project() {
	p := s.player
	h := core.HUD{
		Score:        s.score,
		DisplayScore: s.displayScore,
		HP:           p.HP(),
		MaxHP:        p.MaxHP(),
		Magic:        p.Magic(),
		Lives:        p.Lives(),
		Inventory:    p.Inventory(),
		Charge:       p.Held(),
		StageTime:    s.enemies.StageTime(),
		ScrollOffset: s.scroller.Offset(),
		Phase:        s.phase,
		Paused:       s.paused,
	}
	if boss := s.enemies.Boss(); boss != nil {
		s.bossWasActive = true
		h.BossActive = true
		if boss.MaxHP > 0 {
			h.BossFraction = max(0, boss.HP/boss.MaxHP)
		}
	}
	s.hud = h
}

// HUD returns the projection computed at the end of the last frame
func (s *Stage) HUD() core.HUD {
	return s.hud
}

// Snapshot appends every visible entity to dst, back to front
func (s *Stage) Snapshot(dst []core.Sprite) []core.Sprite {
	if !s.entered {
		return dst
	}

	for _, it := range s.items.Items() {
		dst = append(dst, core.Sprite{
			Kind:    core.SpriteItem,
			Item:    it.Kind,
			Pos:     it.Pos,
			Size:    parameter.ItemSpriteSize,
			Scale:   1,
			Opacity: it.Opacity,
		})
	}

	for _, e := range s.enemies.Enemies() {
		dst = append(dst, enemySprite(e))
	}

	p := s.player
	if p.Scale() > 0 {
		sp := core.Sprite{
			Kind:    core.SpritePlayer,
			Pos:     p.Position(),
			Size:    parameter.PlayerSpriteSize,
			Scale:   p.Scale(),
			Opacity: p.Opacity(),
		}
		if p.DamageTinted() {
			sp.Tint, sp.Tinted = core.RGBRed, true
		}
		dst = append(dst, sp)
	}

	for _, pt := range p.Charge().Particles() {
		if !pt.Active {
			continue
		}
		dst = append(dst, core.Sprite{
			Kind:    core.SpriteParticle,
			Pos:     pt.Pos,
			Size:    pt.Size,
			Scale:   1,
			Opacity: pt.Opacity,
		})
	}

	for _, b := range s.bullets.PlayerBullets() {
		if b.Active {
			dst = append(dst, bulletSprite(core.SpritePlayerBullet, b))
		}
	}
	for _, b := range s.bullets.EnemyBullets() {
		if b.Active {
			dst = append(dst, bulletSprite(core.SpriteEnemyBullet, b))
		}
	}

	for _, im := range s.bullets.Impacts() {
		dst = append(dst, core.Sprite{
			Kind:    core.SpriteImpact,
			Pos:     im.Pos,
			Size:    im.Radius * 2,
			Scale:   im.Scale,
			Opacity: system.ImpactOpacity(im),
			Tint:    im.Color,
			Tinted:  true,
		})
	}
	return dst
}

func enemySprite(e *component.Enemy) core.Sprite {
	sp := core.Sprite{
		Kind:    core.SpriteEnemy,
		Variant: e.Variant,
		Pos:     e.Pos,
		Size:    e.Size,
		Scale:   e.Scale,
		Opacity: e.Opacity,
	}
	if e.Flash > 0 {
		sp.Tint, sp.Tinted = core.RGBRed, true
	}
	return sp
}

// bulletSprite faces the bullet along its velocity
func bulletSprite(kind core.SpriteKind, b *component.Bullet) core.Sprite {
	return core.Sprite{
		Kind:     kind,
		Bullet:   b.Kind,
		Pos:      b.Pos,
		Size:     b.Size,
		Scale:    b.Scale,
		Rotation: math.Atan2(b.Vel[1], b.Vel[0]),
		Opacity:  1,
		Tint:     b.Color,
		Tinted:   true,
	}
}

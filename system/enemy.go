package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/component"
	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/vmath"
)

var dragonDefaultAim = mgl64.Vec2{-1, 0}

// Target is what aiming enemies track; nil disables aiming
type Target interface {
	Position() mgl64.Vec2
}

// EnemyManager owns the enemy pool, the spawn director and the per-enemy state machine
type EnemyManager struct {
	enemies []*component.Enemy
	bullets *BulletManager
	audio   core.AudioSink
	rng     Random
	log     zerolog.Logger

	difficulty   float64
	stageTime    float64
	lastSpawn    float64
	bossSpawned  bool
	bossDefeated bool
	nextID       uint64
}

// NewEnemyManager creates a manager; difficulty <= 0 selects the default factor
func NewEnemyManager(bullets *BulletManager, audio core.AudioSink, rng Random, difficulty float64, log zerolog.Logger) *EnemyManager {
	if difficulty <= 0 {
		difficulty = parameter.DefaultDifficulty
	}
	if audio == nil {
		audio = core.NopAudio{}
	}
	return &EnemyManager{
		enemies:    make([]*component.Enemy, 0, 32),
		bullets:    bullets,
		audio:      audio,
		rng:        rng,
		difficulty: difficulty,
		log:        log.With().Str("component", "enemies").Logger(),
	}
}

// Update advances the stage clock, runs the spawn director, steps every enemy and compacts
func (m *EnemyManager) Update(dt float64, target Target) {
	prev := m.stageTime
	m.stageTime += dt

	m.direct(prev)

	for _, e := range m.enemies {
		m.step(e, dt, target)
	}

	n := 0
	for _, e := range m.enemies {
		if !e.Removed {
			m.enemies[n] = e
			n++
		}
	}
	clear(m.enemies[n:])
	m.enemies = m.enemies[:n]
}

func (m *EnemyManager) step(e *component.Enemy, dt float64, target Target) {
	prev := e.TimeAlive
	e.TimeAlive += dt
	e.ShootTimer += dt

	if e.Flash > 0 {
		e.Flash -= dt
		if e.Flash <= 0 {
			e.Flash = 0
		}
	}

	if e.State == core.StateFading {
		e.FadeTime -= dt
		e.Opacity = max(0, e.FadeTime/parameter.EnemyFadeDuration)
		e.Scale = 1 - (parameter.EnemyFadeDuration-e.FadeTime)*parameter.EnemyFadeShrink
		if e.FadeTime <= 0 {
			e.Removed = true
		}
		e.Vel[1] -= parameter.Gravity * dt * parameter.GravityFactor
	} else {
		if e.State == core.StateEntering {
			m.enter(e)
		}
		if e.State == core.StateActive {
			m.behave(e, prev, target)
		}
	}

	e.Pos = e.Pos.Add(e.Vel.Mul(dt))

	if e.Pos[0] < parameter.FieldRemoveX {
		e.Active = false
		e.Removed = true
	}
}

// enter sets up initial motion; only the boss lingers in the entering state
func (m *EnemyManager) enter(e *component.Enemy) {
	switch e.Variant {
	case core.VariantBoss:
		if e.Pos[0] > parameter.BossAnchorX {
			e.Vel = mgl64.Vec2{-e.Speed, 0}
			return
		}
		e.Pos[0] = parameter.BossAnchorX
		e.Vel = mgl64.Vec2{}
	case core.VariantGhost:
		e.Vel = mgl64.Vec2{-e.Speed, (m.rng.Float64() - 0.5) * e.Speed * parameter.SpawnGhostVerticalJ}
	case core.VariantSkeleton:
		e.Vel = mgl64.Vec2{-e.Speed, (m.rng.Float64() - 0.5) * e.Speed * parameter.SpawnSkelVerticalJ}
	default:
		e.Vel = mgl64.Vec2{-e.Speed, 0}
	}
	e.State = core.StateActive
}

// behave runs the active-state pattern; prev is the alive time before this frame
func (m *EnemyManager) behave(e *component.Enemy, prev float64, target Target) {
	t := e.TimeAlive

	switch e.Variant {
	case core.VariantSkeleton:
		e.Vel[1] = math.Cos(t*parameter.SkeletonZigzagRate) * parameter.SkeletonZigzagAmplitude
		if e.ShootTimer > parameter.SkeletonFireInterval {
			m.fire(e, mgl64.Vec2{-parameter.SkeletonBulletSpeed, 0}, core.BulletEnergy, parameter.SkeletonBulletSize)
			e.ShootTimer = 0
		}

	case core.VariantDragon:
		// Re-aim vertically toward the target, horizontal speed kept as is
		if target != nil && vmath.CrossedInterval(prev, t, parameter.DragonAimInterval) {
			vx := e.Vel[0]
			want := vmath.DirectionTo(e.Pos, target.Position()).Mul(e.Speed)
			e.Vel = vmath.LerpVec(e.Vel, want, parameter.DragonAimBlend)
			e.Vel[0] = vx
		}
		if vmath.CrossedInterval(prev, t, parameter.DragonFireInterval) {
			aim := dragonDefaultAim
			if target != nil {
				aim = vmath.LerpVec(vmath.DirectionTo(e.Pos, target.Position()), dragonDefaultAim, parameter.DragonFireBlend)
			}
			m.fire(e, aim.Mul(parameter.DragonBulletSpeed), core.BulletFire, parameter.DragonBulletSize)
		}

	case core.VariantBoss:
		e.Vel[1] = math.Cos(t) * parameter.BossBobAmplitude
		if e.ShootTimer > parameter.BossFireInterval {
			dir := vmath.FromAngle(t*parameter.BossSpiralRate, parameter.BossBulletSpeed)
			m.fire(e, dir, core.BulletNut, parameter.BossBulletSize)
			e.ShootTimer = 0
		}
	}
}

func (m *EnemyManager) fire(e *component.Enemy, vel mgl64.Vec2, kind core.BulletKind, size float64) {
	if _, err := m.bullets.SpawnEnemyBullet(e.Pos, vel, kind, size); err != nil {
		m.log.Warn().Err(err).Uint64("id", e.ID).Msg("enemy fire failed")
		return
	}
	m.audio.PlayCue(core.CueEnemyAttack)
}

// Damage applies amount to an active enemy; returns true if this hit killed it
// Non-lethal hits start the red flash
func (m *EnemyManager) Damage(e *component.Enemy, amount float64) bool {
	if !e.Active {
		return false
	}
	e.HP -= amount
	if e.HP <= 0 {
		m.kill(e)
		return true
	}
	e.Flash = parameter.EnemyFlashDuration
	return false
}

func (m *EnemyManager) kill(e *component.Enemy) {
	e.Active = false
	e.Defeated = true
	e.State = core.StateFading
	e.FadeTime = parameter.EnemyFadeDuration
	e.Flash = 0

	if e.Variant == core.VariantItembox {
		e.Drop = core.ItemMagic
		if m.rng.Float64() < parameter.ItemboxDropRatioHit {
			e.Drop = core.ItemHealth
		}
		e.DropVel = e.Vel
	}

	e.Vel = e.Vel.Add(mgl64.Vec2{e.Speed, parameter.EnemyKnockbackLift})

	if e.Variant == core.VariantBoss {
		m.bossDefeated = true
		m.log.Info().Float64("stage_time", m.stageTime).Msg("boss defeated")
	}
	m.audio.PlayCue(core.CueEnemyDeath)
}

// TakeDrop hands over a pending item drop once; drops on anything but an itembox are discarded
func (m *EnemyManager) TakeDrop(e *component.Enemy) (core.ItemKind, mgl64.Vec2, bool) {
	kind, vel := e.Drop, e.DropVel
	if kind == core.ItemNone {
		return core.ItemNone, mgl64.Vec2{}, false
	}
	e.Drop = core.ItemNone
	if e.Variant != core.VariantItembox {
		m.log.Debug().Uint64("id", e.ID).Stringer("variant", e.Variant).Msg("drop from non-itembox ignored")
		return core.ItemNone, mgl64.Vec2{}, false
	}
	return kind, vel, true
}

// Boss returns the living boss, or nil
func (m *EnemyManager) Boss() *component.Enemy {
	for _, e := range m.enemies {
		if e.Variant == core.VariantBoss && e.Active {
			return e
		}
	}
	return nil
}

// BossActive reports whether a living boss is in the pool
func (m *EnemyManager) BossActive() bool {
	return m.Boss() != nil
}

// BossDefeated reports whether a boss was killed by damage this stage
func (m *EnemyManager) BossDefeated() bool {
	return m.bossDefeated
}

// Clear drops every enemy without touching the stage clock
func (m *EnemyManager) Clear() {
	clear(m.enemies)
	m.enemies = m.enemies[:0]
}

func (m *EnemyManager) Enemies() []*component.Enemy { return m.enemies }
func (m *EnemyManager) StageTime() float64          { return m.stageTime }
func (m *EnemyManager) Difficulty() float64         { return m.difficulty }

package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/event"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/vmath"
)

var (
	playerSpawn    = mgl64.Vec2{parameter.PlayerSpawnX, parameter.PlayerSpawnY}
	playerBoundMin = mgl64.Vec2{-parameter.PlayerBoundX, -parameter.PlayerBoundY}
	playerBoundMax = mgl64.Vec2{parameter.PlayerBoundX, parameter.PlayerBoundY}
)

// Player owns the ship state, its weapon charge visuals and death/respawn cycle
// Created once per stage; death is a sub-state, never removal
type Player struct {
	bullets *BulletManager
	input   core.InputProvider
	sched   *event.Scheduler
	audio   core.AudioSink
	charge  *ChargeEffect
	log     zerolog.Logger

	pos    mgl64.Vec2
	vel    mgl64.Vec2
	speed  float64
	radius float64

	hp, maxHP float64
	magic     float64
	lives     int
	inventory core.ItemKind

	dead         bool
	intro        bool
	invulnerable bool
	invulnTime   float64
	damageTint   bool

	time     float64 // drives the idle sway
	scale    float64
	opacity  float64
	held     float64 // attack hold seen this frame
	respawnH event.Handle
}

// NewPlayer creates a player at the off-screen spawn, gliding in
func NewPlayer(bullets *BulletManager, input core.InputProvider, sched *event.Scheduler, audio core.AudioSink, rng Random, log zerolog.Logger) *Player {
	if audio == nil {
		audio = core.NopAudio{}
	}
	return &Player{
		bullets: bullets,
		input:   input,
		sched:   sched,
		audio:   audio,
		charge:  NewChargeEffect(rng),
		log:     log.With().Str("component", "player").Logger(),
		pos:     playerSpawn,
		speed:   parameter.PlayerSpeed,
		radius:  parameter.PlayerRadius,
		hp:      parameter.PlayerMaxHP,
		maxHP:   parameter.PlayerMaxHP,
		magic:   parameter.PlayerMaxMagic,
		lives:   parameter.PlayerStartLives,
		intro:   true,
		scale:   1,
		opacity: 1,
	}
}

// Update steps one frame: death fall, intro glide, or normal control
func (p *Player) Update(dt float64) {
	p.time += dt

	if p.dead {
		p.pos = p.pos.Add(p.vel.Mul(dt))
		if p.scale > 0 {
			p.scale = max(0, p.scale-parameter.PlayerShrinkSpeed*dt)
			p.opacity = p.scale
		}
		p.vel[1] -= parameter.Gravity * dt * parameter.GravityFactor
		return
	}

	if p.intro {
		p.vel = mgl64.Vec2{parameter.PlayerIntroSpeed, 0}
		p.pos = p.pos.Add(p.vel.Mul(dt))
		if p.pos[0] >= parameter.PlayerAnchorX {
			p.pos[0] = parameter.PlayerAnchorX
			p.intro = false
			p.vel = mgl64.Vec2{}
			// Drop any hold that started during the glide so it does not auto-fire
			p.input.ResetAttackCharge()
		}
		return
	}

	if p.magic < parameter.PlayerMaxMagic {
		p.magic = min(parameter.PlayerMaxMagic, p.magic+parameter.PlayerMagicRegen*dt)
	}

	if p.invulnerable {
		p.invulnTime -= dt
		phase := math.Mod(p.invulnTime, parameter.PlayerBlinkPeriod)
		if phase > parameter.PlayerBlinkPeriod/2 {
			p.opacity = 1
		} else {
			p.opacity = parameter.PlayerBlinkOpacity
		}
		if p.invulnTime <= 0 {
			p.invulnerable = false
			p.invulnTime = 0
			p.opacity = 1
			p.damageTint = false
		}
	}

	in := p.input.State()
	p.vel = p.steer(in)
	p.vel[1] += math.Sin(p.time*parameter.PlayerSwayRate) * parameter.PlayerSwayAmplitude
	p.pos = vmath.ClampVec(p.pos.Add(p.vel.Mul(dt)), playerBoundMin, playerBoundMax)

	if in.Attack {
		p.held = p.input.AttackDuration()
		p.charge.Update(dt, p.held, p.pos, p.magic)
	} else {
		p.held = 0
		if d := p.input.AttackDuration(); d > 0 {
			p.Fire(d)
		}
		p.charge.Stop()
		p.charge.Update(dt, 0, p.pos, p.magic)
	}

	if in.Item {
		p.UseItem()
	}
}

// steer turns input into velocity; analog wins when non-zero
// Opposite digital flags cancel out
func (p *Player) steer(in core.InputState) mgl64.Vec2 {
	if in.Move != (mgl64.Vec2{}) {
		return in.Move.Mul(p.speed)
	}
	var v mgl64.Vec2
	if in.Left {
		v[0] -= 1
	}
	if in.Right {
		v[0] += 1
	}
	if in.Up {
		v[1] += 1
	}
	if in.Down {
		v[1] -= 1
	}
	return vmath.Normalize2D(v).Mul(p.speed)
}

// ChargePower converts a hold duration to shot power before the magic cap
func ChargePower(chargeTime float64) float64 {
	t := vmath.Clamp(chargeTime, 0, parameter.ChargeMaxTime)
	if t < parameter.ChargeThreshold {
		return parameter.ChargeMinPower
	}
	return math.Pow(2, t)
}

// chargeRatio places power on the 1..32 scale used for size and color
func chargeRatio(power float64) float64 {
	return vmath.Clamp01((power - parameter.ChargeMinPower) / (parameter.ChargeMaxPower - parameter.ChargeMinPower))
}

// Fire releases a charged shot; returns false when magic < 1 suppressed it
// Power is capped by available magic and deducted from it
func (p *Player) Fire(chargeTime float64) bool {
	power := ChargePower(chargeTime)
	if p.magic < power {
		power = p.magic
	}
	if p.magic < 1 {
		return false
	}
	p.magic -= power

	r := chargeRatio(power)
	size := vmath.Lerp(parameter.ChargeMinSize, parameter.ChargeMaxSize, r)
	color := core.RGBYellow.Lerp(core.RGBRed, r)
	p.bullets.SpawnPlayerBullet(p.pos, size, power, color)

	switch {
	case power < parameter.ChargeMediumPower:
		p.audio.PlayCue(core.CueAttackSmall)
	case power < parameter.ChargeLargePower:
		p.audio.PlayCue(core.CueAttackMedium)
	default:
		p.audio.PlayCue(core.CueAttackLarge)
	}
	return true
}

// UseItem consumes the held item; an unneeded health item becomes an extra life
func (p *Player) UseItem() {
	switch p.inventory {
	case core.ItemNone:
		return
	case core.ItemHealth:
		if p.hp < p.maxHP {
			p.hp = p.maxHP
			p.audio.PlayCue(core.CueItemUse)
		} else {
			p.lives++
			p.audio.PlayCue(core.CueOneUp)
		}
	case core.ItemMagic:
		if p.magic < parameter.PlayerMaxMagic {
			p.magic = parameter.PlayerMaxMagic
			p.audio.PlayCue(core.CueItemUse)
		} else {
			p.audio.PlayCue(core.CueFlush)
		}
	}
	p.inventory = core.ItemNone
}

// CollectItem puts kind in the single inventory slot, replacing what was held
func (p *Player) CollectItem(kind core.ItemKind) {
	if !kind.Droppable() {
		p.log.Debug().Stringer("kind", kind).Msg("collect ignored")
		return
	}
	p.inventory = kind
	p.audio.PlayCue(core.CueItemGet)
}

// TakeDamage applies contact or bullet damage unless dead or invulnerable
func (p *Player) TakeDamage(amount float64) {
	if p.invulnerable || p.dead {
		return
	}
	p.hp -= amount
	p.audio.PlayCue(core.CueDamage)

	if p.hp <= 0 {
		p.hp = 0
		p.die()
		return
	}
	p.invulnerable = true
	p.invulnTime = parameter.PlayerDamageInvulnerability
	p.damageTint = true
}

func (p *Player) die() {
	p.dead = true
	p.lives--
	p.held = 0
	p.charge.Stop()

	back := vmath.Normalize2D(p.vel.Mul(-1)).Mul(p.speed * parameter.PlayerKnockbackFactor)
	p.vel = back.Add(mgl64.Vec2{0, parameter.PlayerKnockbackLift})

	p.log.Info().Int("lives", p.lives).Floats64("pos", p.pos[:]).Msg("player died")

	if p.lives >= 0 {
		p.respawnH = p.sched.Schedule(parameter.PlayerRespawnDelay, event.KindRespawn, p.Respawn)
	}
}

// Respawn restores vitals and restarts the intro glide under respawn invulnerability
func (p *Player) Respawn() {
	p.respawnH = 0
	p.dead = false
	p.hp = p.maxHP
	p.magic = parameter.PlayerMaxMagic
	p.scale = 1
	p.opacity = 1
	p.pos = playerSpawn
	p.vel = mgl64.Vec2{}
	p.intro = true
	p.invulnerable = true
	p.invulnTime = parameter.PlayerRespawnInvulnerability
	p.damageTint = false
	p.log.Debug().Int("lives", p.lives).Msg("player respawned")
}

// CancelRespawn drops a pending respawn, used on teardown
func (p *Player) CancelRespawn() {
	if p.respawnH != 0 {
		p.sched.Cancel(p.respawnH)
		p.respawnH = 0
	}
}

func (p *Player) Position() mgl64.Vec2     { return p.pos }
func (p *Player) Velocity() mgl64.Vec2     { return p.vel }
func (p *Player) Radius() float64          { return p.radius }
func (p *Player) HP() float64              { return p.hp }
func (p *Player) MaxHP() float64           { return p.maxHP }
func (p *Player) Magic() float64           { return p.magic }
func (p *Player) Lives() int               { return p.lives }
func (p *Player) Inventory() core.ItemKind { return p.inventory }
func (p *Player) IsDead() bool             { return p.dead }
func (p *Player) InIntro() bool            { return p.intro }
func (p *Player) IsInvulnerable() bool     { return p.invulnerable }
func (p *Player) Scale() float64           { return p.scale }
func (p *Player) Opacity() float64         { return p.opacity }
func (p *Player) DamageTinted() bool       { return p.damageTint }
func (p *Player) Held() float64            { return p.held }
func (p *Player) Charge() *ChargeEffect    { return p.charge }

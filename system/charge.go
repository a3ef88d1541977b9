package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hexfire/component"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/vmath"
)

// ChargeEffect is the fixed particle pool drawn around the player while charging
// Visual only; never collides
type ChargeEffect struct {
	pool       [parameter.ChargeParticleCount]component.Particle
	spawnTimer float64
	rng        Random
}

func NewChargeEffect(rng Random) *ChargeEffect {
	return &ChargeEffect{rng: rng}
}

// ChargeIntensity maps a hold time to [0,1], capped by what the magic reserve can pay for
func ChargeIntensity(chargeTime, magic float64) float64 {
	maxTime := 0.0
	if magic > 1 {
		maxTime = math.Log2(magic)
	}
	effective := min(chargeTime, maxTime, parameter.ChargeMaxTime)
	return vmath.Clamp01(effective / parameter.ChargeMaxTime)
}

// Update spawns particles while chargeTime > 0 and steers live ones toward center
func (c *ChargeEffect) Update(dt, chargeTime float64, center mgl64.Vec2, magic float64) {
	intensity := ChargeIntensity(chargeTime, magic)
	interval := parameter.ChargeSpawnIntervalBase - intensity*parameter.ChargeSpawnIntervalScale

	c.spawnTimer += dt
	if chargeTime > 0 {
		for c.spawnTimer > interval {
			c.spawnTimer -= interval
			c.spawn(center, intensity)
		}
	} else {
		c.spawnTimer = 0
	}

	for i := range c.pool {
		p := &c.pool[i]
		if !p.Active {
			continue
		}
		p.Life -= dt
		if p.Life <= 0 {
			p.Active = false
			p.Opacity = 0
			continue
		}

		speed := p.Vel.Len()
		want := vmath.DirectionTo(p.Pos, center).Mul(speed)
		p.Vel = vmath.LerpVec(p.Vel, want, parameter.ChargeSteerFactor)
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))

		ratio := p.Life / p.MaxLife
		if ratio > parameter.ChargeFadeInRatio {
			p.Opacity = (1 - ratio) / (1 - parameter.ChargeFadeInRatio)
		} else {
			p.Opacity = ratio
		}
		p.Size += dt * parameter.ChargeGrowthRate
	}
}

func (c *ChargeEffect) spawn(center mgl64.Vec2, intensity float64) {
	var p *component.Particle
	for i := range c.pool {
		if !c.pool[i].Active {
			p = &c.pool[i]
			break
		}
	}
	if p == nil {
		return
	}

	p.Active = true
	p.MaxLife = parameter.ChargeLifeMin + c.rng.Float64()*parameter.ChargeLifeRange
	p.Life = p.MaxLife
	p.Opacity = 0

	angle := c.rng.Float64() * 2 * math.Pi
	radius := parameter.ChargeSpawnRadiusBase + intensity*parameter.ChargeSpawnRadiusScale
	p.Pos = center.Add(vmath.FromAngle(angle, radius))

	speed := parameter.ChargeSpeedBase + intensity*parameter.ChargeSpeedScale
	jitter := (c.rng.Float64() - 0.5) * 2 * parameter.ChargeJitterAngle
	p.Vel = vmath.FromAngle(angle+jitter, speed).Mul(-1)

	p.Size = parameter.ChargeSizeBase + intensity*parameter.ChargeSizeScale + c.rng.Float64()*parameter.ChargeSizeJitter
}

// Stop kills every particle
func (c *ChargeEffect) Stop() {
	for i := range c.pool {
		c.pool[i].Active = false
		c.pool[i].Opacity = 0
	}
}

// Particles exposes the pool; callers skip inactive entries
func (c *ChargeEffect) Particles() []component.Particle {
	return c.pool[:]
}

// ActiveCount returns the number of live particles
func (c *ChargeEffect) ActiveCount() int {
	n := 0
	for i := range c.pool {
		if c.pool[i].Active {
			n++
		}
	}
	return n
}

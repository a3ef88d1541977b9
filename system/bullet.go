package system

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/component"
	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/vmath"
)

// Enemy bullet colors by kind
var (
	colorEnergy = core.RGBMagenta
	colorFire   = core.RGBOrange
	colorNut    = core.RGBBrown
)

// BulletManager owns player bullets, enemy bullets and impact markers
// Pools hold pointers so references handed out stay valid across compaction
type BulletManager struct {
	player  []*component.Bullet
	enemy   []*component.Bullet
	impacts []*component.Impact
	log     zerolog.Logger
}

func NewBulletManager(log zerolog.Logger) *BulletManager {
	return &BulletManager{
		player:  make([]*component.Bullet, 0, 32),
		enemy:   make([]*component.Bullet, 0, 128),
		impacts: make([]*component.Impact, 0, 32),
		log:     log.With().Str("component", "bullets").Logger(),
	}
}

// SpawnPlayerBullet fires a rightward bullet carrying power as damage
func (m *BulletManager) SpawnPlayerBullet(pos mgl64.Vec2, size, power float64, color core.RGB) *component.Bullet {
	b := &component.Bullet{
		Pos:    pos,
		Vel:    mgl64.Vec2{parameter.PlayerBulletSpeed, 0},
		Radius: size * parameter.PlayerBulletRadiusScale,
		Size:   size,
		Scale:  1,
		Damage: power,
		Kind:   core.BulletPlayer,
		Color:  color,
		Active: true,
	}
	m.player = append(m.player, b)
	return b
}

// SpawnEnemyBullet fires an enemy bullet; kind fixes color and damage
// size is the visual diameter, clamped to the readable range
func (m *BulletManager) SpawnEnemyBullet(pos, vel mgl64.Vec2, kind core.BulletKind, size float64) (*component.Bullet, error) {
	var (
		color  core.RGB
		damage float64
	)
	switch kind {
	case core.BulletEnergy:
		color, damage = colorEnergy, parameter.EnemyBulletDamageEnergy
	case core.BulletFire:
		color, damage = colorFire, parameter.EnemyBulletDamageFire
	case core.BulletNut:
		color, damage = colorNut, parameter.EnemyBulletDamageNut
	default:
		return nil, fmt.Errorf("enemy bullet %s: %w", kind, core.ErrUnknownBullet)
	}

	size = vmath.Clamp(size, parameter.EnemyBulletMinSize, parameter.EnemyBulletMaxSize)
	b := &component.Bullet{
		Pos:    pos,
		Vel:    vel,
		Radius: size / 2,
		Size:   size,
		Scale:  1,
		Damage: damage,
		Kind:   kind,
		Color:  color,
		Active: true,
	}
	m.enemy = append(m.enemy, b)
	return b, nil
}

// SpawnImpact adds a hit marker of the given radius
func (m *BulletManager) SpawnImpact(pos mgl64.Vec2, color core.RGB, radius float64) {
	m.impacts = append(m.impacts, &component.Impact{
		Pos:    pos,
		Radius: radius,
		Life:   parameter.ImpactLife,
		Scale:  1,
		Color:  color,
	})
}

// Update integrates bullets, ages impacts and compacts all three pools
func (m *BulletManager) Update(dt float64) {
	for _, b := range m.player {
		if !b.Active {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))
		if math.Abs(b.Pos[0]) > parameter.BulletBoundX {
			b.Active = false
		}
	}

	for _, b := range m.enemy {
		if !b.Active {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))
		if math.Abs(b.Pos[0]) > parameter.BulletBoundX || math.Abs(b.Pos[1]) > parameter.EnemyBulletBoundY {
			b.Active = false
		}
	}

	for _, im := range m.impacts {
		im.Life -= dt
		im.Scale = 1 + (parameter.ImpactLife-im.Life)*parameter.ImpactExpandRate
	}

	m.Compact()
}

// Compact drops inactive bullets and expired impacts, preserving order
func (m *BulletManager) Compact() {
	m.player = compactBullets(m.player)
	m.enemy = compactBullets(m.enemy)

	n := 0
	for _, im := range m.impacts {
		if im.Life > 0 {
			m.impacts[n] = im
			n++
		}
	}
	clear(m.impacts[n:])
	m.impacts = m.impacts[:n]
}

func compactBullets(pool []*component.Bullet) []*component.Bullet {
	n := 0
	for _, b := range pool {
		if b.Active {
			pool[n] = b
			n++
		}
	}
	clear(pool[n:])
	return pool[:n]
}

// Consume deactivates a bullet and leaves an impact in its place
func (m *BulletManager) Consume(b *component.Bullet) {
	if !b.Active {
		return
	}
	b.Active = false
	m.SpawnImpact(b.Pos, b.Color, b.Radius*parameter.ImpactSizeFactor)
}

// PassThrough settles a player bullet after it hit an enemy with enemyHP health
// remaining before the hit. A bullet whose surplus damage exceeds the minimum
// keeps flying with damage, radius and scale reduced by residual/damage;
// otherwise it is consumed. Returns true if the bullet survived
func (m *BulletManager) PassThrough(b *component.Bullet, enemyHP float64) bool {
	residual := b.Damage - enemyHP
	if residual > parameter.PassThroughMinResidual && b.Damage > 0 {
		ratio := residual / b.Damage
		b.Scale *= ratio
		b.Radius *= ratio
		b.Damage = residual
		return true
	}
	m.Consume(b)
	return false
}

// Clear drops every bullet and impact, used on stage teardown
func (m *BulletManager) Clear() {
	clear(m.player)
	clear(m.enemy)
	clear(m.impacts)
	m.player = m.player[:0]
	m.enemy = m.enemy[:0]
	m.impacts = m.impacts[:0]
}

func (m *BulletManager) PlayerBullets() []*component.Bullet { return m.player }
func (m *BulletManager) EnemyBullets() []*component.Bullet  { return m.enemy }
func (m *BulletManager) Impacts() []*component.Impact       { return m.impacts }

// ImpactOpacity maps remaining life to opacity
func ImpactOpacity(im *component.Impact) float64 {
	return vmath.Clamp01(im.Life / parameter.ImpactLife)
}

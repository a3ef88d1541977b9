package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hexfire/core"
)

// Bullet is a projectile owned by BulletManager
// Player bullets carry Kind == core.BulletPlayer
type Bullet struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64 // Collision radius
	Size   float64 // Visual diameter at spawn
	Scale  float64 // Visual scale, shrinks on pass-through
	Damage float64
	Kind   core.BulletKind
	Color  core.RGB
	Active bool
}

// Player reports whether the bullet belongs to the player side
func (b *Bullet) Player() bool {
	return b.Kind == core.BulletPlayer
}

// Impact is a visual-only hit marker, never collides
type Impact struct {
	Pos    mgl64.Vec2
	Radius float64
	Life   float64 // Remaining seconds
	Scale  float64
	Color  core.RGB
}

package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hexfire/core"
)

// Enemy is a hostile entity owned by EnemyManager
type Enemy struct {
	ID      uint64
	Variant core.Variant
	State   core.EnemyState

	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	HP     float64
	MaxHP  float64
	Speed  float64
	Radius float64
	Damage float64 // Contact damage, zero for itembox
	Score  int

	// Visual
	Size    float64 // Sprite edge length including variance
	Scale   float64
	Opacity float64
	Flash   float64 // Remaining red-flash seconds

	// Timers
	TimeAlive  float64
	ShootTimer float64
	FadeTime   float64

	// Drop is set on itembox death; DropVel is the velocity before knockback
	Drop    core.ItemKind
	DropVel mgl64.Vec2

	// Active is false once lethal damage lands; the enemy stays pooled while fading
	Active   bool
	Defeated bool // Killed by damage, as opposed to leaving the field
	Removed  bool
}

// Hittable reports whether player bullets may collide with the enemy
func (e *Enemy) Hittable() bool {
	return e.Active && e.State != core.StateEntering
}

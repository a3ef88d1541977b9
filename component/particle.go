package component

import "github.com/go-gl/mathgl/mgl64"

// Particle is one charge-effect mote, visual only
type Particle struct {
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	Life    float64
	MaxLife float64
	Size    float64
	Opacity float64
	Active  bool
}

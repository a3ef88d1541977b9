package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hexfire/core"
)

// Item is a pickup owned by ItemManager
type Item struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Kind   core.ItemKind
	Radius float64

	// Active is false once collected; collected items keep flying until Removed
	Active    bool
	Collected bool
	FadeTime  float64 // Remaining fade seconds after collection
	Opacity   float64
	Removed   bool
}

// Collidable reports whether the player can still pick the item up
func (it *Item) Collidable() bool {
	return it.Active && !it.Collected && !it.Removed
}

package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/component"
	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/vmath"
)

var itemAnchor = mgl64.Vec2{parameter.ItemAnchorX, parameter.ItemAnchorY}

// ItemManager owns dropped pickups and their collection flight
type ItemManager struct {
	items []*component.Item
	log   zerolog.Logger
}

func NewItemManager(log zerolog.Logger) *ItemManager {
	return &ItemManager{
		items: make([]*component.Item, 0, 8),
		log:   log.With().Str("component", "items").Logger(),
	}
}

// Spawn drops an item at pos; a zero vel selects the default leftward drift
func (m *ItemManager) Spawn(pos mgl64.Vec2, kind core.ItemKind, vel mgl64.Vec2) (*component.Item, error) {
	if !kind.Droppable() {
		return nil, fmt.Errorf("spawn item %s: %w", kind, core.ErrUnknownItem)
	}
	if vel == (mgl64.Vec2{}) {
		vel = mgl64.Vec2{parameter.ItemDriftX, 0}
	}
	it := &component.Item{
		Pos:     pos,
		Vel:     vel,
		Kind:    kind,
		Radius:  parameter.ItemRadius,
		Active:  true,
		Opacity: 1,
	}
	m.items = append(m.items, it)
	m.log.Debug().Stringer("kind", kind).Floats64("pos", pos[:]).Msg("item spawned")
	return it, nil
}

// Collect switches an item into its collected flight; false if it was not collectable
func (m *ItemManager) Collect(it *component.Item) bool {
	if !it.Collidable() {
		return false
	}
	it.Active = false
	it.Collected = true
	it.FadeTime = parameter.ItemFadeDuration
	return true
}

// Update moves drifting items, flies collected ones to the anchor and compacts
func (m *ItemManager) Update(dt float64) {
	for _, it := range m.items {
		if it.Removed {
			continue
		}

		if it.Collected {
			it.FadeTime -= dt
			it.Opacity = max(0, it.FadeTime/parameter.ItemFadeDuration)
			if it.FadeTime <= 0 {
				it.Removed = true
			}
			step := parameter.ItemFlightSpeed * dt
			if vmath.Distance(it.Pos, itemAnchor) <= step {
				it.Pos = itemAnchor
				it.Removed = true
				continue
			}
			it.Pos = it.Pos.Add(vmath.DirectionTo(it.Pos, itemAnchor).Mul(step))
			if vmath.Distance(it.Pos, itemAnchor) < parameter.ItemArriveDist {
				it.Removed = true
			}
			continue
		}

		it.Pos = it.Pos.Add(it.Vel.Mul(dt))
		if it.Pos[0] < parameter.FieldRemoveX {
			it.Active = false
			it.Removed = true
		}
	}

	n := 0
	for _, it := range m.items {
		if !it.Removed {
			m.items[n] = it
			n++
		}
	}
	clear(m.items[n:])
	m.items = m.items[:n]
}

// Clear drops every item
func (m *ItemManager) Clear() {
	clear(m.items)
	m.items = m.items[:0]
}

// Items returns the live pool, including items in collected flight
func (m *ItemManager) Items() []*component.Item {
	return m.items
}

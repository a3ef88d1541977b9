package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration mistakes, rejected without creating entities
var (
	ErrUnknownVariant = errors.New("unknown enemy variant")
	ErrUnknownItem    = errors.New("unknown item kind")
	ErrUnknownBullet  = errors.New("unknown bullet kind")
)

// Variant tags an enemy type
type Variant uint8

const (
	VariantGhost Variant = iota
	VariantSkeleton
	VariantDragon
	VariantBoss
	VariantItembox
	variantCount
)

var variantNames = [...]string{"ghost", "skeleton", "dragon", "boss", "itembox"}

func (v Variant) String() string {
	if v < variantCount {
		return variantNames[v]
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// Valid reports whether v names a known variant
func (v Variant) Valid() bool {
	return v < variantCount
}

// ParseVariant maps a symbolic name to a Variant
func ParseVariant(name string) (Variant, error) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// ItemKind tags a pickup; ItemNone is the empty inventory slot
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemHealth
	ItemMagic
)

func (k ItemKind) String() string {
	switch k {
	case ItemNone:
		return "none"
	case ItemHealth:
		return "health"
	case ItemMagic:
		return "magic"
	}
	return fmt.Sprintf("item(%d)", uint8(k))
}

// Droppable reports whether k is a real pickup
func (k ItemKind) Droppable() bool {
	return k == ItemHealth || k == ItemMagic
}

// ParseItemKind maps a symbolic name to a droppable ItemKind
func ParseItemKind(name string) (ItemKind, error) {
	switch name {
	case "health":
		return ItemHealth, nil
	case "magic":
		return ItemMagic, nil
	}
	return ItemNone, fmt.Errorf("%w: %q", ErrUnknownItem, name)
}

// BulletKind fixes an enemy bullet's color and base damage
type BulletKind uint8

const (
	BulletPlayer BulletKind = iota
	BulletEnergy
	BulletFire
	BulletNut
)

func (k BulletKind) String() string {
	switch k {
	case BulletPlayer:
		return "player"
	case BulletEnergy:
		return "energy"
	case BulletFire:
		return "fire"
	case BulletNut:
		return "nut"
	}
	return fmt.Sprintf("bullet(%d)", uint8(k))
}

// EnemyState is the enemy behaviour state
type EnemyState uint8

const (
	StateEntering EnemyState = iota
	StateActive
	StateFading
)

func (s EnemyState) String() string {
	switch s {
	case StateEntering:
		return "entering"
	case StateActive:
		return "active"
	case StateFading:
		return "fading"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

package core

import "github.com/go-gl/mathgl/mgl64"

// SpriteKind groups presentation entries
type SpriteKind uint8

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpritePlayerBullet
	SpriteEnemyBullet
	SpriteImpact
	SpriteItem
	SpriteParticle
)

// Sprite is one visible entity handed to the presentation sink
type Sprite struct {
	Kind     SpriteKind
	Variant  Variant    // SpriteEnemy
	Item     ItemKind   // SpriteItem
	Bullet   BulletKind // SpriteEnemyBullet / SpritePlayerBullet
	Pos      mgl64.Vec2
	Size     float64 // world-unit diameter before Scale
	Scale    float64
	Rotation float64
	Opacity  float64
	Tint     RGB
	Tinted   bool // Tint overrides the asset color
}

// Phase is the stage's progress toward an outcome
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseVictory       // boss defeated, banner showing
	PhaseGameOver      // lives exhausted, waiting to leave
)

// Outcome is a discrete stage result for the scene layer
type Outcome uint8

const (
	OutcomeVictory Outcome = iota + 1
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeGameOver:
		return "game-over"
	}
	return "none"
}

// HUD is the projection consumed by the heads-up display
type HUD struct {
	Score        int
	DisplayScore int
	HP           float64
	MaxHP        float64
	Magic        float64
	Lives        int
	Inventory    ItemKind
	Charge       float64 // current attack hold, seconds

	BossActive   bool
	BossFraction float64

	StageTime    float64
	ScrollOffset float64
	Phase        Phase
	Paused       bool
}

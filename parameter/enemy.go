package parameter

// Spawn Director
const (
	// SpawnRollInterval rate-limits random spawn rolls (stage seconds)
	SpawnRollInterval = 0.4

	// SpawnBaseChance is the per-roll probability before the difficulty factor
	SpawnBaseChance = 0.011

	// SpawnProgressWindow normalises stage time into the progress factor
	SpawnProgressWindow = 60.0

	SpawnSkeletonAfter = 8.0
	SpawnSkeletonBase  = 0.18
	SpawnSkeletonRamp  = 0.22
	SpawnDragonAfter   = 16.0
	SpawnDragonBase    = 0.10
	SpawnDragonRamp    = 0.10

	// SpawnItemboxInterval schedules an itembox every N stage seconds
	SpawnItemboxInterval = 20.0

	// SpawnBossAt is the single scripted boss entry
	SpawnBossAt = 60.0
)

// Spawn Placement
const (
	SpawnOffsetX        = 7.0 // spawn x = SpawnOffsetX + sprite width
	SpawnBandHeight     = 7.5
	SpawnItemboxBand    = 6.5
	SpawnSizeVariance   = 0.15
	SpawnGhostVerticalJ = 0.25 // ghost vertical drift = (r-0.5)*speed*J
	SpawnSkelVerticalJ  = 0.3
)

// Enemy Behaviour
const (
	EnemyFlashDuration = 0.1
	EnemyFadeDuration  = 1.0
	EnemyFadeShrink    = 0.08
	EnemyKnockbackLift = 1.0 // upward component of the death knockback

	SkeletonZigzagRate      = 5.0
	SkeletonZigzagAmplitude = 2.0
	SkeletonFireInterval    = 2.0
	SkeletonBulletSpeed     = 5.0
	SkeletonBulletSize      = 0.5

	DragonAimInterval  = 1.0
	DragonAimBlend     = 0.5
	DragonFireInterval = 2.0
	DragonFireBlend    = 0.65 // pull toward straight-left; 35% toward player remains
	DragonBulletSpeed  = 7.0
	DragonBulletSize   = 0.8

	BossAnchorX         = 3.5
	BossBobAmplitude    = 3.0
	BossFireInterval    = 0.2
	BossSpiralRate      = 1.5
	BossBulletSpeed     = 2.0
	BossBulletSize      = 0.45
	ItemboxDropRatioHit = 0.5 // probability of a health drop
)

// EnemyStats is the per-variant stat block, hp before difficulty scaling
type EnemyStats struct {
	HP         float64
	Speed      float64
	Radius     float64
	Damage     float64
	Score      int
	SpriteSize float64
	Variance   bool
}

// Enemy stat table
var (
	GhostStats    = EnemyStats{HP: 1, Speed: 2.5, Radius: 0.4, Damage: 10, Score: 100, SpriteSize: 1.2, Variance: true}
	SkeletonStats = EnemyStats{HP: 32 * 0.20, Speed: 1.5, Radius: 0.65, Damage: 15, Score: 300, SpriteSize: 2.0, Variance: true}
	DragonStats   = EnemyStats{HP: 32 * 0.5, Speed: 1, Radius: 0.9, Damage: 20, Score: 1000, SpriteSize: 3.2, Variance: true}
	BossStats     = EnemyStats{HP: 32 * 6.00, Speed: 1.4, Radius: 1.2, Damage: 30, Score: 10000, SpriteSize: 5.5}
	ItemboxStats  = EnemyStats{HP: 32 * 0.10, Speed: 0.6, Radius: 0.4, Damage: 0, Score: 10, SpriteSize: 1.0}
)

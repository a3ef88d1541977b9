package parameter

// Play field in world units, origin at the centre, 16:9
const (
	FieldHalfWidth  = 8.0
	FieldHalfHeight = 4.5

	// FieldRemoveX is the left boundary past which enemies and items are dropped
	FieldRemoveX = -10.0

	// BulletBoundX is the horizontal bound for both bullet pools (|x|)
	BulletBoundX = 10.0

	// EnemyBulletBoundY is the vertical bound for enemy bullets (|y|)
	EnemyBulletBoundY = 6.0

	// Gravity is the downward acceleration applied to dying entities
	Gravity = 9.8

	// GravityFactor scales Gravity for the slow-motion death fall
	GravityFactor = 0.35
)

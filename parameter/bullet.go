package parameter

// Player Bullets
const (
	PlayerBulletSpeed = 10.0

	// PlayerBulletRadiusScale converts visual size to collision radius
	PlayerBulletRadiusScale = 0.5
)

// Enemy Bullets
const (
	EnemyBulletMinSize = 0.45
	EnemyBulletMaxSize = 1.35

	EnemyBulletDamageEnergy = 10.0
	EnemyBulletDamageFire   = 20.0
	EnemyBulletDamageNut    = 5.0
)

// Impacts
const (
	ImpactLife        = 0.2
	ImpactExpandRate  = 0.03
	ImpactSizeFactor  = 1.3

	// PassThroughMinResidual is the residual damage a bullet needs to survive a kill
	PassThroughMinResidual = 1.0
)

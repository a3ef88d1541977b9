package parameter

// Player Vitals
const (
	PlayerMaxHP       = 100.0
	PlayerMaxMagic    = 100.0
	PlayerStartLives  = 3
	PlayerSpeed       = 5.0
	PlayerRadius      = 0.4
	PlayerMagicRegen  = 1.0 // per second
	PlayerSpriteSize  = 1.5
	PlayerSpawnX      = -8.0
	PlayerSpawnY      = 0.0
	PlayerAnchorX     = -5.0
	PlayerIntroSpeed  = 2.0
	PlayerBoundX      = 6.7
	PlayerBoundY      = 3.7
	PlayerShrinkSpeed = 0.08
)

// Idle Sway
const (
	// PlayerSwayAmplitude is added to vertical velocity as sin(t*rate)*amplitude
	PlayerSwayAmplitude = 0.25
	PlayerSwayRate      = 3.0
)

// Invulnerability
const (
	PlayerDamageInvulnerability  = 2.0
	PlayerRespawnInvulnerability = 3.0
	PlayerRespawnDelay           = 3.0
	PlayerBlinkPeriod            = 0.5
	PlayerBlinkOpacity           = 0.2
)

// Death Knockback
const (
	// PlayerKnockbackFactor scales the reversed velocity by speed*factor
	PlayerKnockbackFactor = 0.25
	PlayerKnockbackLift   = 1.25
)

// Charge Weapon
const (
	ChargeMaxTime       = 5.0
	ChargeThreshold     = 1.0
	ChargeMinPower      = 1.0
	ChargeMaxPower      = 32.0
	ChargeMinSize       = 0.3
	ChargeMaxSize       = 2.0
	ChargeMediumPower   = 4.0  // attack_medium cue at or above
	ChargeLargePower    = 16.0 // attack_large cue at or above
	ChargeParticleCount = 200
)

// Charge Effect Particles
const (
	ChargeSpawnIntervalBase  = 0.1
	ChargeSpawnIntervalScale = 0.08
	ChargeSpawnRadiusBase    = 0.25
	ChargeSpawnRadiusScale   = 1.20
	ChargeSpeedBase          = 1.0
	ChargeSpeedScale         = 5.0
	ChargeLifeMin            = 0.5
	ChargeLifeRange          = 0.5
	ChargeSizeBase           = 0.1
	ChargeSizeScale          = 0.5
	ChargeSizeJitter         = 0.1
	ChargeGrowthRate         = 5.0
	ChargeSteerFactor        = 0.1
	ChargeFadeInRatio        = 0.8
	ChargeJitterAngle        = 0.7853981633974483 // ±45°
)

package core

// Cue is a symbolic fire-and-forget sound effect name
type Cue string

const (
	CueConfirm      Cue = "confirm"
	CueCancel       Cue = "cancel"
	CueAttackSmall  Cue = "attack_small"
	CueAttackMedium Cue = "attack_medium"
	CueAttackLarge  Cue = "attack_large"
	CueItemGet      Cue = "item_get"
	CueItemUse      Cue = "item_use"
	CueOneUp        Cue = "1up"
	CueFlush        Cue = "flush"
	CueEnemyDeath   Cue = "enemy_death"
	CueEnemyAttack  Cue = "enemy_attack"
	CueDamage       Cue = "damage"
)

// AllCues lists every cue the game emits
var AllCues = []Cue{
	CueConfirm, CueCancel,
	CueAttackSmall, CueAttackMedium, CueAttackLarge,
	CueItemGet, CueItemUse, CueOneUp, CueFlush,
	CueEnemyDeath, CueEnemyAttack, CueDamage,
}

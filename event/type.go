package event

// Kind labels a scheduled event for logging and bulk cancellation
type Kind uint8

const (
	// KindRespawn brings the player back after the death delay
	// Owner: Player | Cancelled: stage teardown
	KindRespawn Kind = iota

	// KindVictory emits the victory outcome after the banner delay
	// Owner: Stage | Cancelled: stage teardown
	KindVictory

	// KindGameOver emits the game-over outcome after the last life
	// Owner: Stage | Cancelled: stage teardown
	KindGameOver
)

func (k Kind) String() string {
	switch k {
	case KindRespawn:
		return "respawn"
	case KindVictory:
		return "victory"
	case KindGameOver:
		return "gameover"
	}
	return "unknown"
}

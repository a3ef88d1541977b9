package core

// Track is a symbolic background music name
type Track string

const (
	TrackTitle    Track = "title"
	TrackGame     Track = "game"
	TrackBoss     Track = "boss"
	TrackGameOver Track = "gameover"
	TrackEpilogue Track = "epilogue"
)
